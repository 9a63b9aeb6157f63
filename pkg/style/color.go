package style

import (
	"os"

	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled decides whether to emit colors for mode. In auto mode,
// colors are used on terminals unless NO_COLOR is set.
func ColorEnabled(mode string, terminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return terminal
}

// Setup applies the color decision to lipgloss, pterm and lipbalm.
func Setup(mode string, out *os.File) {
	renderer := lipgloss.DefaultRenderer()
	if ColorEnabled(mode, IsTerminal(out)) {
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI256)
		}
		pterm.EnableColor()
	} else {
		renderer.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}
	lipbalm.SetDefaultRenderer(renderer)
}
