package style

import (
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// palette holds a light and a dark variant of every color; lipgloss picks
// one from the terminal background.
var palette = struct {
	heading, muted, path, code, codeBg    lipgloss.AdaptiveColor
	enabled, removed, warning, collection lipgloss.AdaptiveColor
}{
	heading:    lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"},
	muted:      lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"},
	path:       lipgloss.AdaptiveColor{Light: "#495057", Dark: "#A0A8B0"},
	code:       lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"},
	codeBg:     lipgloss.AdaptiveColor{Light: "#F8F9FA", Dark: "#24253A"},
	enabled:    lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"},
	removed:    lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"},
	warning:    lipgloss.AdaptiveColor{Light: "#B58105", Dark: "#FFD54F"},
	collection: lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
}

// sectionColors gives each section its own heading color.
var sectionColors = [types.SectionCount]lipgloss.AdaptiveColor{
	types.SectionPrompts:      {Light: "#0EA5E9", Dark: "#38BDF8"},
	types.SectionInstructions: {Light: "#8B5CF6", Dark: "#A78BFA"},
	types.SectionChatModes:    {Light: "#F59E0B", Dark: "#FBBF24"},
}
