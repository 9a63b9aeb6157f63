package style

import (
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/arthur-debert/awesome-copilot/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle      = lipgloss.NewStyle().Foreground(palette.heading).Bold(true)
	MutedStyle      = lipgloss.NewStyle().Foreground(palette.muted)
	SuccessStyle    = lipgloss.NewStyle().Foreground(palette.enabled).Bold(true)
	ErrorStyle      = lipgloss.NewStyle().Foreground(palette.removed).Bold(true)
	WarningStyle    = lipgloss.NewStyle().Foreground(palette.warning).Bold(true)
	PathStyle       = lipgloss.NewStyle().Foreground(palette.path).Italic(true)
	CollectionStyle = lipgloss.NewStyle().Foreground(palette.collection).Bold(true)

	// CodeStyle marks commands and file names the user can type.
	CodeStyle = lipgloss.NewStyle().
			Foreground(palette.code).
			Background(palette.codeBg).
			Padding(0, 1)
)

// SectionStyle returns the heading style of a section.
func SectionStyle(s types.Section) lipgloss.Style {
	if !s.Valid() {
		return TitleStyle
	}
	return lipgloss.NewStyle().Foreground(sectionColors[s]).Bold(true)
}

// Tags maps the tag names used in message templates to their styles.
// Section keys are tags too, so "<prompts>" colors like a prompts heading.
func Tags() lipbalm.StyleMap {
	tags := lipbalm.StyleMap{
		"title":              TitleStyle,
		"muted":              MutedStyle,
		"success":            SuccessStyle,
		"error":              ErrorStyle,
		"warning":            WarningStyle,
		"code":               CodeStyle,
		"path":               PathStyle,
		types.CollectionsKey: CollectionStyle,
	}
	for _, s := range types.Sections {
		tags[s.String()] = SectionStyle(s)
	}
	return tags
}

// Indent pads every line of s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
