package lipbalm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to the style applied to their content.
type StyleMap map[string]lipgloss.Style

// NoFormatTag holds content shown only when colors are off.
const NoFormatTag = "no-format"

const rootTag = "lipbalm-root"

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer sets the renderer whose color profile decides
// whether styles are applied.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	defaultRenderer = r
}

// ColorEnabled reports whether the current renderer outputs colors.
func ColorEnabled() bool {
	return defaultRenderer.ColorProfile() != termenv.Ascii
}

// Render executes tmpl as a Go template with data, then expands the style
// tags of the result.
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags with styled text. Input that is not well
// formed markup is returned unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}

	root, ok := parse(input)
	if !ok {
		return input, nil
	}

	var sb strings.Builder
	expand(&sb, root, styles, ColorEnabled())
	return sb.String(), nil
}

// StripTags removes every tag, keeping the text content. Input that is not
// well formed markup is returned unchanged.
func StripTags(input string) string {
	if input == "" {
		return ""
	}

	root, ok := parse(input)
	if !ok {
		return input
	}

	var sb strings.Builder
	collectText(&sb, root)
	return sb.String()
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func expand(sb *strings.Builder, el *etree.Element, styles StyleMap, color bool) {
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == NoFormatTag {
				if !color {
					collectText(sb, t)
				}
				continue
			}

			var inner strings.Builder
			expand(&inner, t, styles, color)

			style, known := styles[t.Tag]
			if !known || !color {
				sb.WriteString(inner.String())
				continue
			}
			sb.WriteString(style.Render(inner.String()))
		}
	}
}

func collectText(sb *strings.Builder, el *etree.Element) {
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collectText(sb, t)
		}
	}
}
