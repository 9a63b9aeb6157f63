/*
Package lipbalm renders terminal messages written as text/template with
XML-like style tags. Tag names are keys of a StyleMap; the content of a tag
is rendered with the lipgloss style registered under that name.

	styles := lipbalm.StyleMap{
		"success": lipgloss.NewStyle().Bold(true),
		"muted":   lipgloss.NewStyle().Faint(true),
	}
	out, err := lipbalm.Render(
		`<success>{{.Copied}} copied</success> <muted>to {{.Dir | html}}</muted>`,
		map[string]interface{}{"Copied": 3, "Dir": ".github"},
		styles)

ExpandTags skips the template step and StripTags drops every tag, which is
what callers fall back to when a message does not parse.

The <no-format> tag keeps its content only when colors are off, so a plain
terminal can still tell states apart:

	<success>review</success><no-format> (enabled)</no-format>

Template data is not escaped. Values that may hold "<" or "&", such as
paths and item descriptions, go through the html template function.

Colors follow the profile of the renderer given to SetDefaultRenderer, or
lipgloss's default renderer. With the Ascii profile no style is applied.
*/
package lipbalm
