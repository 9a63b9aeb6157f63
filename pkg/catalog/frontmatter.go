package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header of an item file.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Mode        string   `yaml:"mode"`
	Model       string   `yaml:"model"`
	Tools       []string `yaml:"tools"`
	ApplyTo     string   `yaml:"applyTo"`
}

// Document is an item file split into its front matter and markdown body.
type Document struct {
	FrontMatter FrontMatter
	Body        string
}

// Title returns the front matter title, else the first level-one heading.
func (d *Document) Title() string {
	if d.FrontMatter.Title != "" {
		return d.FrontMatter.Title
	}
	for _, line := range strings.Split(d.Body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// ParseDocument splits content on its leading "---" fenced block. A block
// that is not valid YAML is kept as part of the body.
func ParseDocument(content string) *Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	doc := &Document{Body: strings.TrimSpace(content)}

	if !strings.HasPrefix(content, "---\n") {
		return doc
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return doc
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return doc
	}
	body := rest[end+len("\n---"):]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}

	doc.FrontMatter = fm
	doc.Body = strings.TrimSpace(body)
	return doc
}
