package catalog

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

const (
	maxIDLength          = 50
	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxTags              = 10
	maxTagLength         = 30
	maxItems             = 50
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Issue is a single validation problem of a collection manifest.
type Issue struct {
	Collection string
	File       string
	Field      string
	Message    string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Report is the outcome of validating every manifest of a catalog.
type Report struct {
	Checked int
	Issues  []Issue
}

// Valid reports whether no issue was found.
func (r *Report) Valid() bool {
	return len(r.Issues) == 0
}

// IssuesFor returns the issues of one collection.
func (r *Report) IssuesFor(name string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Collection == name {
			out = append(out, issue)
		}
	}
	return out
}

// Validate checks every collection manifest: field formats and lengths,
// member kinds and extensions, member files existing in the catalog and
// duplicate ids.
func Validate(fs types.FS, c *Catalog) *Report {
	report := &Report{}
	usedIDs := make(map[string]string)

	for _, name := range c.CollectionNames() {
		coll := c.collections[name]
		report.Checked++

		add := func(field, format string, args ...interface{}) {
			report.Issues = append(report.Issues, Issue{
				Collection: name,
				File:       coll.Path,
				Field:      field,
				Message:    fmt.Sprintf(format, args...),
			})
		}

		if coll.LoadErr != nil {
			add("Manifest", "failed to parse: %v", coll.LoadErr)
			continue
		}

		if msg := validateID(coll.ID); msg != "" {
			add("ID", "%s", msg)
		}
		if msg := validateLength(coll.Title, "Name", maxTitleLength); msg != "" {
			add("Name", "%s", msg)
		}
		if msg := validateLength(coll.Description, "Description", maxDescriptionLength); msg != "" {
			add("Description", "%s", msg)
		}
		if msg := validateTags(coll.Tags); msg != "" {
			add("Tags", "%s", msg)
		}
		for _, msg := range validateMembers(fs, c.root, coll.Members) {
			add("Items", "%s", msg)
		}
		if o := coll.Display.Ordering; o != "" && o != "manual" && o != "alpha" {
			add("Display", "ordering must be 'manual' or 'alpha'")
		}

		if coll.ID != "" {
			if other, dup := usedIDs[coll.ID]; dup {
				add("ID", "duplicate collection id %q, also used by %s", coll.ID, other)
			} else {
				usedIDs[coll.ID] = name
			}
		}
	}

	return report
}

// ValidateID checks the format of a collection id.
func ValidateID(id string) error {
	if msg := validateID(id); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func validateID(id string) string {
	if id == "" {
		return "id is required"
	}
	if !slugPattern.MatchString(id) {
		return "id must contain only lowercase letters, numbers, and hyphens"
	}
	if len(id) > maxIDLength {
		return fmt.Sprintf("id must be between 1 and %d characters", maxIDLength)
	}
	return ""
}

func validateLength(value, field string, max int) string {
	if value == "" {
		return strings.ToLower(field) + " is required"
	}
	if len(value) > max {
		return fmt.Sprintf("%s must be between 1 and %d characters", strings.ToLower(field), max)
	}
	return ""
}

func validateTags(tags []string) string {
	if len(tags) > maxTags {
		return fmt.Sprintf("maximum %d tags allowed", maxTags)
	}
	for _, tag := range tags {
		if !slugPattern.MatchString(tag) {
			return fmt.Sprintf("tag %q must contain only lowercase letters, numbers, and hyphens", tag)
		}
		if len(tag) > maxTagLength {
			return fmt.Sprintf("tag %q must be between 1 and %d characters", tag, maxTagLength)
		}
	}
	return ""
}

func validateMembers(fs types.FS, root string, members []Member) []string {
	if len(members) == 0 {
		return []string{"at least one item is required"}
	}
	if len(members) > maxItems {
		return []string{fmt.Sprintf("maximum %d items allowed", maxItems)}
	}

	var msgs []string
	for i, m := range members {
		n := i + 1
		if m.Path == "" {
			msgs = append(msgs, fmt.Sprintf("item %d must have a path", n))
			continue
		}
		section, ok := types.SectionForKind(m.Kind)
		if !ok {
			msgs = append(msgs, fmt.Sprintf("item %d kind must be one of: prompt, instruction, chat-mode", n))
			continue
		}
		if _, err := fs.Stat(filepath.Join(root, filepath.FromSlash(m.Path))); err != nil {
			msgs = append(msgs, fmt.Sprintf("item %d file does not exist: %s", n, m.Path))
			continue
		}
		if !strings.HasSuffix(m.Path, section.Info().Ext) {
			msgs = append(msgs, fmt.Sprintf("item %d kind is %q but path doesn't end with %s", n, m.Kind, section.Info().Ext))
		}
	}
	return msgs
}
