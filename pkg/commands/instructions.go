package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/resolver"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// DefaultInstructionsFile is where the repository instructions are
// written, relative to the project directory.
var DefaultInstructionsFile = filepath.Join(".github", "copilot-instructions.md")

// Layouts of the repository instructions file
const (
	// LayoutRepository lists the instructions grouped by why they are enabled
	LayoutRepository = "repository"
	// LayoutConsolidated inlines the body of every instruction
	LayoutConsolidated = "consolidated"
	// LayoutBasic is a flat list of titles
	LayoutBasic = "basic"
)

// InstructionsOptions defines the options for the Instructions command.
type InstructionsOptions struct {
	FS          types.FS
	CatalogRoot string
	ConfigPath  string

	// OutputFile defaults to DefaultInstructionsFile under the project
	OutputFile string
	Layout     string
	NoHeader   bool
	DryRun     bool
}

// InstructionEntry is one enabled instruction.
type InstructionEntry struct {
	Name   string
	Title  string
	Reason types.Reason
	Body   string
}

// InstructionsResult is the outcome of the Instructions command.
type InstructionsResult struct {
	File         string
	Layout       string
	Instructions []InstructionEntry
	Content      string
	Written      bool
}

// Names returns the names of the included instructions.
func (r *InstructionsResult) Names() []string {
	names := make([]string, len(r.Instructions))
	for i, in := range r.Instructions {
		names[i] = in.Name
	}
	return names
}

// Instructions generates the repository-wide Copilot instructions file
// from the effectively enabled instructions.
func Instructions(opts InstructionsOptions) (*InstructionsResult, error) {
	log := logging.GetLogger("commands.instructions")
	log.Debug().Str("command", "Instructions").Str("layout", opts.Layout).Msg("Executing command")

	layout := opts.Layout
	if layout == "" {
		layout = LayoutRepository
	}
	tmpl, ok := instructionTemplates[layout]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown layout '%s', expected one of: %s, %s, %s",
			layout, LayoutRepository, LayoutConsolidated, LayoutBasic)
	}

	ws, err := loadWorkspace(opts.FS, opts.CatalogRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	out := opts.OutputFile
	if out == "" {
		out = DefaultInstructionsFile
	}
	result := &InstructionsResult{File: resolveProjectPath(ws.configPath, out), Layout: layout}

	effective := resolver.Resolve(ws.cfg, ws.cat)
	for _, name := range effective.Enabled(types.SectionInstructions) {
		ref := types.ItemRef{Section: types.SectionInstructions, Name: name}
		data, err := ws.fs.ReadFile(ws.cat.SourcePath(ref))
		if err != nil {
			log.Warn().Err(err).Str("instruction", name).Msg("Skipping unreadable instruction")
			continue
		}
		doc := catalog.ParseDocument(string(data))
		title := doc.Title()
		if title == "" {
			title = name
		}
		st, _ := effective.Get(ref)
		result.Instructions = append(result.Instructions, InstructionEntry{
			Name:   name,
			Title:  title,
			Reason: st.Reason,
			Body:   doc.Body,
		})
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, instructionsView{
		Header:  !opts.NoHeader,
		Entries: result.Instructions,
		Groups:  groupByReason(result.Instructions),
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render repository instructions")
	}
	result.Content = buf.String()

	if !opts.DryRun {
		dir := filepath.Dir(result.File)
		if err := ws.fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
		if err := ws.fs.WriteFile(result.File, buf.Bytes(), os.FileMode(0644)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", result.File)
		}
		result.Written = true
	}

	log.Info().
		Str("command", "Instructions").
		Str("file", result.File).
		Int("instructions", len(result.Instructions)).
		Msg("Command finished")
	return result, nil
}

type instructionGroup struct {
	Title   string
	Entries []InstructionEntry
}

type instructionsView struct {
	Header  bool
	Entries []InstructionEntry
	Groups  []instructionGroup
}

func groupByReason(entries []InstructionEntry) []instructionGroup {
	var explicit, viaCollection []InstructionEntry
	for _, e := range entries {
		if e.Reason == types.ReasonCollection {
			viaCollection = append(viaCollection, e)
		} else {
			explicit = append(explicit, e)
		}
	}

	var groups []instructionGroup
	if len(explicit) > 0 {
		groups = append(groups, instructionGroup{Title: "Explicitly Enabled", Entries: explicit})
	}
	if len(viaCollection) > 0 {
		groups = append(groups, instructionGroup{Title: "Enabled via Collections", Entries: viaCollection})
	}
	return groups
}

const instructionsHeader = `{{define "header"}}{{if .Header}}# GitHub Copilot Repository Instructions

This file contains custom instructions for GitHub Copilot when working in this repository.
They are generated from the instructions enabled in the awesome-copilot configuration.

## How This Works

GitHub Copilot uses these instructions when:
- You're working in this repository
- Copilot is generating code, explanations, or suggestions
- You're using Copilot Chat within this repository context

---

{{end}}{{end}}`

const instructionsEmpty = `{{define "empty"}}## No Instructions Enabled

Currently, no instruction files are enabled in the awesome-copilot configuration.

To add instructions:
1. Enable instructions or collections with ` + "`awesome-copilot toggle`" + `
2. Run ` + "`awesome-copilot instructions`" + ` to update this file
{{end}}`

var instructionTemplates = map[string]*template.Template{
	LayoutRepository: mustInstructionsTemplate(`{{template "header" .}}{{if not .Entries}}{{template "empty" .}}{{else}}## Active Instructions

The following {{len .Entries}} instruction {{if eq (len .Entries) 1}}set is{{else}}sets are{{end}} currently active for this repository:

{{range .Groups}}### {{.Title}}

{{range .Entries}}- **{{.Title}}** (` + "`{{.Name}}`" + `)
{{end}}
{{end}}## Instruction Details

For detailed information about each instruction set, refer to the individual instruction files.
{{end}}`),

	LayoutConsolidated: mustInstructionsTemplate(`{{template "header" .}}{{if not .Entries}}{{template "empty" .}}{{else}}## Consolidated Instructions

The following instructions combine all enabled instruction sets:

{{range .Entries}}### {{.Title}}

{{.Body}}

---

{{end}}{{end}}`),

	LayoutBasic: mustInstructionsTemplate(`{{template "header" .}}{{if not .Entries}}{{template "empty" .}}{{else}}## Enabled Instructions

{{range .Entries}}- {{.Title}}
{{end}}
For detailed instruction content, see the individual instruction files.
{{end}}`),
}

func mustInstructionsTemplate(body string) *template.Template {
	return template.Must(template.Must(template.New("instructions").Parse(instructionsHeader + instructionsEmpty)).Parse(body))
}
