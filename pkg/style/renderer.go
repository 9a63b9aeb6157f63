package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/newcollection"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/show"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/arthur-debert/awesome-copilot/pkg/ui/lipbalm"
	"github.com/pterm/pterm"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	enabledMark  = "✓"
	disabledMark = "✗"
)

var numbers = message.NewPrinter(language.English)

// Number formats n with thousands separators.
func Number(n int64) string {
	return numbers.Sprintf("%d", n)
}

// TerminalRenderer renders command results for the terminal.
type TerminalRenderer struct {
	width int
	color bool
}

// NewTerminalRenderer creates a renderer. color controls the markdown
// style of RenderShow; everything else follows the lipgloss profile.
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{width: DefaultWrap, color: color}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// expand renders a lipbalm template with the shared tags. On a template
// error the markup is stripped so the message still reaches the user.
func expand(tmpl string, data interface{}) string {
	out, err := lipbalm.Render(tmpl, data, Tags())
	if err != nil {
		return lipbalm.StripTags(tmpl)
	}
	return out
}

func mark(enabled bool) string {
	if enabled {
		return SuccessStyle.Render(enabledMark)
	}
	return MutedStyle.Render(disabledMark)
}

func reasonLabel(item commands.ItemListing) string {
	switch item.Reason {
	case types.ReasonExplicit:
		if item.Enabled {
			return "explicitly enabled"
		}
		return "explicitly disabled"
	case types.ReasonCollection:
		return "via " + strings.Join(item.Collections, ", ")
	}
	return ""
}

// RenderList renders the items of each listed section and the collections.
func (r *TerminalRenderer) RenderList(res *commands.ListResult) string {
	var b strings.Builder

	b.WriteString(expand(`<muted>Configuration:</muted> <path>{{.ConfigPath | html}}</path>`, res) + "\n")

	for _, sec := range res.Sections {
		b.WriteString("\n")
		header := fmt.Sprintf("%s (%d/%d enabled", sec.Section.Info().Label, sec.Enabled, len(sec.Items))
		if sec.Footprint.Characters > 0 {
			header += fmt.Sprintf(", ~%s characters", Number(sec.Footprint.Characters))
		}
		header += ")"
		b.WriteString(SectionStyle(sec.Section).Render(header) + "\n")

		if len(sec.Items) == 0 {
			b.WriteString(Indent(MutedStyle.Render("No items in the catalog"), 1) + "\n")
		}
		for _, item := range sec.Items {
			line := mark(item.Enabled) + " " + item.Name
			if label := reasonLabel(item); label != "" {
				line += " " + MutedStyle.Render("("+label+")")
			}
			b.WriteString(Indent(line, 1) + "\n")
		}
		if warning := r.RenderFootprint(sec.Footprint); warning != "" {
			b.WriteString(warning + "\n")
		}
	}

	if res.ShowCollections {
		b.WriteString("\n")
		b.WriteString(CollectionStyle.Render(fmt.Sprintf("Collections (%d/%d enabled)", res.EnabledCollections, len(res.Collections))) + "\n")
		if len(res.Collections) == 0 {
			b.WriteString(Indent(MutedStyle.Render("No collections in the catalog"), 1) + "\n")
		}
		for _, coll := range res.Collections {
			line := mark(coll.Enabled) + " " + coll.Name
			switch {
			case coll.LoadErr != nil:
				line += " " + ErrorStyle.Render("(failed to load: "+coll.LoadErr.Error()+")")
			default:
				detail := fmt.Sprintf("%d items", coll.Members)
				if coll.Title != "" && coll.Title != coll.Name {
					detail = coll.Title + ", " + detail
				}
				line += " " + MutedStyle.Render("("+detail+")")
			}
			b.WriteString(Indent(line, 1) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderFootprint renders the heads-up or the warning of a footprint close
// to or above its limit. It returns an empty string otherwise.
func (r *TerminalRenderer) RenderFootprint(fp commands.Footprint) string {
	label := strings.ToLower(fp.Section.Info().Label)
	switch fp.Level {
	case commands.FootprintExceeded:
		return pterm.Warning.Sprintf("Enabled %s total ~%s characters, above the %s limit. Copilot may drop some of them from its context.",
			label, Number(fp.Characters), Number(int64(fp.Limit)))
	case commands.FootprintApproaching:
		return pterm.Info.Sprintf("Enabled %s total ~%s characters, approaching the %s limit.",
			label, Number(fp.Characters), Number(int64(fp.Limit)))
	}
	return ""
}

// RenderDelta renders the items a change enabled and disabled.
func (r *TerminalRenderer) RenderDelta(d types.Delta) string {
	if d.Empty() {
		return ""
	}
	var b strings.Builder
	for _, ref := range d.Enabled {
		b.WriteString(Indent(SuccessStyle.Render("+")+" "+ref.String(), 1) + "\n")
	}
	for _, ref := range d.Disabled {
		b.WriteString(Indent(ErrorStyle.Render("-")+" "+ref.String(), 1) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func stateVerb(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

var titleCase = cases.Title(language.English)

type toggleView struct {
	Kind  string
	Name  string
	State string
}

func (v toggleView) KindTitle() string  { return titleCase.String(v.Kind) }
func (v toggleView) StateTitle() string { return titleCase.String(v.State) }

// RenderToggle renders the outcome of a toggle.
func (r *TerminalRenderer) RenderToggle(res *commands.ToggleResult) string {
	var b strings.Builder

	switch {
	case res.Collection != nil:
		view := toggleView{Kind: "collection", Name: res.Name, State: stateVerb(res.Collection.Current)}
		if res.Collection.Changed {
			b.WriteString(expand(`<success>{{.StateTitle}}</success> {{.Kind}} <code>{{.Name | html}}</code>`, view))
		} else {
			b.WriteString(expand(`<muted>{{.KindTitle}}</muted> <code>{{.Name | html}}</code> <muted>is already {{.State}}</muted>`, view))
		}
	case res.Item != nil:
		view := toggleView{Kind: res.Target.Singular(), Name: res.Name, State: res.Item.Current.String()}
		switch {
		case !res.Item.Changed:
			b.WriteString(expand(`<muted>{{.KindTitle}}</muted> <code>{{.Name | html}}</code> <muted>is already {{.State}}</muted>`, view))
		case res.Item.Current == types.FlagUnset:
			b.WriteString(expand(`<success>Reset</success> {{.Kind}} <code>{{.Name | html}}</code><muted>, it follows its collections again</muted>`, view))
		default:
			view.State = stateVerb(res.Item.Current == types.FlagOn)
			b.WriteString(expand(`<success>{{.StateTitle}}</success> {{.Kind}} <code>{{.Name | html}}</code>`, view))
		}
	case res.All != nil:
		label := strings.ToLower(res.Target.Label())
		switch {
		case res.All.Updated == 0:
			b.WriteString(MutedStyle.Render(fmt.Sprintf("All %s are already %s", label, res.All.Flag)))
		case res.All.Flag == types.FlagUnset:
			b.WriteString(SuccessStyle.Render("Reset") + fmt.Sprintf(" %d %s", res.All.Updated, label))
		default:
			b.WriteString(SuccessStyle.Render(titleCase.String(stateVerb(res.All.Flag == types.FlagOn))) +
				fmt.Sprintf(" %d %s", res.All.Updated, label))
		}
	}
	b.WriteString("\n")

	if delta := r.RenderDelta(res.Delta()); delta != "" {
		b.WriteString(delta + "\n")
	}

	b.WriteString(MutedStyle.Render(fmt.Sprintf("%s: %d/%d enabled", res.Target.Label(), res.Enabled, res.Available)) + "\n")
	if !res.Target.Collections {
		if warning := r.RenderFootprint(res.Footprint); warning != "" {
			b.WriteString(warning + "\n")
		}
	}
	if res.WideInstructions {
		b.WriteString(pterm.Warning.Sprint("Every instruction is now enabled. Instructions apply to all matching files, so Copilot will see all of them.") + "\n")
	}

	if res.Saved {
		b.WriteString(expand(`<muted>Run</muted> <code>awesome-copilot apply</code> <muted>to update the output directory</muted>`, nil) + "\n")
	} else if res.Changed() {
		b.WriteString(MutedStyle.Render("Dry run, configuration not saved") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func refLines(refs []types.ItemRef, sign string, style func(...string) string) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(Indent(style(sign)+" "+ref.String(), 1) + "\n")
	}
	return b.String()
}

// RenderApply renders the outcome of a synchronization.
func (r *TerminalRenderer) RenderApply(res *commands.ApplyResult) string {
	var b strings.Builder
	sync := res.Sync

	b.WriteString(expand(`<muted>Output:</muted> <path>{{.OutputDir | html}}</path>`, res) + "\n")
	if sync == nil {
		return strings.TrimRight(b.String(), "\n")
	}

	if sync.Cached {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("Up to date, %d items unchanged since the last apply", len(sync.Skipped))) + "\n")
	} else {
		b.WriteString(refLines(sync.Copied, "+", SuccessStyle.Render))
		b.WriteString(refLines(sync.Removed, "-", ErrorStyle.Render))
		for _, f := range sync.Failures {
			b.WriteString(Indent(ErrorStyle.Render(disabledMark)+" "+f.Ref.String()+" "+MutedStyle.Render(f.Err.Error()), 1) + "\n")
		}
	}

	counts := make([]string, 0, types.SectionCount)
	for _, s := range types.Sections {
		counts = append(counts, fmt.Sprintf("%d %s", res.Enabled(s), strings.ToLower(s.Info().Label)))
	}
	b.WriteString("\n" + TitleStyle.Render("Enabled:") + " " + strings.Join(counts, ", ") + "\n")
	if len(res.Collections) > 0 {
		b.WriteString(TitleStyle.Render("Collections:") + " " + strings.Join(res.Collections, ", ") + "\n")
	}

	summary := fmt.Sprintf("%d copied, %d unchanged, %d removed", len(sync.Copied), len(sync.Skipped), len(sync.Removed))
	switch {
	case sync.HasFailures():
		b.WriteString(pterm.Error.Sprintf("%s, %d failed", summary, len(sync.Failures)) + "\n")
	case sync.DryRun:
		b.WriteString(pterm.Info.Sprintf("Dry run: %s", summary) + "\n")
	default:
		b.WriteString(pterm.Success.Sprint(summary) + "\n")
	}
	if res.CacheErr != nil {
		b.WriteString(pterm.Warning.Sprintf("Sync state not saved: %v", res.CacheErr) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderInit renders the outcome of project initialization.
func (r *TerminalRenderer) RenderInit(res *commands.InitResult) string {
	var b strings.Builder
	b.WriteString(pterm.Success.Sprint("Created "+res.ConfigPath) + "\n")
	b.WriteString(Indent(MutedStyle.Render(fmt.Sprintf("%d collections listed, all disabled", len(res.Collections))), 1) + "\n")
	for _, dir := range res.CreatedDirs {
		b.WriteString(Indent(SuccessStyle.Render("+")+" "+PathStyle.Render(dir), 1) + "\n")
	}
	if res.Readme != "" {
		b.WriteString(Indent(SuccessStyle.Render("+")+" "+PathStyle.Render(res.Readme), 1) + "\n")
	}
	if res.VSCodeSettings != "" {
		verb := "Created"
		if res.VSCodeUpdated {
			verb = "Updated"
		}
		b.WriteString(Indent(SuccessStyle.Render("+")+" "+verb+" "+PathStyle.Render(res.VSCodeSettings), 1) + "\n")
	}
	if res.VSCodeWarning != "" {
		b.WriteString(pterm.Warning.Sprint(res.VSCodeWarning) + "\n")
	}
	b.WriteString("\n" + expand(`<muted>Next:</muted> <code>awesome-copilot toggle collections &lt;name&gt; on</code> <muted>then</muted> <code>awesome-copilot apply</code>`, nil))
	return b.String()
}

// RenderValidate renders a manifest validation report.
func (r *TerminalRenderer) RenderValidate(report *catalog.Report) string {
	if report == nil {
		return ""
	}
	if report.Valid() {
		return pterm.Success.Sprintf("%d collections checked, no issues found", report.Checked)
	}

	var b strings.Builder
	current := ""
	for _, issue := range report.Issues {
		if issue.Collection != current {
			current = issue.Collection
			b.WriteString(CollectionStyle.Render(current) + " " + MutedStyle.Render(issue.File) + "\n")
		}
		b.WriteString(Indent(ErrorStyle.Render(disabledMark)+" "+issue.String(), 1) + "\n")
	}
	b.WriteString(pterm.Error.Sprintf("%d issues in %d collections checked", len(report.Issues), report.Checked))
	return b.String()
}

// RenderNewCollection renders the outcome of the new-collection command.
func (r *TerminalRenderer) RenderNewCollection(res *newcollection.NewCollectionResult) string {
	return expand(`<success>Created</success> collection <code>{{.ID | html}}</code> <muted>({{.Name | html}})</muted>
  <path>{{.Path | html}}</path>
<muted>Add items to the manifest, then run</muted> <code>awesome-copilot validate</code>`, res)
}

// RenderInstructions renders the outcome of the instructions command. On a
// dry run the generated content is included.
func (r *TerminalRenderer) RenderInstructions(res *commands.InstructionsResult) string {
	var b strings.Builder
	if !res.Written {
		b.WriteString(res.Content)
		if !strings.HasSuffix(res.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n" + MutedStyle.Render("Dry run, "+res.File+" not written"))
		return b.String()
	}

	b.WriteString(pterm.Success.Sprintf("Wrote %s (%s layout, %d instructions)", res.File, res.Layout, len(res.Instructions)))
	for _, in := range res.Instructions {
		b.WriteString("\n" + Indent(mark(true)+" "+in.Name+" "+MutedStyle.Render("("+string(in.Reason)+")"), 1))
	}
	return b.String()
}

// RenderShow renders an item: a summary of its front matter followed by
// its markdown body.
func (r *TerminalRenderer) RenderShow(res *show.ShowResult) (string, error) {
	var b strings.Builder
	doc := res.Document
	fm := doc.FrontMatter

	title := doc.Title()
	if title == "" {
		title = res.Ref.Name
	}
	b.WriteString(SectionStyle(res.Ref.Section).Render(title) + " " + MutedStyle.Render(res.Ref.String()) + "\n")

	fields := []struct{ label, value string }{
		{"Description", fm.Description},
		{"Apply to", fm.ApplyTo},
		{"Mode", fm.Mode},
		{"Model", fm.Model},
		{"Tools", strings.Join(fm.Tools, ", ")},
		{"Collections", strings.Join(res.Collections, ", ")},
		{"File", res.Path},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(Indent(MutedStyle.Render(f.label+":")+" "+f.value, 1) + "\n")
	}

	body, err := RenderMarkdown(doc.Body, r.color, r.width)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return strings.TrimRight(b.String(), "\n"), nil
}

// RenderError renders an error for the user. Coded errors show their
// message without the code, which only reaches the logs.
func (r *TerminalRenderer) RenderError(err error) string {
	msg := err.Error()
	var ce *errors.CopilotError
	if stderrors.As(err, &ce) {
		msg = ce.Message
		if ce.Wrapped != nil {
			msg += ": " + ce.Wrapped.Error()
		}
	}
	return ErrorStyle.Render("Error:") + " " + msg
}
