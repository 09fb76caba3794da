package display

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/relayout/pkg/config"
	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/arthur-debert/relayout/pkg/logging"
	"github.com/arthur-debert/relayout/pkg/migrate"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes results to an output in one Format
type Renderer struct {
	w      io.Writer
	format Format
	lg     *lipgloss.Renderer
}

// NewRenderer creates a renderer for w. FormatAuto is resolved with
// DetectFormat.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	logger := logging.GetLogger("display.renderer")
	logger.Debug().
		Str("format", format.String()).
		Msg("Creating renderer")

	return &Renderer{
		w:      w,
		format: format,
		lg:     lipgloss.NewRenderer(w),
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) styled(name, s string) string {
	if r.format != FormatTerminal || s == "" {
		return s
	}
	return GetStyle(name).Renderer(r.lg).Render(s)
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %s is not structured", r.format)
}

func (r *Renderer) structured() bool {
	return r.format == FormatJSON || r.format == FormatYAML
}

// table renders rows with the first row as header
func (r *Renderer) table(rows [][]string) error {
	t := pterm.DefaultTable.WithHasHeader().WithData(rows)
	if r.format != FormatTerminal {
		plain := pterm.NewStyle()
		t = t.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}
	out, err := t.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}

// RenderFileInfos prints one classification per path
func (r *Renderer) RenderFileInfos(infos []types.FileInfo) error {
	if r.structured() {
		return r.encode(infos)
	}

	rows := [][]string{{"SOURCE", "TYPE", "NAME", "COLLECTION", "GROUP", "DESTINATION"}}
	for _, info := range infos {
		dest := r.styled("Dest", info.DestRelativePath)
		switch {
		case info.Excluded:
			dest = r.styled("Excluded", MsgExcluded)
		case !info.Moves():
			dest = r.styled("Muted", MsgUnchanged)
		}
		rows = append(rows, []string{
			r.styled("Source", info.SourceRelativePath),
			r.styled("Type", info.Type),
			info.Name,
			info.Collection,
			info.CollectionGroup,
			dest,
		})
	}
	return r.table(rows)
}

// RenderRules prints a rule table in evaluation order
func (r *Renderer) RenderRules(ruleList []config.Rule) error {
	if r.structured() {
		return r.encode(ruleList)
	}

	rows := [][]string{{"#", "PATTERN", "TYPE", "COLLECTION", "GROUP", "DESTINATION"}}
	for i, rule := range ruleList {
		dest := rule.Destination
		if rule.IsExclusion() {
			dest = r.styled("Excluded", MsgExcluded)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.styled("Pattern", rule.Pattern),
			r.styled("Type", rule.Type),
			rule.Collection,
			rule.CollectionGroup,
			dest,
		})
	}
	return r.table(rows)
}

// RenderResult prints the outcome of a migration
func (r *Renderer) RenderResult(result *migrate.Result) error {
	if r.structured() {
		return r.encode(result)
	}

	if len(result.Moves) == 0 {
		_, err := fmt.Fprintln(r.w, r.styled("Muted", MsgNothingToMove))
		return err
	}

	rows := [][]string{{"SOURCE", "DESTINATION", "TYPE"}}
	for _, move := range result.Moves {
		rows = append(rows, []string{
			r.styled("Source", move.Info.SourceRelativePath),
			r.styled("Dest", move.Info.DestRelativePath),
			r.styled("Type", move.Info.Type),
		})
	}
	if err := r.table(rows); err != nil {
		return err
	}

	if len(result.Excluded) > 0 {
		fmt.Fprintln(r.w, r.styled("Header", MsgExcludedHeader))
		for _, info := range result.Excluded {
			fmt.Fprintf(r.w, MsgExcludedItem, r.styled("Excluded", info.SourceRelativePath))
		}
	}

	if result.DryRun {
		fmt.Fprintln(r.w, r.styled("DryRunBanner", MsgDryRunNotice))
		_, err := fmt.Fprintf(r.w, MsgWouldMoveFormat, len(result.Moves))
		return err
	}

	summary := fmt.Sprintf(MsgMovedFormat, len(result.Moves), result.Duration.Round(time.Millisecond))
	if _, err := fmt.Fprintln(r.w, r.styled("Success", summary)); err != nil {
		return err
	}
	if len(result.RemovedSources) > 0 {
		fmt.Fprintf(r.w, MsgRemovedFormat, len(result.RemovedSources), len(result.PrunedDirs))
	}
	return nil
}

// RenderError prints an error with its code, details and a hint
func (r *Renderer) RenderError(err error) error {
	if r.structured() {
		out := map[string]interface{}{
			"error": err.Error(),
			"code":  string(errors.GetErrorCode(err)),
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			out["details"] = details
		}
		if hint := errors.Hint(err); hint != "" {
			out["hint"] = hint
		}
		return r.encode(out)
	}

	if _, werr := fmt.Fprintln(r.w, r.styled("Error", "Error:")+" "+err.Error()); werr != nil {
		return werr
	}
	for _, line := range errors.DetailLines(err) {
		fmt.Fprintf(r.w, MsgDetailItem, r.styled("Muted", line))
	}
	if hint := errors.Hint(err); hint != "" {
		fmt.Fprintf(r.w, MsgHintFormat, r.styled("Warning", hint))
	}
	return nil
}
