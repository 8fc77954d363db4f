// Package display renders run results for the terminal: the banner, the
// per-item results table and the summary line.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/backmassage/batchrename/internal/naming"
	"github.com/backmassage/batchrename/internal/term"
)

// StatusLabel returns the status word styled for the terminal.
func StatusLabel(s naming.Status) string {
	switch s {
	case naming.StatusRenamed:
		return term.Good.Render(s.String())
	case naming.StatusSkipped:
		return term.Caution.Render(s.String())
	}
	return term.Muted.Render(s.String())
}

// Reason returns a short explanation for a non-renamed outcome.
func Reason(o naming.Outcome) string {
	switch {
	case o.Err == nil:
		return ""
	case errors.Is(o.Err, naming.ErrNameCollision):
		return "name already exists"
	}
	return o.Err.Error()
}

// FormatRename returns "old -> new".
func FormatRename(oldName, newName string) string {
	return oldName + " -> " + newName
}

// FormatSummary returns the one-line tally, e.g. "3 renamed, 1 skipped, 0 unchanged".
// In preview mode the verbs switch to "would be renamed".
func FormatSummary(s naming.Summary, preview bool) string {
	renamed := "renamed"
	if preview {
		renamed = "would be renamed"
	}
	return fmt.Sprintf("%d %s, %d skipped, %d unchanged", s.Renamed, renamed, s.Skipped, s.Unchanged)
}

// RenderOutcomes writes a table with one row per outcome. Nothing is
// written for an empty slice.
func RenderOutcomes(w io.Writer, outcomes []naming.Outcome) {
	if len(outcomes) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Old", "New", "Status", "Reason"})

	for i, o := range outcomes {
		newName := o.NewName
		if o.Status == naming.StatusUnchanged {
			newName = ""
		}
		t.AppendRow(table.Row{i + 1, o.Item.Name, newName, StatusLabel(o.Status), truncate(Reason(o), 60)})
	}
	t.Render()
}

// truncate shortens s to maxLen runes on one line.
func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
