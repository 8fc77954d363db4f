package pipeline

import "github.com/backmassage/batchrename/internal/naming"

// RunStats tracks the tally of one run. Failed counts setup and save errors;
// Aborted means a precondition stopped the operation before any rename.
type RunStats struct {
	Total     int
	Renamed   int
	Skipped   int
	Unchanged int
	Failed    int
	Aborted   bool
	Outcomes  []naming.Outcome
}

// add folds per-item outcomes into the counters.
func (s *RunStats) add(outcomes []naming.Outcome) {
	sum := naming.Summarize(outcomes)
	s.Total += sum.Total()
	s.Renamed += sum.Renamed
	s.Skipped += sum.Skipped
	s.Unchanged += sum.Unchanged
	s.Outcomes = append(s.Outcomes, outcomes...)
}

// Summary returns the counters as a naming.Summary.
func (s *RunStats) Summary() naming.Summary {
	return naming.Summary{Renamed: s.Renamed, Skipped: s.Skipped, Unchanged: s.Unchanged}
}

// ExitCode is 0 for a clean run and 1 when the run aborted, failed, or
// skipped any item.
func (s *RunStats) ExitCode() int {
	if s.Aborted || s.Failed > 0 || s.Skipped > 0 {
		return 1
	}
	return 0
}
