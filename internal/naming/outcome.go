package naming

// Status is the per-item result of an operation.
type Status int

const (
	StatusRenamed   Status = iota // Host accepted the new name.
	StatusSkipped                 // Collision, host refusal, or cancellation.
	StatusUnchanged               // Search text absent or replacement was a no-op.
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusSkipped:
		return "skipped"
	case StatusUnchanged:
		return "unchanged"
	}
	return "unknown"
}

// Outcome records what happened to one selected item. NewName is the name
// that was applied (Renamed) or attempted (Skipped); it is empty for
// Unchanged items. Err is set only for Skipped items.
type Outcome struct {
	Item    Item
	NewName string
	Status  Status
	Err     error
}

// Summary holds aggregate counts over a list of outcomes.
type Summary struct {
	Renamed   int
	Skipped   int
	Unchanged int
}

// Total returns the number of items the counts cover.
func (s Summary) Total() int {
	return s.Renamed + s.Skipped + s.Unchanged
}

// Summarize counts outcomes by status.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case StatusRenamed:
			s.Renamed++
		case StatusSkipped:
			s.Skipped++
		case StatusUnchanged:
			s.Unchanged++
		}
	}
	return s
}
