package naming

import (
	"context"
	"errors"
	"fmt"
)

// NumericPolicy decides what RenameSequential does with a base name made only
// of digits.
type NumericPolicy string

const (
	NumericReject NumericPolicy = "reject" // Abort with ErrInvalidBaseName (default).
	NumericPrefix NumericPolicy = "prefix" // Keep going; Sanitize prefixes "_".
)

// Options tunes a Renamer. The zero value is valid.
type Options struct {
	NumericPolicy NumericPolicy
}

// Renamer runs rename operations against a Host. It keeps no state between
// calls; each operation snapshots the selection once at entry.
type Renamer struct {
	host Host
	opts Options
}

// NewRenamer returns a Renamer bound to h.
func NewRenamer(h Host, opts Options) *Renamer {
	if opts.NumericPolicy == "" {
		opts.NumericPolicy = NumericReject
	}
	return &Renamer{host: h, opts: opts}
}

// snapshot reads the selection and enforces the non-empty precondition.
func (r *Renamer) snapshot(ctx context.Context) ([]Item, error) {
	items, err := r.host.Selection(ctx)
	if err != nil {
		return nil, r.abort(fmt.Errorf("read selection: %w", err))
	}
	if len(items) == 0 {
		return nil, r.abort(ErrNoSelection)
	}
	return items, nil
}

// abort reports a precondition failure once and hands it back to the caller.
func (r *Renamer) abort(err error) error {
	r.host.Warn(warningText(err))
	return err
}

// apply renames one item, wrapping host errors so they classify as
// ErrRenameRejected.
func (r *Renamer) apply(ctx context.Context, item Item, newName string) Outcome {
	if err := r.host.Rename(ctx, item, newName); err != nil {
		if !errors.Is(err, ErrRenameRejected) {
			err = fmt.Errorf("%w: %w", ErrRenameRejected, err)
		}
		r.host.Warn(fmt.Sprintf("Could not rename '%s' to '%s': %v", item.Name, newName, err))
		return Outcome{Item: item, NewName: newName, Status: StatusSkipped, Err: err}
	}
	return Outcome{Item: item, NewName: newName, Status: StatusRenamed}
}

// cancelled fills in Skipped outcomes for items left when ctx is done.
func cancelled(ctx context.Context, rest []Item) []Outcome {
	out := make([]Outcome, 0, len(rest))
	for _, item := range rest {
		out = append(out, Outcome{Item: item, Status: StatusSkipped, Err: ctx.Err()})
	}
	return out
}

// warningText maps precondition errors to the user-facing messages.
func warningText(err error) string {
	switch {
	case errors.Is(err, ErrNoSelection):
		return "Please select the object"
	case errors.Is(err, ErrEmptySearch):
		return "Please enter a search text"
	case errors.Is(err, ErrEmptyBaseName):
		return "Please enter a new name"
	case errors.Is(err, ErrInvalidName):
		return "The base name has no usable characters. Please use letters, digits or underscores."
	case errors.Is(err, ErrInvalidBaseName):
		return "The base name cannot be only numbers. Please use letters."
	case errors.Is(err, ErrNotANumber):
		return "Start number and padding must be numbers!"
	case errors.Is(err, ErrOutOfRange):
		return "Start number and padding are out of range!"
	}
	return err.Error()
}
