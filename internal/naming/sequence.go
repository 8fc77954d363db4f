package naming

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPadding bounds the zero-padding width accepted by RenameSequential.
const MaxPadding = 32

// NumberingInput carries the numbering fields as free text, the way a form
// or command line supplies them.
type NumberingInput struct {
	BaseName string
	Start    string
	Padding  string
}

// NumberingRequest is the parsed form of NumberingInput.
type NumberingRequest struct {
	BaseName string
	Start    int
	Padding  int
}

// ParseNumbering converts the start and padding text to integers. It does not
// look at the base name. Returns ErrNotANumber when either field is not an
// integer and ErrOutOfRange when either is negative or padding exceeds
// MaxPadding.
func ParseNumbering(in NumberingInput) (NumberingRequest, error) {
	start, err := strconv.Atoi(strings.TrimSpace(in.Start))
	if err != nil {
		return NumberingRequest{}, fmt.Errorf("%w: start %q", ErrNotANumber, in.Start)
	}
	padding, err := strconv.Atoi(strings.TrimSpace(in.Padding))
	if err != nil {
		return NumberingRequest{}, fmt.Errorf("%w: padding %q", ErrNotANumber, in.Padding)
	}
	req := NumberingRequest{BaseName: in.BaseName, Start: start, Padding: padding}
	if err := checkRange(req); err != nil {
		return NumberingRequest{}, err
	}
	return req, nil
}

func checkRange(req NumberingRequest) error {
	if req.Start < 0 {
		return fmt.Errorf("%w: start %d", ErrOutOfRange, req.Start)
	}
	if req.Padding < 0 || req.Padding > MaxPadding {
		return fmt.Errorf("%w: padding %d (0-%d)", ErrOutOfRange, req.Padding, MaxPadding)
	}
	return nil
}

// FormatSuffix renders index in decimal, left-padded with zeros to at least
// padding digits. Wider numbers are kept whole: FormatSuffix(999, 2) is "999".
func FormatSuffix(index, padding int) string {
	return fmt.Sprintf("%0*d", padding, index)
}

// RenameSequential parses in and renames the selection to
// <base>_<start+i>, see RenameSequentialRequest. Preconditions are checked in
// this order: selection, empty base name, all-digit base name, numbers.
func (r *Renamer) RenameSequential(ctx context.Context, in NumberingInput) ([]Outcome, error) {
	return r.renameSequential(ctx, in.BaseName, func() (NumberingRequest, error) {
		return ParseNumbering(in)
	})
}

// RenameSequentialRequest renames the selected items, in selection order, to
// <base>_<suffix> where base is the sanitized base name and suffix is
// FormatSuffix(req.Start+i, req.Padding).
//
// Before each rename the host's existence oracle is asked about the
// candidate. A name that is already taken anywhere in the namespace skips the
// item with ErrNameCollision; the index still advances, so gaps are left
// rather than back-filled.
func (r *Renamer) RenameSequentialRequest(ctx context.Context, req NumberingRequest) ([]Outcome, error) {
	return r.renameSequential(ctx, req.BaseName, func() (NumberingRequest, error) {
		return req, checkRange(req)
	})
}

func (r *Renamer) renameSequential(ctx context.Context, baseName string, parse func() (NumberingRequest, error)) ([]Outcome, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if baseName == "" {
		return nil, r.abort(ErrEmptyBaseName)
	}
	if isAllDigits(baseName) && r.opts.NumericPolicy == NumericReject {
		return nil, r.abort(fmt.Errorf("%w: %q", ErrInvalidBaseName, baseName))
	}
	req, err := parse()
	if err != nil {
		return nil, r.abort(err)
	}
	if req.Start > math.MaxInt-(len(items)-1) {
		return nil, r.abort(fmt.Errorf("%w: start %d overflows for %d items", ErrOutOfRange, req.Start, len(items)))
	}
	base, err := Sanitize(baseName)
	if err != nil {
		return nil, r.abort(fmt.Errorf("%w: %q: %w", ErrInvalidBaseName, baseName, err))
	}

	outcomes := make([]Outcome, 0, len(items))
	for i, item := range items {
		if ctx.Err() != nil {
			return append(outcomes, cancelled(ctx, items[i:])...), nil
		}
		candidate := base + "_" + FormatSuffix(req.Start+i, req.Padding)

		exists, err := r.host.Exists(ctx, candidate)
		if err != nil {
			r.host.Warn(fmt.Sprintf("Could not check name '%s': %v", candidate, err))
			outcomes = append(outcomes, Outcome{Item: item, NewName: candidate, Status: StatusSkipped, Err: err})
			continue
		}
		if exists {
			r.host.Warn(fmt.Sprintf("Object name '%s' already exists!", candidate))
			outcomes = append(outcomes, Outcome{
				Item: item, NewName: candidate, Status: StatusSkipped,
				Err: fmt.Errorf("%w: %s", ErrNameCollision, candidate),
			})
			continue
		}
		outcomes = append(outcomes, r.apply(ctx, item, candidate))
	}
	return outcomes, nil
}
