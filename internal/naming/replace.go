package naming

import (
	"context"
	"strings"
)

// ReplaceRequest is the input to SearchReplace. Search must be non-empty.
type ReplaceRequest struct {
	Search  string
	Replace string
}

// SearchReplace renames every selected item whose name contains req.Search,
// replacing all non-overlapping occurrences with req.Replace.
//
// Preconditions, checked in order: a non-empty selection (ErrNoSelection),
// then a non-empty search text (ErrEmptySearch). No collision check is made
// here; whether a name may be taken is the host's decision, and a refusal
// skips that item only.
//
// Items without a match, and items whose name would not change, are reported
// as StatusUnchanged and the host is not called for them.
func (r *Renamer) SearchReplace(ctx context.Context, req ReplaceRequest) ([]Outcome, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if req.Search == "" {
		return nil, r.abort(ErrEmptySearch)
	}

	outcomes := make([]Outcome, 0, len(items))
	for i, item := range items {
		if ctx.Err() != nil {
			return append(outcomes, cancelled(ctx, items[i:])...), nil
		}
		if !strings.Contains(item.Name, req.Search) {
			outcomes = append(outcomes, Outcome{Item: item, Status: StatusUnchanged})
			continue
		}
		newName := strings.ReplaceAll(item.Name, req.Search, req.Replace)
		if newName == item.Name {
			outcomes = append(outcomes, Outcome{Item: item, Status: StatusUnchanged})
			continue
		}
		outcomes = append(outcomes, r.apply(ctx, item, newName))
	}
	return outcomes, nil
}
