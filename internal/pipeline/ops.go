package pipeline

import (
	"context"
	"fmt"

	"github.com/backmassage/batchrename/internal/naming"
)

// Operation is one rename operation run against the selection.
type Operation interface {
	// Describe returns a one-line description for the batch header.
	Describe() string
	Apply(ctx context.Context, r *naming.Renamer) ([]naming.Outcome, error)
}

// ReplaceOp replaces every occurrence of Search with Replace.
type ReplaceOp struct {
	Search  string
	Replace string
}

func (op ReplaceOp) Describe() string {
	return fmt.Sprintf("Replace %q with %q", op.Search, op.Replace)
}

func (op ReplaceOp) Apply(ctx context.Context, r *naming.Renamer) ([]naming.Outcome, error) {
	return r.SearchReplace(ctx, naming.ReplaceRequest{Search: op.Search, Replace: op.Replace})
}

// NumberOp renames the selection to BaseName_<index>. Start and Padding are
// raw user text; the renamer validates them.
type NumberOp struct {
	BaseName string
	Start    string
	Padding  string
}

func (op NumberOp) Describe() string {
	return fmt.Sprintf("Number as %q (start %s, padding %s)", op.BaseName, op.Start, op.Padding)
}

func (op NumberOp) Apply(ctx context.Context, r *naming.Renamer) ([]naming.Outcome, error) {
	return r.RenameSequential(ctx, naming.NumberingInput{BaseName: op.BaseName, Start: op.Start, Padding: op.Padding})
}
