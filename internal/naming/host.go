package naming

import "context"

// Item is a host-managed named entity. ID is assigned by the host and never
// changes with the name; Name is the value observed when the selection was
// taken.
type Item struct {
	ID   string
	Name string
}

// Host is the environment that owns items and their namespace.
//
// Exists must answer for the whole namespace, not just the selection.
// Rename is atomic per call; a refusal should wrap [ErrRenameRejected], and
// errors that don't are wrapped by the caller. Warn is the user-visible,
// non-fatal notification channel.
type Host interface {
	Selection(ctx context.Context) ([]Item, error)
	Exists(ctx context.Context, name string) (bool, error)
	Rename(ctx context.Context, item Item, newName string) error
	Warn(msg string)
}
