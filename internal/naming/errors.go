package naming

import "errors"

// Precondition errors. Each aborts an operation before any item is renamed.
var (
	ErrNoSelection     = errors.New("no items selected")
	ErrEmptySearch     = errors.New("search text is empty")
	ErrEmptyBaseName   = errors.New("base name is empty")
	ErrInvalidBaseName = errors.New("base name cannot be only numbers")
	ErrNotANumber      = errors.New("start number and padding must be numbers")
	ErrOutOfRange      = errors.New("start number and padding must be non-negative")
)

// Per-item errors. The item is skipped and the operation moves on.
var (
	ErrNameCollision  = errors.New("name already exists")
	ErrRenameRejected = errors.New("rename rejected by host")
)

// ErrInvalidName is returned by [Sanitize] when nothing usable is left.
var ErrInvalidName = errors.New("name has no valid characters")
