// Package host implements naming.Host over concrete namespaces:
//
//   - Dir: files in one directory (the item name is the file stem).
//   - Scene: objects in a YAML scene file, saved atomically.
//   - Store: objects in a SQLite scene database.
//   - Preview: a dry-run overlay over any of the above.
//
// Every host reports refusals wrapped in naming.ErrRenameRejected and sends
// warnings through a WarnFunc, normally the run logger's Warn.
package host

import (
	"fmt"

	"github.com/backmassage/batchrename/internal/naming"
)

// WarnFunc receives user-visible warnings. A nil WarnFunc drops them.
type WarnFunc func(msg string)

func (w WarnFunc) warn(msg string) {
	if w != nil {
		w(msg)
	}
}

// Validator is implemented by hosts that can check a name without applying
// it. Preview uses it so a dry run refuses the same names a real run would.
type Validator interface {
	ValidateName(newName string) error
}

// validIdentifier rejects names that are not scene identifiers.
func validIdentifier(newName string) error {
	if !naming.IsValidName(newName) {
		return fmt.Errorf("%w: %q is not a valid object name", naming.ErrRenameRejected, newName)
	}
	return nil
}

// rejected builds a refusal that wraps naming.ErrRenameRejected.
func rejected(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", naming.ErrRenameRejected, fmt.Sprintf(format, args...))
}
