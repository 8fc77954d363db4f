// Package naming implements batch renaming of host-owned items: name
// sanitization, substring search-and-replace, and sequential
// rename-with-numeric-suffix with collision skipping.
//
// The package never touches storage directly. Everything it reads or
// mutates goes through a [Host]: the selection snapshot, the namespace-wide
// existence oracle, the rename primitive, and the warning channel. Hosts live
// in internal/host; tests use an in-memory fake.
//
// Both operations validate their preconditions eagerly and abort before any
// mutation when one fails. Once iteration starts, a failure on one item is
// reported and recorded in its [Outcome] and the next item is processed.
//
// Files:
//   - sanitize.go: Sanitize, IsValidName
//   - replace.go:  (*Renamer).SearchReplace
//   - sequence.go: ParseNumbering, FormatSuffix, (*Renamer).RenameSequential
//   - collision.go: Claims, the in-run name ownership tracker
package naming
