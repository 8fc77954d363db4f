package host

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/backmassage/batchrename/internal/naming"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is a host over a SQLite scene database. Object names are unique in
// the table; the selection is the rows with a selected_order, ascending.
type Store struct {
	db   *sql.DB
	path string
	warn WarnFunc
}

// OpenStore opens (creating if needed) the database at path and applies
// pending migrations. Use ":memory:" for a private in-memory database.
func OpenStore(ctx context.Context, path string, warn WarnFunc) (*Store, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A second connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, path: path, warn: warn}, nil
}

// migrate runs all pending migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database path.
func (s *Store) Path() string { return s.path }

// Import replaces every object with the scene's objects and selection.
// Objects without an ID get a new UUID.
func (s *Store) Import(ctx context.Context, doc *SceneDoc) error {
	order := make(map[string]int, len(doc.Selection))
	for i, id := range doc.Selection {
		order[id] = i
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM objects`); err != nil {
		return fmt.Errorf("failed to clear objects: %w", err)
	}
	for _, o := range doc.Objects {
		id := o.ID
		if id == "" {
			id = uuid.NewString()
		}
		var sel sql.NullInt64
		if i, ok := order[o.ID]; ok && o.ID != "" {
			sel = sql.NullInt64{Int64: int64(i), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO objects (id, name, type, selected_order) VALUES (?, ?, ?, ?)`,
			id, o.Name, o.Type, sel,
		); err != nil {
			return fmt.Errorf("failed to import object %q: %w", o.Name, err)
		}
	}
	return tx.Commit()
}

// Objects returns every object ordered by name.
func (s *Store) Objects(ctx context.Context) ([]Object, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type FROM objects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	var out []Object
	for rows.Next() {
		var o Object
		if err := rows.Scan(&o.ID, &o.Name, &o.Type); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Select replaces the selection with the objects carrying names, in order.
func (s *Store) Select(ctx context.Context, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return fmt.Errorf("object %q selected twice", n)
		}
		seen[n] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `UPDATE objects SET selected_order = NULL`); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	for i, n := range names {
		res, err := tx.ExecContext(ctx, `UPDATE objects SET selected_order = ? WHERE name = ?`, i, n)
		if err != nil {
			return fmt.Errorf("failed to select %q: %w", n, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return fmt.Errorf("no object named %q", n)
		}
	}
	return tx.Commit()
}

func (s *Store) Selection(ctx context.Context) ([]naming.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM objects WHERE selected_order IS NOT NULL ORDER BY selected_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	defer rows.Close()

	var items []naming.Item
	for rows.Next() {
		var it naming.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM objects WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ValidateName refuses names that are not identifiers.
func (s *Store) ValidateName(newName string) error { return validIdentifier(newName) }

func (s *Store) Rename(ctx context.Context, item naming.Item, newName string) error {
	if err := validIdentifier(newName); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var owner string
	err = tx.QueryRowContext(ctx, `SELECT id FROM objects WHERE name = ?`, newName).Scan(&owner)
	switch {
	case err == nil && owner != item.ID:
		return rejected("%q is used by another object", newName)
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE objects SET name = ? WHERE id = ?`, newName, item.ID)
	if err != nil {
		return fmt.Errorf("failed to rename object %q: %w", item.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("object %q not found", item.ID)
	}
	return tx.Commit()
}

func (s *Store) Warn(msg string) { s.warn.warn(msg) }
