package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/backmassage/batchrename/internal/naming"
)

// Dir exposes the files of one directory as items. The item ID is the file
// name at the time the Dir was built; with keepExt the item name is the
// stem and Rename re-attaches the original extension.
//
// A dry-run Dir (NewDirDryRun) works on a snapshot of the directory listing:
// Exists and Rename run the same checks as a real Dir, but renames only move
// names within the snapshot.
type Dir struct {
	root    string
	files   []string // selection, in order
	keepExt bool
	warn    WarnFunc

	mu      sync.Mutex
	current map[string]string // ID → file name now (on disk or in the snapshot)
	virtual map[string]bool   // dry-run listing; nil for a real Dir
}

// NewDir returns a Dir host selecting files (names relative to root) in the
// given order.
func NewDir(root string, files []string, keepExt bool, warn WarnFunc) *Dir {
	return &Dir{
		root:    root,
		files:   files,
		keepExt: keepExt,
		warn:    warn,
		current: make(map[string]string, len(files)),
	}
}

// NewDirDryRun is NewDir for a dry run. The directory is listed once; nothing
// on disk is renamed.
func NewDirDryRun(root string, files []string, keepExt bool, warn WarnFunc) (*Dir, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	d := NewDir(root, files, keepExt, warn)
	d.virtual = make(map[string]bool, len(entries))
	for _, e := range entries {
		d.virtual[e.Name()] = true
	}
	return d, nil
}

// SplitExt splits a file name into stem and extension. Dotfiles and names
// without a dot have no extension.
func SplitExt(fileName string) (stem, ext string) {
	ext = filepath.Ext(fileName)
	if ext == fileName {
		return fileName, ""
	}
	return strings.TrimSuffix(fileName, ext), ext
}

// itemName is the user-facing name of a file.
func (d *Dir) itemName(fileName string) string {
	if d.keepExt {
		stem, _ := SplitExt(fileName)
		return stem
	}
	return fileName
}

func (d *Dir) fileOf(id string) string {
	if cur, ok := d.current[id]; ok {
		return cur
	}
	return id
}

func (d *Dir) Selection(ctx context.Context) ([]naming.Item, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]naming.Item, 0, len(d.files))
	for _, id := range d.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := d.fileOf(id)
		onDisk := name
		if d.virtual != nil {
			onDisk = id
		}
		fi, err := os.Lstat(filepath.Join(d.root, onDisk))
		if err != nil {
			return nil, fmt.Errorf("selected file %s: %w", name, err)
		}
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("selected file %s is not a regular file", name)
		}
		items = append(items, naming.Item{ID: id, Name: d.itemName(name)})
	}
	return items, nil
}

// Exists reports whether any entry in the directory carries name, either as
// its full file name or, with keepExt, as its stem.
func (d *Dir) Exists(_ context.Context, name string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries, err := d.listing()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e == name {
			return true, nil
		}
		if d.keepExt {
			if stem, _ := SplitExt(e); stem == name {
				return true, nil
			}
		}
	}
	return false, nil
}

// listing returns the entry names of the directory, or of the snapshot.
func (d *Dir) listing() ([]string, error) {
	if d.virtual != nil {
		names := make([]string, 0, len(d.virtual))
		for n := range d.virtual {
			names = append(names, n)
		}
		return names, nil
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// present reports whether fileName is an entry of the directory, or of the
// snapshot.
func (d *Dir) present(fileName string) (bool, error) {
	if d.virtual != nil {
		return d.virtual[fileName], nil
	}
	_, err := os.Lstat(filepath.Join(d.root, fileName))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	}
	return false, err
}

// move renames cur to target on disk, or in the snapshot.
func (d *Dir) move(cur, target string) error {
	if d.virtual != nil {
		delete(d.virtual, cur)
		d.virtual[target] = true
		return nil
	}
	return os.Rename(filepath.Join(d.root, cur), filepath.Join(d.root, target))
}

// ValidateName refuses names that cannot be a single file name.
func (d *Dir) ValidateName(newName string) error {
	switch {
	case newName == "":
		return rejected("empty file name")
	case newName == "." || newName == "..":
		return rejected("%q is not a file name", newName)
	case strings.ContainsAny(newName, "/\x00") || strings.ContainsRune(newName, filepath.Separator):
		return rejected("%q contains a path separator or NUL", newName)
	}
	return nil
}

func (d *Dir) Rename(_ context.Context, item naming.Item, newName string) error {
	if err := d.ValidateName(newName); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cur := d.fileOf(item.ID)
	target := newName
	if d.keepExt {
		_, ext := SplitExt(cur)
		target = newName + ext
	}
	if target == cur {
		return nil
	}
	taken, err := d.present(target)
	if err != nil {
		return err
	}
	if taken {
		return rejected("%s already exists", target)
	}
	if err := d.move(cur, target); err != nil {
		return err
	}
	d.current[item.ID] = target
	return nil
}

func (d *Dir) Warn(msg string) { d.warn.warn(msg) }

// FileName returns the file name an item has now (in the snapshot for a dry run).
func (d *Dir) FileName(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fileOf(id)
}
