package naming

import (
	"context"
	"errors"
	"fmt"
)

// fakeHost is an in-memory namespace. Items are kept in insertion order;
// selected holds item IDs in selection order. Extra names that belong to
// unselected items are added with add(..., false).
type fakeHost struct {
	order    []string
	names    map[string]string // id → name
	selected []string
	warnings []string
	renames  int

	rejectName func(string) bool
	existsErr  error
	selectErr  error
	onRename   func()
}

func newFakeHost() *fakeHost {
	return &fakeHost{names: make(map[string]string)}
}

func (f *fakeHost) add(name string, selected bool) string {
	id := fmt.Sprintf("id%d", len(f.order)+1)
	f.order = append(f.order, id)
	f.names[id] = name
	if selected {
		f.selected = append(f.selected, id)
	}
	return id
}

func (f *fakeHost) selectNames(names ...string) *fakeHost {
	for _, n := range names {
		f.add(n, true)
	}
	return f
}

func (f *fakeHost) Selection(context.Context) ([]Item, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	items := make([]Item, 0, len(f.selected))
	for _, id := range f.selected {
		items = append(items, Item{ID: id, Name: f.names[id]})
	}
	return items, nil
}

func (f *fakeHost) Exists(_ context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, n := range f.names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHost) Rename(_ context.Context, item Item, newName string) error {
	if f.onRename != nil {
		f.onRename()
	}
	if newName == "" || (f.rejectName != nil && f.rejectName(newName)) {
		return fmt.Errorf("%w: %q", ErrRenameRejected, newName)
	}
	for id, n := range f.names {
		if n == newName && id != item.ID {
			return errors.New("name in use")
		}
	}
	f.names[item.ID] = newName
	f.renames++
	return nil
}

func (f *fakeHost) Warn(msg string) {
	f.warnings = append(f.warnings, msg)
}

// selectedNames returns the current names of the selected items in order.
func (f *fakeHost) selectedNames() []string {
	out := make([]string, 0, len(f.selected))
	for _, id := range f.selected {
		out = append(out, f.names[id])
	}
	return out
}
