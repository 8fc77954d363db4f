package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/batchrename/internal/naming"
)

// Object is one named entity of a scene.
type Object struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// SceneDoc is the on-disk scene: every object plus the selection as object
// IDs in selection order.
type SceneDoc struct {
	Objects   []Object `yaml:"objects"`
	Selection []string `yaml:"selection,omitempty"`
}

// ParseScene decodes a scene document, assigns IDs to objects without one
// and checks that IDs and names are unique and that the selection resolves
// without repeats.
func ParseScene(data []byte) (*SceneDoc, error) {
	var doc SceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	ids := make(map[string]bool, len(doc.Objects))
	names := make(map[string]bool, len(doc.Objects))
	for i := range doc.Objects {
		o := &doc.Objects[i]
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if ids[o.ID] {
			return nil, fmt.Errorf("duplicate object id %q", o.ID)
		}
		if o.Name == "" {
			return nil, fmt.Errorf("object %q has no name", o.ID)
		}
		if names[o.Name] {
			return nil, fmt.Errorf("duplicate object name %q", o.Name)
		}
		ids[o.ID] = true
		names[o.Name] = true
	}
	selected := make(map[string]bool, len(doc.Selection))
	for _, id := range doc.Selection {
		if !ids[id] {
			return nil, fmt.Errorf("selection references unknown object %q", id)
		}
		if selected[id] {
			return nil, fmt.Errorf("duplicate selection entry %q", id)
		}
		selected[id] = true
	}
	return &doc, nil
}

// ReadScene loads and parses a scene file.
func ReadScene(path string) (*SceneDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// Scene is a host over a SceneDoc kept in memory. Renames are applied to the
// document; Save writes it back.
type Scene struct {
	path string
	warn WarnFunc

	mu    sync.Mutex
	doc   *SceneDoc
	index map[string]int // ID → position in doc.Objects
	dirty bool
}

// OpenScene reads the scene at path.
func OpenScene(path string, warn WarnFunc) (*Scene, error) {
	doc, err := ReadScene(path)
	if err != nil {
		return nil, err
	}
	return NewScene(path, doc, warn), nil
}

// NewScene wraps an already parsed document. path is where Save writes.
func NewScene(path string, doc *SceneDoc, warn WarnFunc) *Scene {
	s := &Scene{path: path, warn: warn, doc: doc, index: make(map[string]int, len(doc.Objects))}
	for i, o := range doc.Objects {
		s.index[o.ID] = i
	}
	return s
}

// SelectNames replaces the selection with the objects carrying names, in
// the given order. The override alone does not mark the scene dirty.
func (s *Scene) SelectNames(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		id, ok := s.idOf(n)
		if !ok {
			return fmt.Errorf("no object named %q", n)
		}
		if seen[id] {
			return fmt.Errorf("object %q selected twice", n)
		}
		seen[id] = true
		sel = append(sel, id)
	}
	s.doc.Selection = sel
	return nil
}

func (s *Scene) idOf(name string) (string, bool) {
	for _, o := range s.doc.Objects {
		if o.Name == name {
			return o.ID, true
		}
	}
	return "", false
}

// Objects returns a copy of the scene objects.
func (s *Scene) Objects() []Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Object(nil), s.doc.Objects...)
}

func (s *Scene) Selection(_ context.Context) ([]naming.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]naming.Item, 0, len(s.doc.Selection))
	for _, id := range s.doc.Selection {
		i, ok := s.index[id]
		if !ok {
			return nil, fmt.Errorf("selection references unknown object %q", id)
		}
		items = append(items, naming.Item{ID: id, Name: s.doc.Objects[i].Name})
	}
	return items, nil
}

func (s *Scene) Exists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.idOf(name)
	return ok, nil
}

// ValidateName refuses names that are not identifiers.
func (s *Scene) ValidateName(newName string) error { return validIdentifier(newName) }

func (s *Scene) Rename(_ context.Context, item naming.Item, newName string) error {
	if err := validIdentifier(newName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[item.ID]
	if !ok {
		return fmt.Errorf("object %q not found", item.ID)
	}
	if owner, taken := s.idOf(newName); taken && owner != item.ID {
		return rejected("%q is used by another object", newName)
	}
	s.doc.Objects[i].Name = newName
	s.dirty = true
	return nil
}

func (s *Scene) Warn(msg string) { s.warn.warn(msg) }

// Dirty reports whether the document changed since it was loaded or saved.
func (s *Scene) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save writes the document back to its path through a temp file and rename,
// so readers never see a partial scene.
func (s *Scene) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// writeFileAtomic replaces path with data via a temp file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, fi.Mode().Perm())
	}
	return os.Rename(tmpName, path)
}
