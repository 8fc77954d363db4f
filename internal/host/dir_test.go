package host

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/batchrename/internal/naming"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

type warnings []string

func (w *warnings) add(msg string) { *w = append(*w, msg) }

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"shot.png", "shot", ".png"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".hidden", ".hidden", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			stem, ext := SplitExt(tt.in)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestDir_SelectionKeepsOrderAndStems(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.png", "a.png")

	d := NewDir(dir, []string{"b.png", "a.png"}, true, nil)
	items, err := d.Selection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []naming.Item{{ID: "b.png", Name: "b"}, {ID: "a.png", Name: "a"}}, items)

	d = NewDir(dir, []string{"a.png"}, false, nil)
	items, err = d.Selection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a.png", items[0].Name)
}

func TestDir_SelectionMissingFile(t *testing.T) {
	d := NewDir(t.TempDir(), []string{"gone.txt"}, true, nil)
	_, err := d.Selection(context.Background())
	assert.Error(t, err)
}

func TestDir_Exists(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Prop_001.png", "notes")

	withExt := NewDir(dir, nil, true, nil)
	for name, want := range map[string]bool{"Prop_001": true, "Prop_001.png": true, "notes": true, "Prop_002": false} {
		got, err := withExt.Exists(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	fullNames := NewDir(dir, nil, false, nil)
	got, err := fullNames.Exists(context.Background(), "Prop_001")
	require.NoError(t, err)
	assert.False(t, got, "stems only count with keepExt")
}

func TestDir_RenameKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "IMG_1.jpg")
	d := NewDir(dir, []string{"IMG_1.jpg"}, true, nil)

	require.NoError(t, d.Rename(context.Background(), naming.Item{ID: "IMG_1.jpg", Name: "IMG_1"}, "Beach_01"))
	assert.Equal(t, []string{"Beach_01.jpg"}, listDir(t, dir))
	assert.Equal(t, "Beach_01.jpg", d.FileName("IMG_1.jpg"))

	items, err := d.Selection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Beach_01", items[0].Name, "selection follows the rename")
}

func TestDir_RenameRejections(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")
	d := NewDir(dir, []string{"a.txt"}, true, nil)
	item := naming.Item{ID: "a.txt", Name: "a"}

	for _, bad := range []string{"", ".", "..", "sub/dir", "nul\x00"} {
		err := d.Rename(context.Background(), item, bad)
		assert.ErrorIs(t, err, naming.ErrRenameRejected, "%q", bad)
	}
	err := d.Rename(context.Background(), item, "b")
	assert.ErrorIs(t, err, naming.ErrRenameRejected, "target exists")
	assert.Equal(t, []string{"a.txt", "b.txt"}, listDir(t, dir))
}

func TestDir_RenameToSameNameIsNoop(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")
	d := NewDir(dir, []string{"a.txt"}, true, nil)
	assert.NoError(t, d.Rename(context.Background(), naming.Item{ID: "a.txt", Name: "a"}, "a"))
}

func TestDir_Warn(t *testing.T) {
	var w warnings
	d := NewDir(t.TempDir(), nil, true, w.add)
	d.Warn("careful")
	assert.Equal(t, warnings{"careful"}, w)

	NewDir(t.TempDir(), nil, true, nil).Warn("dropped")
}

func TestDir_WithRenamer(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "c.png", "a.png", "b.png", "Shot_002.png")
	var w warnings
	d := NewDir(dir, []string{"a.png", "b.png", "c.png"}, true, w.add)

	outcomes, err := naming.NewRenamer(d, naming.Options{}).
		RenameSequential(context.Background(), naming.NumberingInput{BaseName: "Shot", Start: "1", Padding: "3"})
	require.NoError(t, err)

	assert.Equal(t, naming.Summary{Renamed: 2, Skipped: 1}, naming.Summarize(outcomes))
	assert.Equal(t, []string{"Shot_001.png", "Shot_002.png", "Shot_003.png", "b.png"}, listDir(t, dir))
	assert.Equal(t, warnings{"Object name 'Shot_002' already exists!"}, w)
}

func TestDir_SearchReplace(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cube_v1.obj", "cube_v2.obj", "sphere_v1.obj")
	d := NewDir(dir, []string{"cube_v1.obj", "cube_v2.obj", "sphere_v1.obj"}, true, nil)

	_, err := naming.NewRenamer(d, naming.Options{}).
		SearchReplace(context.Background(), naming.ReplaceRequest{Search: "cube", Replace: "box"})
	require.NoError(t, err)
	assert.Equal(t, []string{"box_v1.obj", "box_v2.obj", "sphere_v1.obj"}, listDir(t, dir))
}

func TestDir_DryRunLeavesDirectoryUntouched(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png", "b.png", "Shot_002.png")
	before := listDir(t, dir)

	var w warnings
	d, err := NewDirDryRun(dir, []string{"a.png", "b.png"}, true, w.add)
	require.NoError(t, err)
	outcomes, err := naming.NewRenamer(d, naming.Options{}).
		RenameSequential(context.Background(), naming.NumberingInput{BaseName: "Shot", Start: "1", Padding: "3"})
	require.NoError(t, err)

	assert.Equal(t, before, listDir(t, dir))
	assert.Equal(t, naming.Summary{Renamed: 1, Skipped: 1}, naming.Summarize(outcomes))
	assert.Equal(t, warnings{"Object name 'Shot_002' already exists!"}, w)
	assert.Equal(t, "Shot_001.png", d.FileName("a.png"))
}

func TestDir_DryRunMatchesRealRun(t *testing.T) {
	replace := func(search, with string) func(*naming.Renamer) ([]naming.Outcome, error) {
		return func(r *naming.Renamer) ([]naming.Outcome, error) {
			return r.SearchReplace(context.Background(), naming.ReplaceRequest{Search: search, Replace: with})
		}
	}
	tests := []struct {
		name     string
		files    []string
		selected []string
		run      func(*naming.Renamer) ([]naming.Outcome, error)
	}{
		{
			name:     "stem shared by other extensions",
			files:    []string{"foo.jpg", "foo.png", "bar.txt"},
			selected: []string{"bar.txt"},
			run:      replace("bar", "foo"),
		},
		{
			name:     "exact target taken",
			files:    []string{"a.txt", "b.txt", "ab.txt"},
			selected: []string{"a.txt", "ab.txt"},
			run:      replace("a", "b"),
		},
		{
			name:     "numbering around an existing name",
			files:    []string{"x.png", "y.png", "Obj_02.jpg"},
			selected: []string{"x.png", "y.png"},
			run: func(r *naming.Renamer) ([]naming.Outcome, error) {
				return r.RenameSequential(context.Background(), naming.NumberingInput{BaseName: "Obj", Start: "1", Padding: "2"})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			realDir, dryDir := t.TempDir(), t.TempDir()
			touch(t, realDir, tt.files...)
			touch(t, dryDir, tt.files...)
			before := listDir(t, dryDir)

			want, err := tt.run(naming.NewRenamer(NewDir(realDir, tt.selected, true, nil), naming.Options{}))
			require.NoError(t, err)
			d, err := NewDirDryRun(dryDir, tt.selected, true, nil)
			require.NoError(t, err)
			got, err := tt.run(naming.NewRenamer(d, naming.Options{}))
			require.NoError(t, err)

			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].Status, got[i].Status, "item %d", i)
				assert.Equal(t, want[i].NewName, got[i].NewName, "item %d", i)
			}
			assert.Equal(t, before, listDir(t, dryDir))
		})
	}
}
