package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the selection for the directory host: names of regular,
// non-hidden files directly inside dir. Each pattern is a filepath.Match
// glob; its matches are sorted lexicographically and appended in pattern
// order, and a file matched twice keeps its first position. With no
// patterns every file is selected, sorted.
func Discover(dir string, patterns []string) ([]string, error) {
	for _, p := range patterns {
		if strings.ContainsRune(p, '/') || strings.ContainsRune(p, filepath.Separator) {
			return nil, fmt.Errorf("pattern %q must not contain a path separator", p)
		}
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	if len(patterns) == 0 {
		return files, nil
	}

	seen := make(map[string]bool, len(files))
	var selected []string
	for _, p := range patterns {
		for _, f := range files {
			if seen[f] {
				continue
			}
			if ok, _ := filepath.Match(p, f); ok {
				seen[f] = true
				selected = append(selected, f)
			}
		}
	}
	return selected, nil
}
