// Package filesystem discovers light curve files in a directory.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Patterns are the recognised file name patterns, in glob order.
var Patterns = []string{"*.txt", "*.dat", "*.csv", "*.lbol"}

// FileSet is an ordered list of file paths.
type FileSet []string

// Names returns the base name of every path.
func (fs FileSet) Names() []string {
	out := make([]string, len(fs))
	for i, p := range fs {
		out[i] = filepath.Base(p)
	}
	return out
}

// Discover globs every pattern inside dir, concatenates the matches in
// pattern order and sorts them by full path. A path matching two patterns
// would be listed twice; the recognised extensions are disjoint.
//
// The directory must exist; otherwise the error wraps ErrDirectory.
func Discover(dir string) (FileSet, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectory, dir)
	}

	var files FileSet
	for _, pattern := range Patterns {
		matches, err := filepath.Glob(filepath.Join(escapeMeta(dir), pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: glob %s: %w", ErrDirectory, pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether name, joined onto dir, exists.
func Exists(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return path, err == nil
}

// escapeMeta quotes glob metacharacters so a directory such as
// "runs[2021]" is matched literally.
func escapeMeta(dir string) string {
	out := make([]rune, 0, len(dir))
	for _, r := range dir {
		switch r {
		case '*', '?', '[':
			out = append(out, '[', r, ']')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
