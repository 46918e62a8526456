// Package input loads puzzle inputs from flat text files. Each day reads
// one file named day-N-input inside a configurable directory.
package input

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads puzzle input files from a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for a day's input.
func (s *Store) Path(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day-%d-input", day))
}

// Read returns the raw contents of a day's input file. A missing file is
// fatal to the run.
func (s *Store) Read(day int) (string, error) {
	data, err := os.ReadFile(s.Path(day))
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle input: %w", err)
	}
	return string(data), nil
}
