package cursor

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store persists the next-block-to-scan marker as a decimal integer in a
// single text file. One process owns the file at a time; concurrent writers
// are not supported.
type Store struct {
	path    string
	genesis uint64
}

func NewStore(path string, genesis uint64) *Store {
	return &Store{
		path:    path,
		genesis: genesis,
	}
}

// Load reads the persisted cursor. A missing file means this is the first
// run: the file is created with the genesis value and genesis is returned.
func (s *Store) Load() (uint64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return 0, fmt.Errorf("read cursor file: %w", err)
		}
		err = s.Save(s.genesis)
		if err != nil {
			return 0, fmt.Errorf("initialize cursor file with genesis value: %w", err)
		}
		return s.genesis, nil
	}

	value, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cursor file %q: %w", s.path, err)
	}

	return value, nil
}

// Save overwrites the persisted cursor.
func (s *Store) Save(value uint64) error {
	err := os.WriteFile(s.path, []byte(strconv.FormatUint(value, 10)), 0o644)
	if err != nil {
		return fmt.Errorf("write cursor file: %w", err)
	}
	return nil
}
