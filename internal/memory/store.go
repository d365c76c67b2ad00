// Package memory lists and reads the flat "memory" files frigbot keeps in a
// single directory.
package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"frigdash/internal/models"
)

var (
	ErrInvalidName = errors.New("invalid memory file name")
	ErrNotFound    = errors.New("memory file not found")
)

// maxNameLen matches common filesystem NAME_MAX.
const maxNameLen = 255

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// List returns regular, non-hidden files sorted by name. A missing
// directory is an empty list.
func (s *Store) List() ([]models.MemoryFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.MemoryFile{}, nil
		}
		return nil, fmt.Errorf("read memory dir %q: %w", s.dir, err)
	}

	out := make([]models.MemoryFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, models.MemoryFile{
			Name:       e.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Read returns the content of one file. Names must be plain base names.
func (s *Store) Read(name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	p := filepath.Join(s.dir, name)

	info, err := os.Lstat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat memory file %q: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read memory file %q: %w", name, err)
	}
	return data, nil
}

// ValidateName rejects empty names, hidden files, separators, ".." and
// control characters.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return ErrInvalidName
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 0x20 || c == 0x7F {
			return ErrInvalidName
		}
	}
	if filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
