package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotesDirMissing is fatal at startup: there is nothing to search.
	ErrNotesDirMissing = errors.New("notes directory does not exist")
	ErrInvalidName     = errors.New("invalid note name")
)

const DefaultExtension = ".txt"

type Store struct {
	dir string
	ext string
}

func NewStore(dir, ext string) *Store {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Store{dir: dir, ext: ext}
}

func (s *Store) Dir() string {
	return s.dir
}

// Check verifies the notes directory exists.
func (s *Store) Check() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotesDirMissing, s.dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNotesDirMissing, s.dir)
	}
	return nil
}

// LoadResult summarises one pass of LoadInto.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// LoadInto reads every note directly inside the store directory into idx,
// one file at a time, so readers of idx see the collection grow. Files that
// cannot be read are passed to skip (if non-nil) and otherwise ignored.
func (s *Store) LoadInto(idx *Index, skip func(path string, err error)) (LoadResult, error) {
	var res LoadResult

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, fmt.Errorf("%w: %s", ErrNotesDirMissing, s.dir)
		}
		return res, err
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.ext) {
			continue
		}

		path := filepath.Join(s.dir, e.Name())
		note, err := s.loadFile(path)
		if err != nil {
			res.Skipped++
			if skip != nil {
				skip(path, err)
			}
			continue
		}
		if idx.Add(note) {
			res.Loaded++
		}
	}

	return res, nil
}

func (s *Store) loadFile(path string) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), s.ext)
	return NewNote(name, path, string(data)), nil
}

// Path returns where the note called name lives, whether or not it exists.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+s.ext)
}

// Create makes an empty note called name and returns its path. An existing
// note is left untouched; created reports whether a file was written.
func (s *Store) Create(name string) (path string, created bool, err error) {
	if err := validName(name); err != nil {
		return "", false, err
	}

	path = s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, false, nil
		}
		return "", false, err
	}
	if err := f.Close(); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func validName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is blank", ErrInvalidName)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
