package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps sections in a YAML file:
//
//	Settings:
//	  max_length: "32767"
//	  min_length: "1"
//	email:
//	  type: re
//	  value: '[an(10;nr),''@test.com'']'
type FileStore struct {
	mu   sync.RWMutex
	path string
	data map[string]map[string]string
}

// NewFileStore opens path, creating it with default settings when missing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.data = defaultData()
		if err := s.flush(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoad, err)
	}

	data := make(map[string]map[string]string)
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToLoad, path, err)
	}
	s.data = data
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, section, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[section][key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, section, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, hadSection := s.data[section]
	prev, hadKey := sec[key]
	setIn(s.data, section, key, value)
	if err := s.flush(); err != nil {
		switch {
		case !hadSection:
			delete(s.data, section)
		case hadKey:
			s.data[section][key] = prev
		default:
			delete(s.data[section], key)
		}
		return err
	}
	return nil
}

func (s *FileStore) HasSection(_ context.Context, section string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[section]
	return ok, nil
}

func (s *FileStore) RemoveSection(_ context.Context, section string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.data[section]
	if !ok {
		return nil
	}
	delete(s.data, section)
	if err := s.flush(); err != nil {
		s.data[section] = prev
		return err
	}
	return nil
}

func (s *FileStore) ListSections(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data)), nil
}

// flush writes the document to a temp file in the same directory and renames
// it over the target. Must be called with the write lock held.
func (s *FileStore) flush() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
