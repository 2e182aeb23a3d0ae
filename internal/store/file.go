package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// validKey restricts keys to names that are safe as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// File is a KV backend storing each key as <dir>/<key>.json.
type File struct {
	root string
}

var _ KV = (*File)(nil)

// NewFile creates the directory if needed and returns a backend rooted at it.
func NewFile(dir string) (*File, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &File{root: abs}, nil
}

func (f *File) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("store: invalid key %q", key)
	}
	return filepath.Join(f.root, key+".json"), nil
}

// Get implements KV.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, nil
}

// Put implements KV. The value is written to a temp file in the same
// directory and renamed over the old one, so readers never see a torn file.
func (f *File) Put(_ context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// Close implements KV.
func (f *File) Close() error { return nil }
