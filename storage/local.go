package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalArchive writes documents under Dir.
type LocalArchive struct {
	Dir string
}

func NewLocalArchive(dir string) *LocalArchive {
	if dir == "" {
		dir = "./pdfs"
	}
	return &LocalArchive{Dir: dir}
}

func (a *LocalArchive) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(a.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	path := filepath.Join(a.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Remove deletes a previously stored file. A missing file is not an error.
func (a *LocalArchive) Remove(_ context.Context, location string) error {
	err := os.Remove(filepath.Join(a.Dir, filepath.Base(location)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
