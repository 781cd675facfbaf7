package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FileStorage struct {
	path string
}

func NewFileStorage(path string) Storage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Reader(_ context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(f.filename(key))
	if err != nil {
		return nil, fmt.Errorf("unable to open artifact: %w", err)
	}
	return file, nil
}

func (f *FileStorage) Writer(_ context.Context, key string) (io.WriteCloser, error) {
	filename := f.filename(key)
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}
	return os.Create(filename)
}

func (f *FileStorage) filename(key string) string {
	return filepath.Join(f.path, filepath.FromSlash(key))
}
