package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploads on the local disk. Used for development and
// tests; production runs against S3Storage.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) pathForKey(key string) string {
	return filepath.Join(ls.basePath, key)
}

func (ls *LocalStorage) Save(ctx context.Context, key string, data io.Reader) error {
	file, err := os.Create(ls.pathForKey(key))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (ls *LocalStorage) Get(key string) (io.ReadCloser, error) {
	file, err := os.Open(ls.pathForKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object with key %s not found: %w", key, err)
		}
		return nil, err
	}

	return file, nil
}

func (ls *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(ls.pathForKey(key))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
