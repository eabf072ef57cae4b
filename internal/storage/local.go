package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploads on the local filesystem and serves them
// from the /uploads/ route.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the upload directory if it does not exist.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	slog.Info("local upload storage ready", "dir", dir)
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Save(name string, file io.Reader) error {
	// Names come from SafeFilename, but keep the base-name guard anyway
	dst := filepath.Join(s.dir, filepath.Base(name))

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(out, file)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("failed to write file: %w", err)
	}

	err = out.Close()
	if err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(name string) string {
	return "/uploads/" + filepath.Base(name)
}
