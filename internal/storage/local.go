package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

// LocalStore persists uploaded files on the local filesystem under a single
// flat directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the contents of r to filename, overwriting any existing file.
func (s *LocalStore) Save(filename string, r io.Reader) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes filename. A missing file is not an error.
func (s *LocalStore) Delete(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists reports whether filename is present in the store.
func (s *LocalStore) Exists(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(path)
	return statErr == nil
}

// Path resolves filename within the store root. Names carrying path
// separators or traversal segments are rejected.
func (s *LocalStore) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", apperrors.NewValidation("invalid filename", nil)
	}
	return filepath.Join(s.dir, filename), nil
}
