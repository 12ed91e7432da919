package usagestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
)

// DefaultPath is where the snapshot lives relative to the working directory.
var DefaultPath = filepath.Join("..", "home", "history.json")

// FileStore keeps the usage snapshot in a single file. Writes overwrite the
// file in place; the parent directory is never created.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore returns a store for path on fsys. A nil fsys uses the OS
// filesystem and an empty path uses DefaultPath.
func NewFileStore(fsys afero.Fs, path string) *FileStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{fs: fsys, path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot file.
func (s *FileStore) Load() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, usage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// Save overwrites the snapshot file with data.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", dir, usage.ErrSnapshotDirMissing)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
