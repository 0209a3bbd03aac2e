package repair

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem against the local disk.
type OSFileSystem struct{}

// NewOSFileSystem constructs an OSFileSystem.
func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

// ReadFile loads the full content of the file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile overwrites the file at path with the provided data.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// Stat returns file metadata for permission preservation on rewrite.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
