// Package fs wraps the filesystem operations used by the jmcp daemon, so
// that controllers can be tested against a mock filesystem.
package fs

import (
	"io/fs"
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// JmcpFS will wrap the filesystem operations used by jmcp.
type JmcpFS interface {
	MkdirAll(path string) error
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new JmcpFS.
func New() JmcpFS {
	return fsImpl{}
}

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, 0755) }

// FileExists returns true if the path exists and is a regular file.
func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads the named file.
func (fsImpl) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile writes data to the named file, creating it if necessary.
func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

// ReadDir reads the named directory.
func (fsImpl) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// Stat returns file info for the named file.
func (fsImpl) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Remove removes the named file.
func (fsImpl) Remove(name string) error { return os.Remove(name) }
