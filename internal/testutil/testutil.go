// Package testutil provides filesystem fixtures for scanner, quick-clean
// and cleaner tests. All operations use t.TempDir() for isolated, auto-
// cleaned state.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture holds a throwaway directory tree for one test
type Fixture struct {
	T       *testing.T
	RootDir string
}

// NewFixture creates a fixture rooted in a fresh temp directory
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, RootDir: t.TempDir()}
}

// Path joins relative elements onto the fixture root
func (f *Fixture) Path(elem ...string) string {
	return filepath.Join(append([]string{f.RootDir}, elem...)...)
}

// CreateFile creates a file of the given size, making parent directories
// as needed, and returns its absolute path.
func (f *Fixture) CreateFile(relPath string, size int) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, make([]byte, size), 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateDir creates a directory and returns its absolute path
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateSymlink creates a symlink at relPath pointing at target. Tests that
// cannot create symlinks on the host are skipped.
func (f *Fixture) CreateSymlink(relPath, target string) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.Symlink(target, fullPath); err != nil {
		f.T.Skipf("symlinks unavailable: %v", err)
	}
	return fullPath
}

// MustNotExist fails the test if the path is still present
func (f *Fixture) MustNotExist(path string) {
	f.T.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		f.T.Errorf("%s still exists", path)
	}
}

// MustExist fails the test if the path is missing
func (f *Fixture) MustExist(path string) {
	f.T.Helper()
	if _, err := os.Lstat(path); err != nil {
		f.T.Errorf("%s missing: %v", path, err)
	}
}
