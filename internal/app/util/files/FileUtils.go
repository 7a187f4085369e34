package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// GetDataDir returns the directory holding the run history database,
// creating it when absent.
func GetDataDir() string {
	root, err := GetProjectRoot()
	if err != nil {
		// Fall back to the working directory when running outside the
		// source tree (installed binary).
		root = "."
	}
	dir := filepath.Join(root, "data")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "."
	}
	return dir
}

// EnsureDirectory creates dir (and parents) when it does not exist yet.
func EnsureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(dir, os.ModePerm)
}

// FileExtension returns the lowercase extension of path without the
// leading dot, "" when there is none.
func FileExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return strings.TrimPrefix(ext, ".")
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
