// Package filex holds small filesystem helpers used by the CLI adapters.
package filex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/docconvert/internal/common"
)

// EnsureDir resolves dir against the working directory when it is relative,
// creates it if needed and returns the absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// OpenSource opens a regular file for encoding. A positive maxSize rejects
// larger files with an error wrapping common.ErrFileTooLarge before any byte
// is read. The caller must close the returned file.
func OpenSource(path string, maxSize int64) (*os.File, fs.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", common.ErrRead, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: stat %s: %w", common.ErrRead, path, err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %s is not a regular file", common.ErrRead, path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %d bytes (max %d)", common.ErrFileTooLarge, info.Size(), maxSize)
	}

	return f, info, nil
}

// WriteTemp writes content to a new temporary file whose name ends in
// suffix and returns its path. The caller removes the file.
func WriteTemp(suffix string, content []byte) (string, error) {
	f, err := os.CreateTemp("", "docconvert-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), nil
}
