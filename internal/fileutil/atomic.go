// Package fileutil writes configuration and key files so a crash never
// leaves a truncated file behind.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyPath indicates an empty file path was provided.
var ErrEmptyPath = errors.New("path is empty")

// WriteFile creates the parent directory with dirPerm, then replaces path
// with data. The data is written to a sibling temp file with perm, synced
// and renamed over path.
func WriteFile(path string, data []byte, perm, dirPerm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil { //nolint:gosec // G703: callers pass paths under the bdk home
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	if d, err := os.Open(dir); err == nil { //nolint:gosec // G304: dir is derived from path
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
