// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultFileMode is used when the source file mode cannot be determined.
const defaultFileMode fs.FileMode = 0o644

// writeFileAtomic replaces path with data through a synced temp file in the same directory.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}

	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}

	return nil
}

// fileMode returns permission bits of path, or defaultFileMode when unknown.
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return defaultFileMode
	}

	return info.Mode().Perm()
}

// writeBackup stores the verified original contents at backupPath.
// An existing backup is replaced.
func writeBackup(backupPath string, original []byte, mode fs.FileMode) error {
	if err := writeFileAtomic(backupPath, original, mode); err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	return nil
}

// readIfExists reads path and reports whether it exists.
func readIfExists(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	return data, true, nil
}
