// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizeTargetName trims spaces and validates that raw is a plain file name.
func NormalizeTargetName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidTargetName, raw)
	}

	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTargetName, raw)
	}

	return name, nil
}

// BackupName returns the backup file name for target name.
func BackupName(prefix string, name string) string {
	if prefix == "" {
		prefix = DefaultBackupPrefix
	}

	return prefix + name
}

// targetPath joins dir and a target name.
func targetPath(dir string, name string) string {
	return filepath.Join(dir, name)
}

// targetKey returns case-insensitive key for target name comparisons.
func targetKey(name string) string {
	return strings.ToLower(name)
}
