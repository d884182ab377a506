// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import "errors"

// Sentinel errors for patch operations. Use errors.Is in callers.
var (
	// ErrFileAbsent means a required target file is missing from the working directory.
	ErrFileAbsent = errors.New("target file not found")
	// ErrChecksumMismatch means the file exists but is not the known original.
	ErrChecksumMismatch = errors.New("checksum does not match known original")
	// ErrPatchContentMismatch means the bytes at a patch offset are neither the old nor the new value.
	ErrPatchContentMismatch = errors.New("unexpected contents at patch offset")
	// ErrInvalidTable means the target or patch table is malformed.
	ErrInvalidTable = errors.New("invalid patch table")
	// ErrInvalidTargetName means a target name is empty or not a plain file name.
	ErrInvalidTargetName = errors.New("invalid target name")
	// ErrBackupMismatch means a backup exists but does not match the known original.
	ErrBackupMismatch = errors.New("backup does not match known original")
	// ErrInvalidFilterPattern means one or more include/exclude patterns are invalid.
	ErrInvalidFilterPattern = errors.New("invalid target filter")
)
