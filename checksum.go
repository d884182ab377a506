// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"crypto/md5" //nolint:gosec // Content fingerprint only, not a security boundary.
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// sumSize is the hex length of an MD5 digest.
const sumSize = md5.Size * 2

// Checksum returns the lowercase hex MD5 digest of data.
func Checksum(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec // Content fingerprint only.
	return hex.EncodeToString(sum[:])
}

// SumMatches reports whether data hashes to want (hex, case-insensitive).
func SumMatches(data []byte, want string) bool {
	return sumEqual(Checksum(data), want)
}

// sumEqual compares two hex digests case-insensitively.
func sumEqual(got string, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

// validSum reports whether s is a well-formed hex MD5 digest.
func validSum(s string) bool {
	if len(s) != sumSize {
		return false
	}

	_, err := hex.DecodeString(s)
	return err == nil
}

// checksumFile hashes the file at path without loading it into memory.
func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New() //nolint:gosec // Content fingerprint only.
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
