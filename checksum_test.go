// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"os"
	"path/filepath"
	"testing"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: nil, want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "abc", in: []byte("abc"), want: "900150983cd24fb0d6963f7d28e17f72"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Checksum(tc.in); got != tc.want {
				t.Fatalf("Checksum=%s, want %s", got, tc.want)
			}
		})
	}
}

func TestSumMatchesIgnoresCase(t *testing.T) {
	t.Parallel()

	if !SumMatches([]byte("abc"), "900150983CD24FB0D6963F7D28E17F72") {
		t.Fatal("upper-case digest must match")
	}
	if SumMatches([]byte("abd"), "900150983cd24fb0d6963f7d28e17f72") {
		t.Fatal("different content must not match")
	}
}

func TestChecksumFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "A.TLK")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := checksumFile(path)
	if err != nil {
		t.Fatalf("checksumFile: %v", err)
	}
	if got != Checksum([]byte("abc")) {
		t.Fatalf("checksumFile=%s, want %s", got, Checksum([]byte("abc")))
	}
}

func TestValidSum(t *testing.T) {
	t.Parallel()

	for _, sum := range []string{"d41d8cd98f00b204e9800998ecf8427e", "D41D8CD98F00B204E9800998ECF8427E"} {
		if !validSum(sum) {
			t.Fatalf("validSum(%q)=false, want true", sum)
		}
	}

	for _, sum := range []string{"", "d41d8cd9", "g41d8cd98f00b204e9800998ecf8427e"} {
		if validSum(sum) {
			t.Fatalf("validSum(%q)=true, want false", sum)
		}
	}
}
