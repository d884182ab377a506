// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// testFile is one synthetic target for engine tests.
type testFile struct {
	name string
	data []byte
}

// fillerData returns n deterministic bytes without runs of the patch values used in tests.
func fillerData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(0x40 + i%0x20)
	}

	return data
}

// withBytes returns a copy of data with b written at off.
func withBytes(data []byte, off int, b ...byte) []byte {
	out := bytes.Clone(data)
	copy(out[off:], b)
	return out
}

// newTestTable builds a table whose target sums match files.
func newTestTable(files []testFile, patches []Patch) Table {
	targets := make([]TargetFile, 0, len(files))
	for _, f := range files {
		targets = append(targets, TargetFile{Name: f.name, Sum: Checksum(f.data)})
	}

	return Table{Targets: targets, Patches: patches}
}

// writeTestFiles writes files into dir.
func writeTestFiles(t *testing.T, dir string, files []testFile) {
	t.Helper()

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0o600); err != nil {
			t.Fatalf("WriteFile %s: %v", f.name, err)
		}
	}
}

// readTestFile reads name from dir.
func readTestFile(t *testing.T, dir string, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile %s: %v", name, err)
	}

	return data
}

// fileExists reports whether name exists in dir.
func fileExists(t *testing.T, dir string, name string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(dir, name))
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}

	t.Fatalf("Stat %s: %v", name, err)
	return false
}

// newTestEngine creates an engine over dir and records emitted events.
func newTestEngine(t *testing.T, table Table, opts Options) (*Engine, *[]Event) {
	t.Helper()

	events := make([]Event, 0, 16)
	opts.OnEvent = func(ev Event) { events = append(events, ev) }

	e, err := New(table, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return e, &events
}

// eventKinds projects events onto their kinds.
func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}

	return out
}
