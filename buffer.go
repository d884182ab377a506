// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import "bytes"

// FileBuffer is the in-memory image of one target file during its patch pass.
type FileBuffer struct {
	name    string
	data    []byte
	changed bool
	derived bool
}

// NewFileBuffer wraps data as the buffer of target name.
// The buffer takes ownership of data.
func NewFileBuffer(name string, data []byte) *FileBuffer {
	return &FileBuffer{name: name, data: data}
}

// Name returns the target name.
func (b *FileBuffer) Name() string {
	return b.name
}

// Bytes returns the current buffer contents.
func (b *FileBuffer) Bytes() []byte {
	return b.data
}

// Len returns current buffer length.
func (b *FileBuffer) Len() int {
	return len(b.data)
}

// Changed reports whether any Apply call returned Applied.
func (b *FileBuffer) Changed() bool {
	return b.changed
}

// Derived reports whether the contents were accepted through a verified
// backup rather than their own checksum. Engine.Commit refuses such buffers.
func (b *FileBuffer) Derived() bool {
	return b.derived
}

// Apply applies one patch to the buffer.
//
// Replacement already present at the offset yields AlreadyApplied. Otherwise
// Expected must be present, or the buffer stays untouched and Mismatch is
// returned. On Applied, bytes after the expected range shift by
// patch.Delta().
func (b *FileBuffer) Apply(patch Patch) Outcome {
	if patch.Offset < 0 || patch.Offset > int64(len(b.data)) {
		return Mismatch
	}

	off := int(patch.Offset)
	if bytes.Equal(window(b.data, off, len(patch.Replacement)), patch.Replacement) {
		return AlreadyApplied
	}

	// A truncated window never equals a longer sequence.
	if !bytes.Equal(window(b.data, off, len(patch.Expected)), patch.Expected) {
		return Mismatch
	}

	b.data = splice(b.data, off, len(patch.Expected), patch.Replacement)
	b.changed = true

	return Applied
}

// window returns data[off:off+n] truncated at the end of data.
func window(data []byte, off int, n int) []byte {
	end := off + n
	if end > len(data) {
		end = len(data)
	}

	return data[off:end]
}

// splice replaces data[off:off+n] with repl.
func splice(data []byte, off int, n int, repl []byte) []byte {
	if len(repl) == n {
		copy(data[off:], repl)
		return data
	}

	out := make([]byte, 0, len(data)-n+len(repl))
	out = append(out, data[:off]...)
	out = append(out, repl...)
	out = append(out, data[off+n:]...)

	return out
}
