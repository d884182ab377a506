// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"fmt"
	"strings"
)

// DefaultBackupPrefix is prepended to a target name to form its backup name.
const DefaultBackupPrefix = "orig-"

// TargetFile is one known data file, identified by name and content checksum.
type TargetFile struct {
	// Name is the plain file name inside the game directory.
	Name string `json:"name" yaml:"name"`
	// Sum is the hex-encoded MD5 digest of the unmodified file.
	Sum string `json:"sum" yaml:"sum"`
}

// Patch is a single byte-range substitution against one target file.
type Patch struct {
	// Target is the TargetFile.Name this patch applies to.
	Target string `json:"target" yaml:"target"`
	// Offset is the byte offset of the substitution.
	Offset int64 `json:"offset" yaml:"offset"`
	// Expected is the defective content found at Offset in the original.
	Expected []byte `json:"expected" yaml:"expected"`
	// Replacement is the corrected content written at Offset.
	Replacement []byte `json:"replacement" yaml:"replacement"`
	// Note describes the defect in one line.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Delta returns the number of bytes the patch adds (or removes, when negative).
func (p *Patch) Delta() int64 {
	return int64(len(p.Replacement)) - int64(len(p.Expected))
}

// end returns the first offset past the widest range the patch may touch.
func (p *Patch) end() int64 {
	n := len(p.Expected)
	if len(p.Replacement) > n {
		n = len(p.Replacement)
	}

	return p.Offset + int64(n)
}

// Table is the full set of known targets and the ordered patch list.
type Table struct {
	Targets []TargetFile `json:"targets" yaml:"targets"`
	Patches []Patch      `json:"patches" yaml:"patches"`
}

// patchesFor returns indices of patches for target, in table order.
func (t *Table) patchesFor(target string) []int {
	var out []int
	for i := range t.Patches {
		if t.Patches[i].Target == target {
			out = append(out, i)
		}
	}

	return out
}

// Outcome is the result of one patch application.
type Outcome uint8

// Patch outcomes.
const (
	// AlreadyApplied means the replacement bytes are present; nothing changed.
	AlreadyApplied Outcome = iota + 1
	// Applied means the expected bytes were found and substituted.
	Applied
	// Mismatch means neither expected nor replacement bytes are present.
	Mismatch
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case AlreadyApplied:
		return "already_applied"
	case Applied:
		return "applied"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MarshalYAML encodes the outcome by name.
func (o Outcome) MarshalYAML() (any, error) {
	return o.String(), nil
}

// FileStatus is the final state of one target after a run.
type FileStatus string

// Per-file statuses.
const (
	// FilePatched means at least one patch applied and the file was rewritten.
	FilePatched FileStatus = "patched"
	// FileUnchanged means the file was verified but no patch changed it.
	FileUnchanged FileStatus = "unchanged"
	// FileChecksumMismatch means the file is not a known original and was skipped.
	FileChecksumMismatch FileStatus = "checksum_mismatch"
	// FileAbsent means the file does not exist.
	FileAbsent FileStatus = "absent"
	// FileFailed means an I/O error stopped processing of the file.
	FileFailed FileStatus = "failed"
	// FileFiltered means the target was excluded by Options.Only/Options.Skip.
	FileFiltered FileStatus = "filtered"
	// FileRestored means the original was put back from its backup.
	FileRestored FileStatus = "restored"
)

// PatchResult is the outcome of one table patch in a file pass.
type PatchResult struct {
	// Index is the patch position in Table.Patches.
	Index int `json:"index" yaml:"index"`
	// Offset is the patch offset.
	Offset int64 `json:"offset" yaml:"offset"`
	// Outcome is what happened at Offset.
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

// FileReport describes what happened to one target.
type FileReport struct {
	// Err is the error that ended processing, if any.
	Err error `json:"-" yaml:"-"`
	// Target is the target descriptor.
	Target TargetFile `json:"target" yaml:"target"`
	// Status is the final file status.
	Status FileStatus `json:"status" yaml:"status"`
	// Error is Err rendered as text for reports.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// BackupPath is the backup file written or verified for this target.
	BackupPath string `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`
	// Patches lists every patch evaluated for this target.
	Patches []PatchResult `json:"patches,omitempty" yaml:"patches,omitempty"`
	// Derived reports whether the file was accepted through its verified backup
	// with every patch already present.
	Derived bool `json:"derived,omitempty" yaml:"derived,omitempty"`
	// Written reports whether the original path was rewritten.
	Written bool `json:"written,omitempty" yaml:"written,omitempty"`
}

// Applied returns the number of patches that changed the file.
func (r *FileReport) Applied() int {
	n := 0
	for _, p := range r.Patches {
		if p.Outcome == Applied {
			n++
		}
	}

	return n
}

// fail records err on the report.
func (r *FileReport) fail(err error) {
	r.Status = FileFailed
	r.Err = err
	r.Error = err.Error()
}

// Report collects per-file results of a run.
type Report struct {
	Files []FileReport `json:"files" yaml:"files"`
}

// Changed reports whether any file was rewritten.
func (r *Report) Changed() bool {
	for i := range r.Files {
		if r.Files[i].Written {
			return true
		}
	}

	return false
}

// Failed returns reports of files that ended with an I/O error.
func (r *Report) Failed() []FileReport {
	var out []FileReport
	for i := range r.Files {
		if r.Files[i].Status == FileFailed {
			out = append(out, r.Files[i])
		}
	}

	return out
}

// EventKind identifies a reported engine event.
type EventKind uint8

// Engine events in the order they may occur for one target.
const (
	// EventNotFound is emitted when a target file is missing.
	EventNotFound EventKind = iota + 1
	// EventChecksumMismatch is emitted when a file is not a known original.
	EventChecksumMismatch
	// EventDerived is emitted when a fully patched file is accepted by its verified backup.
	EventDerived
	// EventBackup is emitted after the original has been backed up.
	EventBackup
	// EventPatch is emitted once per evaluated patch.
	EventPatch
	// EventWritten is emitted after the patched file has been written.
	EventWritten
	// EventFailed is emitted when an I/O error stops a file.
	EventFailed
	// EventFiltered is emitted for targets excluded by filter rules.
	EventFiltered
	// EventRestored is emitted after a backup was copied over its original.
	EventRestored
)

// Event is one engine notification.
type Event struct {
	// Err is set for EventFailed and for EventPatch with a Mismatch outcome.
	Err error
	// Target is the affected target.
	Target TargetFile
	// BackupPath is set for backup, derived and restore events.
	BackupPath string
	// Patch is set for EventPatch.
	Patch PatchResult
	// Kind is the event type.
	Kind EventKind
	// DryRun reports whether the engine runs without writing.
	DryRun bool
}

// Options configures engine behavior.
type Options struct {
	// OnEvent is called synchronously for every event in a run.
	OnEvent func(Event) `json:"-" yaml:"-"`
	// Dir is the directory holding the target files. Default is ".".
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// BackupPrefix is prepended to target names for backups. Default is "orig-".
	BackupPrefix string `json:"backup_prefix,omitempty" yaml:"backup_prefix,omitempty"`
	// Only restricts processing to targets matching at least one pattern.
	Only []string `json:"only,omitempty" yaml:"only,omitempty"`
	// Skip excludes targets matching any pattern.
	Skip []string `json:"skip,omitempty" yaml:"skip,omitempty"`
	// Strict disables accepting modified files through a verified backup.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
	// DryRun evaluates patches without backing up or writing.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if strings.TrimSpace(opts.Dir) == "" {
		opts.Dir = "."
	}

	if opts.BackupPrefix == "" {
		opts.BackupPrefix = DefaultBackupPrefix
	}
}
