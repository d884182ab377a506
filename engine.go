// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Engine applies a patch table to target files in one directory.
type Engine struct {
	filter *targetFilter
	opts   Options
	table  Table
}

// New validates table and returns an engine configured by opts.
func New(table Table, opts Options) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	opts.applyDefaults()

	filter, err := newTargetFilter(opts.Only, opts.Skip)
	if err != nil {
		return nil, err
	}

	return &Engine{
		table:  table,
		opts:   opts,
		filter: filter,
	}, nil
}

// Table returns the engine patch table.
func (e *Engine) Table() Table {
	return e.table
}

// Run processes every target in table order.
//
// A missing target halts the run: the returned report covers targets handled
// so far and the error wraps ErrFileAbsent. Checksum mismatches, patch
// mismatches and per-file I/O failures are recorded in the report and do not
// stop other targets.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	report := &Report{Files: make([]FileReport, 0, len(e.table.Targets))}
	for _, target := range e.table.Targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !e.filter.Match(target.Name) {
			report.Files = append(report.Files, FileReport{Target: target, Status: FileFiltered})
			e.emit(Event{Kind: EventFiltered, Target: target})
			continue
		}

		fr, err := e.processTarget(target)
		report.Files = append(report.Files, fr)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// processTarget runs verify, backup, patch and commit for one target.
// Only ErrFileAbsent is returned; other failures are recorded on the report.
func (e *Engine) processTarget(target TargetFile) (FileReport, error) {
	fr := FileReport{Target: target}

	buf, derived, err := e.VerifyAndLoad(target)
	switch {
	case errors.Is(err, ErrFileAbsent):
		fr.Status = FileAbsent
		fr.Err = err
		fr.Error = err.Error()
		e.emit(Event{Kind: EventNotFound, Target: target})
		return fr, err
	case errors.Is(err, ErrChecksumMismatch):
		fr.Status = FileChecksumMismatch
		e.emit(Event{Kind: EventChecksumMismatch, Target: target})
		return fr, nil
	case err != nil:
		fr.fail(err)
		e.emit(Event{Kind: EventFailed, Target: target, Err: err})
		return fr, nil
	}

	fr.BackupPath = e.backupPath(target)
	if derived {
		return e.processDerived(target, buf, fr), nil
	}

	if !e.opts.DryRun {
		if err := e.Backup(target, buf); err != nil {
			fr.fail(err)
			e.emit(Event{Kind: EventFailed, Target: target, Err: err})
			return fr, nil
		}
		e.emit(Event{Kind: EventBackup, Target: target, BackupPath: fr.BackupPath})
	}

	for _, i := range e.table.patchesFor(target.Name) {
		res := e.applyPatch(buf, i)
		fr.Patches = append(fr.Patches, res)
		e.emit(e.patchEvent(target, res))
	}

	fr.Status = FileUnchanged
	if !buf.Changed() {
		return fr, nil
	}

	if e.opts.DryRun {
		fr.Status = FilePatched
		return fr, nil
	}

	if err := e.Commit(target, buf); err != nil {
		fr.fail(err)
		e.emit(Event{Kind: EventFailed, Target: target, Err: err})
		return fr, nil
	}

	fr.Status = FilePatched
	fr.Written = true
	e.emit(Event{Kind: EventWritten, Target: target})

	return fr, nil
}

// processDerived accepts a file that matches only through its backup.
// Such a file is never written: it is reported unchanged when every patch is
// already present, and as a checksum mismatch otherwise.
func (e *Engine) processDerived(target TargetFile, buf *FileBuffer, fr FileReport) FileReport {
	var results []PatchResult
	for _, i := range e.table.patchesFor(target.Name) {
		res := e.applyPatch(buf, i)
		if res.Outcome != AlreadyApplied {
			fr.Status = FileChecksumMismatch
			fr.BackupPath = ""
			e.emit(Event{Kind: EventChecksumMismatch, Target: target})
			return fr
		}
		results = append(results, res)
	}

	fr.Derived = true
	fr.Status = FileUnchanged
	fr.Patches = results
	e.emit(Event{Kind: EventDerived, Target: target, BackupPath: fr.BackupPath})
	for _, res := range results {
		e.emit(e.patchEvent(target, res))
	}

	return fr
}

// applyPatch applies table patch i to buf.
func (e *Engine) applyPatch(buf *FileBuffer, i int) PatchResult {
	patch := e.table.Patches[i]
	return PatchResult{
		Index:   i,
		Offset:  patch.Offset,
		Outcome: buf.Apply(patch),
	}
}

// patchEvent builds the EventPatch of res; mismatches carry ErrPatchContentMismatch.
func (e *Engine) patchEvent(target TargetFile, res PatchResult) Event {
	ev := Event{Kind: EventPatch, Target: target, Patch: res}
	if res.Outcome == Mismatch {
		ev.Err = fmt.Errorf("%w: %s patch %d at 0x%x", ErrPatchContentMismatch, target.Name, res.Index, res.Offset)
	}

	return ev
}

// VerifyAndLoad reads target into memory and checks its checksum.
//
// Unless Options.Strict is set, a file that fails the checksum is still
// accepted when its backup exists and matches; derived is then true and the
// returned buffer is refused by Backup and Commit.
func (e *Engine) VerifyAndLoad(target TargetFile) (buf *FileBuffer, derived bool, err error) {
	path := targetPath(e.opts.Dir, target.Name)
	data, ok, err := readIfExists(path)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrFileAbsent, target.Name)
	}

	if SumMatches(data, target.Sum) {
		return NewFileBuffer(target.Name, data), false, nil
	}

	if !e.opts.Strict {
		verified, err := e.backupVerified(target)
		if err != nil {
			return nil, false, err
		}
		if verified {
			buf := NewFileBuffer(target.Name, data)
			buf.derived = true
			return buf, true, nil
		}
	}

	return nil, false, fmt.Errorf("%w: %s", ErrChecksumMismatch, target.Name)
}

// backupVerified reports whether the target backup exists and is the known original.
func (e *Engine) backupVerified(target TargetFile) (bool, error) {
	sum, err := checksumFile(targetPath(e.opts.Dir, e.backupPath(target)))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check backup of %s: %w", target.Name, err)
	}

	return sumEqual(sum, target.Sum), nil
}

// Backup writes the verified original contents of buf to the target backup.
// It must be called before any Apply on buf.
func (e *Engine) Backup(target TargetFile, buf *FileBuffer) error {
	if buf.Changed() {
		return fmt.Errorf("backup %s: buffer already modified", target.Name)
	}
	if buf.Derived() {
		return fmt.Errorf("backup %s: buffer is not the original", target.Name)
	}

	mode := fileMode(targetPath(e.opts.Dir, target.Name))
	return writeBackup(targetPath(e.opts.Dir, e.backupPath(target)), buf.Bytes(), mode)
}

// Commit writes buf back to the target path when any patch applied.
// A derived buffer is never written.
func (e *Engine) Commit(target TargetFile, buf *FileBuffer) error {
	if !buf.Changed() {
		return nil
	}
	if buf.Derived() {
		return fmt.Errorf("%w: commit %s: file was not verified as original", ErrChecksumMismatch, target.Name)
	}

	path := targetPath(e.opts.Dir, target.Name)
	if err := writeFileAtomic(path, buf.Bytes(), fileMode(path)); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// backupPath returns the backup file name of target.
func (e *Engine) backupPath(target TargetFile) string {
	return BackupName(e.opts.BackupPrefix, target.Name)
}

// emit delivers ev to Options.OnEvent.
func (e *Engine) emit(ev Event) {
	if e.opts.OnEvent != nil {
		ev.DryRun = e.opts.DryRun
		e.opts.OnEvent(ev)
	}
}
