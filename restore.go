// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"context"
	"fmt"
)

// Restore copies verified backups over their originals.
//
// Targets without a backup are reported as FileAbsent and targets whose
// backup fails the checksum as FileChecksumMismatch; neither stops the run.
func (e *Engine) Restore(ctx context.Context) (*Report, error) {
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

		report.Files = append(report.Files, e.restoreTarget(target))
	}

	return report, nil
}

// restoreTarget restores one target from its backup.
func (e *Engine) restoreTarget(target TargetFile) FileReport {
	backupName := e.backupPath(target)
	fr := FileReport{Target: target, BackupPath: backupName}

	backupPath := targetPath(e.opts.Dir, backupName)
	data, ok, err := readIfExists(backupPath)
	if err != nil {
		fr.fail(err)
		e.emit(Event{Kind: EventFailed, Target: target, Err: err})
		return fr
	}

	if !ok {
		fr.Status = FileAbsent
		e.emit(Event{Kind: EventNotFound, Target: target, BackupPath: backupName})
		return fr
	}

	if !SumMatches(data, target.Sum) {
		fr.Status = FileChecksumMismatch
		fr.Err = fmt.Errorf("%w: %s", ErrBackupMismatch, backupName)
		fr.Error = fr.Err.Error()
		e.emit(Event{Kind: EventChecksumMismatch, Target: target, BackupPath: backupName})
		return fr
	}

	path := targetPath(e.opts.Dir, target.Name)
	current, exists, err := readIfExists(path)
	if err != nil {
		fr.fail(err)
		e.emit(Event{Kind: EventFailed, Target: target, Err: err})
		return fr
	}

	if exists && SumMatches(current, target.Sum) {
		fr.Status = FileUnchanged
		return fr
	}

	if !e.opts.DryRun {
		mode := fileMode(backupPath)
		if err := writeFileAtomic(path, data, mode); err != nil {
			fr.fail(fmt.Errorf("restore: %w", err))
			e.emit(Event{Kind: EventFailed, Target: target, Err: fr.Err})
			return fr
		}
		fr.Written = true
	}

	fr.Status = FileRestored
	e.emit(Event{Kind: EventRestored, Target: target, BackupPath: backupName})

	return fr
}
