// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

/*
Package u5fix applies a fixed table of byte-range substitutions to known
data files, correcting dialogue defects in the Ultima V (DOS) *.TLK files.
Details on the defects: https://tcrf.net/Ultima_V_(DOS).

A target file is identified by name and the MD5 checksum of its original
contents. Files that do not match are never backed up or modified. Each
verified original is copied to "orig-<name>" before anything is written.

Patch rules (summary):
  - replacement bytes already at the offset: already applied, no change;
  - expected bytes at the offset: substituted, later bytes shift when the
    lengths differ;
  - anything else: mismatch, the patch is skipped and the others still run;
  - the file is rewritten only when at least one patch applied.

A length-changing patch must be the highest-reaching patch of its file;
Table.Validate enforces it together with non-overlap.

# Applying

	e, err := u5fix.New(u5fix.DefaultTable(), u5fix.Options{
	    Dir: "/games/ultima5",
	    OnEvent: func(ev u5fix.Event) {
	        // render progress
	    },
	})
	if err != nil {
	    return err
	}
	report, err := e.Run(ctx)
	if errors.Is(err, u5fix.ErrFileAbsent) {
	    // wrong directory; report covers targets handled so far
	}
	_ = report

Running again is safe: when a file no longer matches its checksum but its
backup does and every patch is already present, it is treated as previously
patched, the backup is kept, and nothing is written. If any patch is missing
from such a file, it is reported as a checksum mismatch and left alone. Set
Options.Strict to refuse these files outright.

# Checking and restoring

Options.DryRun evaluates the table without writing anything. Restore puts
verified backups back:

	e, err := u5fix.New(u5fix.DefaultTable(), u5fix.Options{Only: []string{"DWELLING.TLK"}})
	if err != nil {
	    return err
	}
	if _, err := e.Restore(ctx); err != nil {
	    return err
	}
*/
package u5fix
