// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/raldi/u5fix"
)

func TestPrinterEvent(t *testing.T) {
	t.Parallel()

	towne := u5fix.TargetFile{Name: u5fix.TowneTLK}

	testCases := []struct {
		name      string
		ev        u5fix.Event
		verbose   bool
		dryRun    bool
		restoring bool
		wantOut   string
		wantErr   string
	}{
		{
			name:    "not found",
			ev:      u5fix.Event{Kind: u5fix.EventNotFound, Target: towne},
			wantErr: "TOWNE.TLK not found. Run this from your Ultima V directory.\n",
		},
		{
			name:    "checksum mismatch",
			ev:      u5fix.Event{Kind: u5fix.EventChecksumMismatch, Target: towne},
			wantOut: "TOWNE.TLK doesn't look like an original; won't back up or modify\n",
		},
		{
			name:    "backup",
			ev:      u5fix.Event{Kind: u5fix.EventBackup, Target: towne, BackupPath: "orig-TOWNE.TLK"},
			wantOut: "Backing up TOWNE.TLK to orig-TOWNE.TLK\n",
		},
		{
			name:    "derived",
			ev:      u5fix.Event{Kind: u5fix.EventDerived, Target: towne, BackupPath: "orig-TOWNE.TLK"},
			wantOut: "TOWNE.TLK was already patched; keeping verified backup orig-TOWNE.TLK\n",
		},
		{
			name:    "already applied",
			ev:      u5fix.Event{Kind: u5fix.EventPatch, Target: towne, Patch: u5fix.PatchResult{Index: 1, Outcome: u5fix.AlreadyApplied}},
			wantOut: "TOWNE.TLK already received patch 1\n",
		},
		{
			name:    "mismatch",
			ev:      u5fix.Event{Kind: u5fix.EventPatch, Target: towne, Patch: u5fix.PatchResult{Index: 5, Outcome: u5fix.Mismatch}},
			wantOut: "TOWNE.TLK doesn't contain expected contents; won't apply patch 5\n",
		},
		{
			name: "applied is quiet",
			ev:   u5fix.Event{Kind: u5fix.EventPatch, Target: towne, Patch: u5fix.PatchResult{Index: 1, Outcome: u5fix.Applied}},
		},
		{
			name:    "applied verbose",
			ev:      u5fix.Event{Kind: u5fix.EventPatch, Target: towne, Patch: u5fix.PatchResult{Index: 1, Outcome: u5fix.Applied}},
			verbose: true,
			wantOut: "TOWNE.TLK applied patch 1\n",
		},
		{
			name:    "applied dry run",
			ev:      u5fix.Event{Kind: u5fix.EventPatch, Target: towne, Patch: u5fix.PatchResult{Index: 1, Outcome: u5fix.Applied}},
			dryRun:  true,
			wantOut: "TOWNE.TLK would apply patch 1\n",
		},
		{
			name:    "written",
			ev:      u5fix.Event{Kind: u5fix.EventWritten, Target: towne},
			wantOut: "Wrote new TOWNE.TLK\n",
		},
		{
			name:    "failed",
			ev:      u5fix.Event{Kind: u5fix.EventFailed, Target: towne, Err: errors.New("disk full")},
			wantErr: "TOWNE.TLK: disk full\n",
		},
		{
			name: "filtered is quiet",
			ev:   u5fix.Event{Kind: u5fix.EventFiltered, Target: towne},
		},
		{
			name:      "restore without backup",
			ev:        u5fix.Event{Kind: u5fix.EventNotFound, Target: towne, BackupPath: "orig-TOWNE.TLK"},
			restoring: true,
			wantOut:   "No backup orig-TOWNE.TLK; won't restore TOWNE.TLK\n",
		},
		{
			name:      "restored",
			ev:        u5fix.Event{Kind: u5fix.EventRestored, Target: towne, BackupPath: "orig-TOWNE.TLK"},
			restoring: true,
			wantOut:   "Restored TOWNE.TLK from orig-TOWNE.TLK\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			p := newPrinter(&out, &errOut, &MainConfig{NoColor: true}, tc.verbose)
			p.dryRun = tc.dryRun
			p.restoring = tc.restoring

			p.Event(tc.ev)
			if got := out.String(); got != tc.wantOut {
				t.Fatalf("stdout=%q, want %q", got, tc.wantOut)
			}
			if got := errOut.String(); got != tc.wantErr {
				t.Fatalf("stderr=%q, want %q", got, tc.wantErr)
			}
		})
	}
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if useColor(&MainConfig{}, &buf) {
		t.Fatal("non-terminal writer must not be colored")
	}
	if !useColor(&MainConfig{Color: true}, &buf) {
		t.Fatal("-color must force color")
	}
	if useColor(&MainConfig{Color: false, NoColor: true}, &buf) {
		t.Fatal("-nocolor must disable color")
	}
}
