// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/raldi/u5fix"
)

// printer renders engine events as console lines.
type printer struct {
	out, err  io.Writer
	warn      *color.Color
	fail      *color.Color
	ok        *color.Color
	verbose   bool
	dryRun    bool
	restoring bool
}

func newPrinter(out, errOut io.Writer, cfg *MainConfig, verbose bool) *printer {
	p := &printer{
		out:     out,
		err:     errOut,
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		ok:      color.New(color.FgGreen),
		verbose: verbose,
	}
	if !useColor(cfg, out) {
		p.warn.DisableColor()
		p.fail.DisableColor()
		p.ok.DisableColor()
	} else {
		p.warn.EnableColor()
		p.fail.EnableColor()
		p.ok.EnableColor()
	}
	return p
}

// useColor decides coloring from flags, then from whether w is a terminal.
func useColor(cfg *MainConfig, w io.Writer) bool {
	if cfg != nil && cfg.NoColor {
		return false
	}
	if cfg != nil && cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Event prints ev; it is passed to the engine as Options.OnEvent.
func (p *printer) Event(ev u5fix.Event) {
	name := ev.Target.Name
	switch ev.Kind {
	case u5fix.EventNotFound:
		if p.restoring {
			p.warn.Fprintf(p.out, "No backup %s; won't restore %s\n", ev.BackupPath, name)
			return
		}
		p.fail.Fprintf(p.err, "%s not found. Run this from your Ultima V directory.\n", name)
	case u5fix.EventChecksumMismatch:
		if p.restoring {
			p.warn.Fprintf(p.out, "%s doesn't look like an original; won't restore %s\n", ev.BackupPath, name)
			return
		}
		p.warn.Fprintf(p.out, "%s doesn't look like an original; won't back up or modify\n", name)
	case u5fix.EventDerived:
		fmt.Fprintf(p.out, "%s was already patched; keeping verified backup %s\n", name, ev.BackupPath)
	case u5fix.EventBackup:
		fmt.Fprintf(p.out, "Backing up %s to %s\n", name, ev.BackupPath)
	case u5fix.EventPatch:
		p.patch(name, ev.Patch)
	case u5fix.EventWritten:
		p.ok.Fprintf(p.out, "Wrote new %s\n", name)
	case u5fix.EventFailed:
		p.fail.Fprintf(p.err, "%s: %v\n", name, ev.Err)
	case u5fix.EventFiltered:
		if p.verbose {
			fmt.Fprintf(p.out, "Skipping %s\n", name)
		}
	case u5fix.EventRestored:
		if p.dryRun {
			fmt.Fprintf(p.out, "Would restore %s from %s\n", name, ev.BackupPath)
			return
		}
		p.ok.Fprintf(p.out, "Restored %s from %s\n", name, ev.BackupPath)
	}
}

func (p *printer) patch(name string, res u5fix.PatchResult) {
	switch res.Outcome {
	case u5fix.AlreadyApplied:
		fmt.Fprintf(p.out, "%s already received patch %d\n", name, res.Index)
	case u5fix.Mismatch:
		p.warn.Fprintf(p.out, "%s doesn't contain expected contents; won't apply patch %d\n", name, res.Index)
	case u5fix.Applied:
		switch {
		case p.dryRun:
			fmt.Fprintf(p.out, "%s would apply patch %d\n", name, res.Index)
		case p.verbose:
			fmt.Fprintf(p.out, "%s applied patch %d\n", name, res.Index)
		}
	}
}
