// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/raldi/u5fix"
	"github.com/scott-cotton/cli"
)

// Exit codes besides usage errors.
const (
	exitAbsent = 1
	exitFailed = 2
)

func u5fixMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return runEngine(cfg, cc, false)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	if err := noArgs(cfg.Apply, cc, args); err != nil {
		return err
	}
	return runEngine(cfg.MainConfig, cc, false)
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if err := noArgs(cfg.Check, cc, args); err != nil {
		return err
	}
	return runEngine(cfg.MainConfig, cc, true)
}

func restore(cfg *RestoreConfig, cc *cli.Context, args []string) error {
	if err := noArgs(cfg.Restore, cc, args); err != nil {
		return err
	}
	settings, err := cfg.settings()
	if err != nil {
		return err
	}
	p := newPrinter(cc.Out, cc.Err, cfg.MainConfig, settings.Verbose)
	p.restoring = true
	e, err := newEngine(cfg.patchTable(), settings, p, cfg.DryRun)
	if err != nil {
		return err
	}
	report, err := e.Restore(goContext(cc))
	if err != nil {
		return err
	}
	if err := writeReport(settings.Report, report); err != nil {
		return err
	}
	if len(report.Failed()) > 0 {
		return cli.ExitCodeErr(exitFailed)
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	if err := noArgs(cfg.List, cc, args); err != nil {
		return err
	}
	return printTable(cc.Out, cfg.patchTable())
}

func noArgs(cmd *cli.Command, cc *cli.Context, args []string) error {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	return nil
}

// runEngine applies (or, with dryRun, checks) the default table.
func runEngine(cfg *MainConfig, cc *cli.Context, dryRun bool) error {
	settings, err := cfg.settings()
	if err != nil {
		return err
	}
	p := newPrinter(cc.Out, cc.Err, cfg, settings.Verbose)
	e, err := newEngine(cfg.patchTable(), settings, p, dryRun)
	if err != nil {
		return err
	}
	report, runErr := e.Run(goContext(cc))
	if err := writeReport(settings.Report, report); err != nil {
		return err
	}
	switch {
	case errors.Is(runErr, u5fix.ErrFileAbsent):
		return cli.ExitCodeErr(exitAbsent)
	case runErr != nil:
		return runErr
	case len(report.Failed()) > 0:
		return cli.ExitCodeErr(exitFailed)
	}
	return nil
}

func newEngine(table u5fix.Table, settings *fileConfig, p *printer, dryRun bool) (*u5fix.Engine, error) {
	opts := settings.Options
	opts.DryRun = opts.DryRun || dryRun
	opts.OnEvent = p.Event
	p.dryRun = opts.DryRun
	return u5fix.New(table, opts)
}

func goContext(cc *cli.Context) context.Context {
	if cc.Go == nil {
		return context.Background()
	}
	return cc.Go
}

// writeReport stores report as YAML at path; empty path is a no-op.
func writeReport(path string, report *u5fix.Report) error {
	if path == "" || report == nil {
		return nil
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// printTable lists targets and patches of table.
func printTable(w io.Writer, table u5fix.Table) error {
	for _, target := range table.Targets {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", target.Name, target.Sum); err != nil {
			return err
		}
	}
	for i, patch := range table.Patches {
		size := fmt.Sprintf("%d", len(patch.Expected))
		if d := patch.Delta(); d != 0 {
			size = fmt.Sprintf("%d%+d", len(patch.Expected), d)
		}
		if _, err := fmt.Fprintf(w, "patch %d  %-14s 0x%04x  %-5s %s\n", i, patch.Target, patch.Offset, size, patch.Note); err != nil {
			return err
		}
	}
	return nil
}
