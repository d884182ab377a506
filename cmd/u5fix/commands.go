// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package main

import (
	"github.com/raldi/u5fix"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return newMainCommand(u5fix.DefaultTable())
}

func newMainCommand(table u5fix.Table) *cli.Command {
	cfg := &MainConfig{table: table}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "u5fix").
		WithSynopsis("u5fix [opts] [apply|check|restore|list]").
		WithDescription("u5fix fixes dialogue bugs in the Ultima V *.TLK files. Without a command it applies the fixes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return u5fixMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			CheckCommand(cfg),
			RestoreCommand(cfg),
			ListCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply").
		WithDescription("back up the original files and apply every fix").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check").
		WithDescription("report which fixes would apply without writing anything").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func RestoreCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RestoreConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Restore, "restore").
		WithAliases("r").
		WithSynopsis("restore [-n]").
		WithDescription("copy verified orig-* backups over the patched files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return restore(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list").
		WithDescription("list the known target files and fixes").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}
