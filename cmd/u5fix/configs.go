// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/raldi/u5fix"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Dir     string `cli:"name=d aliases=dir desc='directory holding the *.TLK files'"`
	Config  string `cli:"name=config desc='YAML config file'"`
	Only    string `cli:"name=only desc='comma separated target patterns to process'"`
	Skip    string `cli:"name=skip desc='comma separated target patterns to leave alone'"`
	Prefix  string `cli:"name=prefix desc='backup name prefix (default orig-)'"`
	Report  string `cli:"name=report desc='write a YAML run report to file'"`
	Strict  bool   `cli:"name=strict desc='only accept files matching the original checksum'"`
	Verbose bool   `cli:"name=v desc='report applied patches and filtered targets'"`
	Color   bool   `cli:"name=color desc='force colored output'"`
	NoColor bool   `cli:"name=nocolor desc='disable colored output'"`

	Main  *cli.Command
	table u5fix.Table
}

// patchTable returns the table the commands operate on.
func (cfg *MainConfig) patchTable() u5fix.Table {
	if len(cfg.table.Targets) == 0 {
		return u5fix.DefaultTable()
	}
	return cfg.table
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type RestoreConfig struct {
	*MainConfig

	DryRun bool `cli:"name=n desc='show what would be restored'"`

	Restore *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

// fileConfig is the YAML config file layout.
type fileConfig struct {
	u5fix.Options `yaml:",inline"`

	Report  string `yaml:"report,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// loadFileConfig reads a YAML config file.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &fc, nil
}

// settings merges the config file (if any) with flags; flags win.
func (cfg *MainConfig) settings() (*fileConfig, error) {
	fc := &fileConfig{}
	if cfg.Config != "" {
		loaded, err := loadFileConfig(cfg.Config)
		if err != nil {
			return nil, err
		}
		fc = loaded
	}

	if cfg.Dir != "" {
		fc.Dir = cfg.Dir
	}
	if cfg.Prefix != "" {
		fc.BackupPrefix = cfg.Prefix
	}
	if only := splitPatterns(cfg.Only); len(only) > 0 {
		fc.Only = only
	}
	if skip := splitPatterns(cfg.Skip); len(skip) > 0 {
		fc.Skip = skip
	}
	if cfg.Report != "" {
		fc.Report = cfg.Report
	}
	fc.Strict = fc.Strict || cfg.Strict
	fc.Verbose = fc.Verbose || cfg.Verbose

	return fc, nil
}

// splitPatterns splits a comma separated pattern list.
func splitPatterns(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
