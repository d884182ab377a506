// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathrules"
)

// targetFilter holds compiled include/exclude rules for target names.
type targetFilter struct {
	matcher *pathrules.Matcher
}

// newTargetFilter compiles Only/Skip patterns. Nil filter admits every target.
func newTargetFilter(only []string, skip []string) (*targetFilter, error) {
	rules := filterRules(only, skip)
	if len(rules) == 0 {
		return nil, nil
	}

	defaultAction := pathrules.ActionInclude
	if len(normalizeFilterPatterns(only)) > 0 {
		defaultAction = pathrules.ActionExclude
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   defaultAction,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidFilterPattern, err)
	}

	return &targetFilter{matcher: matcher}, nil
}

// filterRules builds ordered rules: includes first, excludes override them.
func filterRules(only []string, skip []string) []pathrules.Rule {
	rules := make([]pathrules.Rule, 0, len(only)+len(skip))
	for _, pattern := range normalizeFilterPatterns(only) {
		rules = append(rules, pathrules.Rule{Action: pathrules.ActionInclude, Pattern: pattern})
	}

	for _, pattern := range normalizeFilterPatterns(skip) {
		rules = append(rules, pathrules.Rule{Action: pathrules.ActionExclude, Pattern: pattern})
	}

	return rules
}

// normalizeFilterPatterns trims patterns and drops empty ones.
func normalizeFilterPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		out = append(out, pattern)
	}

	return out
}

// Match reports whether target name passes the filter.
func (f *targetFilter) Match(name string) bool {
	if f == nil || f.matcher == nil {
		return true
	}

	return f.matcher.Included(name, false)
}
