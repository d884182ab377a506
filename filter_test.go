// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import "testing"

func TestTargetFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		only  []string
		skip  []string
		match map[string]bool
	}{
		{
			name:  "no rules",
			match: map[string]bool{"TOWNE.TLK": true, "KEEP.TLK": true},
		},
		{
			name:  "blank rules",
			only:  []string{" "},
			skip:  []string{""},
			match: map[string]bool{"TOWNE.TLK": true},
		},
		{
			name:  "only exact",
			only:  []string{"TOWNE.TLK"},
			match: map[string]bool{"TOWNE.TLK": true, "KEEP.TLK": false},
		},
		{
			name:  "only case-insensitive glob",
			only:  []string{"d*.tlk"},
			match: map[string]bool{"DWELLING.TLK": true, "CASTLE.TLK": false},
		},
		{
			name:  "skip",
			skip:  []string{"KEEP.TLK"},
			match: map[string]bool{"KEEP.TLK": false, "CASTLE.TLK": true},
		},
		{
			name:  "skip overrides only",
			only:  []string{"*.TLK"},
			skip:  []string{"castle.tlk"},
			match: map[string]bool{"CASTLE.TLK": false, "TOWNE.TLK": true},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filter, err := newTargetFilter(tc.only, tc.skip)
			if err != nil {
				t.Fatalf("newTargetFilter: %v", err)
			}

			for name, want := range tc.match {
				if got := filter.Match(name); got != want {
					t.Fatalf("Match(%q)=%v, want %v", name, got, want)
				}
			}
		})
	}
}
