// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

import (
	"bytes"
	"fmt"
	"sort"
)

// Validate checks target and patch records and the per-file ordering rules.
//
// Patches of one target must not overlap, and a length-changing patch must
// be the highest-reaching patch of its target so that its shift never moves
// another patch's offset.
func (t *Table) Validate() error {
	seen := make(map[string]struct{}, len(t.Targets))
	for i := range t.Targets {
		target := t.Targets[i]
		name, err := NormalizeTargetName(target.Name)
		if err != nil || name != target.Name {
			return fmt.Errorf("%w: target %d: %w", ErrInvalidTable, i, ErrInvalidTargetName)
		}

		key := targetKey(name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("%w: duplicate target %q", ErrInvalidTable, name)
		}
		seen[key] = struct{}{}

		if !validSum(target.Sum) {
			return fmt.Errorf("%w: target %q: malformed checksum %q", ErrInvalidTable, name, target.Sum)
		}
	}

	known := make(map[string]struct{}, len(t.Targets))
	for i := range t.Targets {
		known[t.Targets[i].Name] = struct{}{}
	}

	for i := range t.Patches {
		if err := validatePatch(&t.Patches[i], known); err != nil {
			return fmt.Errorf("%w: patch %d: %w", ErrInvalidTable, i, err)
		}
	}

	for i := range t.Targets {
		if err := t.validateTargetPatches(t.Targets[i].Name); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTable, t.Targets[i].Name, err)
		}
	}

	return nil
}

// validatePatch checks one patch record in isolation.
func validatePatch(p *Patch, known map[string]struct{}) error {
	if _, ok := known[p.Target]; !ok {
		return fmt.Errorf("unknown target %q", p.Target)
	}

	if p.Offset < 0 {
		return fmt.Errorf("negative offset %d", p.Offset)
	}

	// An empty window always compares equal, so the patch could never apply.
	if len(p.Replacement) == 0 {
		return fmt.Errorf("empty replacement at 0x%x", p.Offset)
	}

	if bytes.Equal(p.Expected, p.Replacement) {
		return fmt.Errorf("expected and replacement are identical at 0x%x", p.Offset)
	}

	return nil
}

// validateTargetPatches checks overlap and length-change placement for one target.
func (t *Table) validateTargetPatches(target string) error {
	indices := t.patchesFor(target)
	if len(indices) == 0 {
		return nil
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.SliceStable(sorted, func(a, b int) bool {
		return t.Patches[sorted[a]].Offset < t.Patches[sorted[b]].Offset
	})

	for k := 1; k < len(sorted); k++ {
		prev := &t.Patches[sorted[k-1]]
		cur := &t.Patches[sorted[k]]
		if prev.end() > cur.Offset {
			return fmt.Errorf("patches %d and %d overlap", sorted[k-1], sorted[k])
		}
	}

	for _, i := range indices {
		p := &t.Patches[i]
		if p.Delta() == 0 {
			continue
		}

		for _, j := range indices {
			if j != i && t.Patches[j].end() > p.Offset {
				return fmt.Errorf("length-changing patch %d at 0x%x is followed by patch %d at 0x%x",
					i, p.Offset, j, t.Patches[j].Offset)
			}
		}
	}

	return nil
}
