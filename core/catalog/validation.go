// Package catalog - Structural validation
package catalog

import (
	"fmt"
	"strings"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// Validate checks the structural invariants of the catalog:
// unique ids, nonnegative hours and tokens, positive risk weights,
// resolvable dependencies, and an acyclic dependency relation.
func (c *Catalog) Validate() error {
	if len(c.duplicates) > 0 {
		return errors.Catalog(fmt.Sprintf("duplicate module ids: %v", c.duplicates))
	}

	for _, e := range c.Entries() {
		if e.ModuleID == "" {
			return errors.Catalog("module with empty id")
		}
		if e.BaseHours < 0 {
			return errors.Catalog(fmt.Sprintf("module %q has negative base hours", e.ModuleID))
		}
		if e.BaseTokens < 0 {
			return errors.Catalog(fmt.Sprintf("module %q has negative base tokens", e.ModuleID))
		}
		if e.RiskWeight <= 0 {
			return errors.Catalog(fmt.Sprintf("module %q has non-positive risk weight", e.ModuleID))
		}
		for _, dep := range e.Dependencies {
			if !c.Has(dep) {
				return errors.Catalog(fmt.Sprintf("module %q depends on unknown module %q", e.ModuleID, dep))
			}
		}
	}

	return c.checkAcyclic()
}

// visit states for cycle detection
const (
	unvisited = iota
	visiting
	visited
)

// checkAcyclic runs a DFS over the dependency relation with an explicit
// in-progress state, so a cycle is reported instead of recursing forever.
func (c *Catalog) checkAcyclic() error {
	state := make(map[types.ModuleID]int, c.Len())

	var walk func(id types.ModuleID, path []types.ModuleID) error
	walk = func(id types.ModuleID, path []types.ModuleID) error {
		switch state[id] {
		case visited:
			return nil
		case visiting:
			return cycleError(append(path, id))
		}
		state[id] = visiting
		entry, _ := c.Get(id)
		for _, dep := range entry.Dependencies {
			if err := walk(dep, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = visited
		return nil
	}

	for _, id := range c.IDs() {
		if err := walk(id, nil); err != nil {
			return err
		}
	}
	return nil
}

// cycleError formats a cycle path into a typed error
func cycleError(path []types.ModuleID) error {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = string(id)
	}
	return errors.Cycle("module dependency cycle: " + strings.Join(parts, " -> "))
}
