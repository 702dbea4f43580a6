// Package expansion resolves selected modules into their full
// dependency closure.
//
// The expander is a pure function over (selection, catalog): no I/O,
// no state, safe to call concurrently and to memoize per catalog
// snapshot.
package expansion

import (
	"strings"

	"buildcost/core/catalog"
	"buildcost/core/types"
	"buildcost/internal/errors"
)

// visit states for the depth-first walk
const (
	unvisited = iota
	visiting
	visited
)

// Expand resolves a user-selected set of module ids into the
// deduplicated transitive closure of their dependencies, ordered so
// that every dependency appears before any module that depends on it.
//
// Duplicated selections collapse to one occurrence. Ids absent from
// the catalog are silently dropped; the catalog is authoritative.
// An empty selection yields an empty result.
//
// A cyclic dependency chain returns a TypeCycle error naming the
// cycle path. The walk keeps an explicit in-progress set, so a cycle
// can never cause unbounded recursion.
func Expand(selected []types.ModuleID, cat *catalog.Catalog) ([]types.ModuleID, error) {
	if len(selected) == 0 {
		return []types.ModuleID{}, nil
	}

	state := make(map[types.ModuleID]int, len(selected))
	order := make([]types.ModuleID, 0, len(selected))

	var walk func(id types.ModuleID, path []types.ModuleID) error
	walk = func(id types.ModuleID, path []types.ModuleID) error {
		entry, ok := cat.Get(id)
		if !ok {
			// Unknown id: drop, never error
			return nil
		}

		switch state[id] {
		case visited:
			return nil
		case visiting:
			return cycleError(append(path, id))
		}
		state[id] = visiting

		for _, dep := range entry.Dependencies {
			if err := walk(dep, append(path, id)); err != nil {
				return err
			}
		}

		state[id] = visited
		order = append(order, id)
		return nil
	}

	for _, id := range selected {
		if err := walk(id, nil); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// cycleError formats the walk path that closed the cycle
func cycleError(path []types.ModuleID) error {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = string(id)
	}
	return errors.Cycle("module dependency cycle: " + strings.Join(parts, " -> "))
}
