// Package catalog - Authoritative module catalog
// Defines the priceable feature modules and their dependency graph.
// This is the source of truth the estimation engine reads from.
package catalog

import (
	"sort"

	"buildcost/core/types"
)

// Catalog is an immutable, indexed view over a set of module entries.
// Iteration order is stable (sorted by module id) so that every
// calculation over the same catalog is byte-identical.
type Catalog struct {
	entries    map[types.ModuleID]*types.ModuleCatalogEntry
	ids        []types.ModuleID
	duplicates []types.ModuleID
}

// New builds a catalog from entries. Later duplicates of the same id
// are ignored; Validate reports duplicates as an error.
func New(entries []types.ModuleCatalogEntry) *Catalog {
	c := &Catalog{
		entries: make(map[types.ModuleID]*types.ModuleCatalogEntry, len(entries)),
	}
	for i := range entries {
		e := entries[i]
		if _, exists := c.entries[e.ModuleID]; exists {
			c.duplicates = append(c.duplicates, e.ModuleID)
			continue
		}
		c.entries[e.ModuleID] = &e
		c.ids = append(c.ids, e.ModuleID)
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
	return c
}

// Get returns the entry for a module id
func (c *Catalog) Get(id types.ModuleID) (*types.ModuleCatalogEntry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Has reports whether a module id exists in the catalog
func (c *Catalog) Has(id types.ModuleID) bool {
	_, ok := c.entries[id]
	return ok
}

// IDs returns all module ids in sorted order
func (c *Catalog) IDs() []types.ModuleID {
	result := make([]types.ModuleID, len(c.ids))
	copy(result, c.ids)
	return result
}

// Entries returns all entries in sorted id order
func (c *Catalog) Entries() []*types.ModuleCatalogEntry {
	result := make([]*types.ModuleCatalogEntry, 0, len(c.ids))
	for _, id := range c.ids {
		result = append(result, c.entries[id])
	}
	return result
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
