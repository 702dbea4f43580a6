package expansion

import (
	"testing"

	"buildcost/core/catalog"
	"buildcost/core/types"
	"buildcost/internal/errors"
)

// testCatalog builds a small catalog with a diamond dependency shape:
//
//	reporting -> {billing, audit} -> accounts
func testCatalog() *catalog.Catalog {
	return catalog.New([]types.ModuleCatalogEntry{
		{ModuleID: "accounts", Name: "Accounts", BaseHours: 8, RiskWeight: 1.0},
		{ModuleID: "billing", Name: "Billing", BaseHours: 6, RiskWeight: 1.3,
			Dependencies: []types.ModuleID{"accounts"}},
		{ModuleID: "audit", Name: "Audit Log", BaseHours: 4, RiskWeight: 1.1,
			Dependencies: []types.ModuleID{"accounts"}},
		{ModuleID: "reporting", Name: "Reporting", BaseHours: 5, RiskWeight: 1.2,
			Dependencies: []types.ModuleID{"billing", "audit"}},
		{ModuleID: "standalone", Name: "Standalone", BaseHours: 3, RiskWeight: 1.0},
	})
}

// TestExpandOrdering tests dependency-first ordering and deduplication
func TestExpandOrdering(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name     string
		selected []types.ModuleID
		expected []types.ModuleID
	}{
		{
			name:     "empty selection yields empty result",
			selected: []types.ModuleID{},
			expected: []types.ModuleID{},
		},
		{
			name:     "leaf module expands to itself",
			selected: []types.ModuleID{"accounts"},
			expected: []types.ModuleID{"accounts"},
		},
		{
			name:     "direct dependency precedes dependent",
			selected: []types.ModuleID{"billing"},
			expected: []types.ModuleID{"accounts", "billing"},
		},
		{
			name:     "diamond closure visits shared dependency once",
			selected: []types.ModuleID{"reporting"},
			expected: []types.ModuleID{"accounts", "billing", "audit", "reporting"},
		},
		{
			name:     "duplicated selection collapses",
			selected: []types.ModuleID{"billing", "billing", "accounts"},
			expected: []types.ModuleID{"accounts", "billing"},
		},
		{
			name:     "selection order preserved for independent modules",
			selected: []types.ModuleID{"standalone", "billing"},
			expected: []types.ModuleID{"standalone", "accounts", "billing"},
		},
		{
			name:     "unknown ids are dropped",
			selected: []types.ModuleID{"nonexistent", "audit"},
			expected: []types.ModuleID{"accounts", "audit"},
		},
		{
			name:     "only unknown ids yields empty result",
			selected: []types.ModuleID{"nope", "also-nope"},
			expected: []types.ModuleID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.selected, cat)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

// TestExpandClosureProperty verifies that every transitive dependency of
// every emitted module appears exactly once, before its dependent
func TestExpandClosureProperty(t *testing.T) {
	cat := testCatalog()

	got, err := Expand([]types.ModuleID{"reporting", "standalone", "audit"}, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	position := make(map[types.ModuleID]int)
	for i, id := range got {
		if _, seen := position[id]; seen {
			t.Fatalf("module %s emitted more than once", id)
		}
		position[id] = i
	}

	for _, id := range got {
		entry, ok := cat.Get(id)
		if !ok {
			t.Fatalf("emitted module %s not in catalog", id)
		}
		for _, dep := range entry.Dependencies {
			depPos, present := position[dep]
			if !present {
				t.Errorf("dependency %s of %s missing from closure", dep, id)
				continue
			}
			if depPos >= position[id] {
				t.Errorf("dependency %s does not precede %s", dep, id)
			}
		}
	}
}

// TestExpandCycle verifies that a cyclic catalog produces a typed error
// instead of unbounded recursion
func TestExpandCycle(t *testing.T) {
	cyclic := catalog.New([]types.ModuleCatalogEntry{
		{ModuleID: "a", Name: "A", BaseHours: 1, RiskWeight: 1.0,
			Dependencies: []types.ModuleID{"b"}},
		{ModuleID: "b", Name: "B", BaseHours: 1, RiskWeight: 1.0,
			Dependencies: []types.ModuleID{"c"}},
		{ModuleID: "c", Name: "C", BaseHours: 1, RiskWeight: 1.0,
			Dependencies: []types.ModuleID{"a"}},
	})

	_, err := Expand([]types.ModuleID{"a"}, cyclic)
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	if !errors.IsType(err, errors.TypeCycle) {
		t.Errorf("expected %s error, got %v", errors.TypeCycle, err)
	}
}

// TestExpandSelfCycle covers a module depending on itself
func TestExpandSelfCycle(t *testing.T) {
	cyclic := catalog.New([]types.ModuleCatalogEntry{
		{ModuleID: "loop", Name: "Loop", BaseHours: 1, RiskWeight: 1.0,
			Dependencies: []types.ModuleID{"loop"}},
	})

	_, err := Expand([]types.ModuleID{"loop"}, cyclic)
	if !errors.IsType(err, errors.TypeCycle) {
		t.Errorf("expected %s error, got %v", errors.TypeCycle, err)
	}
}

// TestExpandDeterminism verifies repeated expansion is identical
func TestExpandDeterminism(t *testing.T) {
	cat := testCatalog()
	selected := []types.ModuleID{"reporting", "billing", "standalone"}

	first, err := Expand(selected, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Expand(selected, cat)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", i, len(first), len(again))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Errorf("run %d: position %d changed from %s to %s", i, j, first[j], again[j])
			}
		}
	}
}
