package catalog

import (
	"testing"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// TestValidate tests structural catalog validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.ModuleCatalogEntry
		wantErr errors.Type
	}{
		{
			name: "valid catalog",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 2, RiskWeight: 1.0},
				{ModuleID: "b", Name: "B", BaseHours: 3, RiskWeight: 1.2, Dependencies: []types.ModuleID{"a"}},
			},
		},
		{
			name: "duplicate ids rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 2, RiskWeight: 1.0},
				{ModuleID: "a", Name: "A again", BaseHours: 4, RiskWeight: 1.0},
			},
			wantErr: errors.TypeCatalog,
		},
		{
			name: "negative hours rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: -1, RiskWeight: 1.0},
			},
			wantErr: errors.TypeCatalog,
		},
		{
			name: "zero risk weight rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 1, RiskWeight: 0},
			},
			wantErr: errors.TypeCatalog,
		},
		{
			name: "unknown dependency rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 1, RiskWeight: 1.0, Dependencies: []types.ModuleID{"ghost"}},
			},
			wantErr: errors.TypeCatalog,
		},
		{
			name: "dependency cycle rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 1, RiskWeight: 1.0, Dependencies: []types.ModuleID{"b"}},
				{ModuleID: "b", Name: "B", BaseHours: 1, RiskWeight: 1.0, Dependencies: []types.ModuleID{"a"}},
			},
			wantErr: errors.TypeCycle,
		},
		{
			name: "self dependency rejected",
			entries: []types.ModuleCatalogEntry{
				{ModuleID: "a", Name: "A", BaseHours: 1, RiskWeight: 1.0, Dependencies: []types.ModuleID{"a"}},
			},
			wantErr: errors.TypeCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.entries).Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsType(err, tt.wantErr) {
				t.Errorf("expected %s error, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestStableIteration verifies sorted, repeatable iteration order
func TestStableIteration(t *testing.T) {
	cat := New([]types.ModuleCatalogEntry{
		{ModuleID: "zeta", Name: "Z", BaseHours: 1, RiskWeight: 1.0},
		{ModuleID: "alpha", Name: "A", BaseHours: 1, RiskWeight: 1.0},
		{ModuleID: "mid", Name: "M", BaseHours: 1, RiskWeight: 1.0},
	})

	ids := cat.IDs()
	expected := []types.ModuleID{"alpha", "mid", "zeta"}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], ids[i])
		}
	}

	entries := cat.Entries()
	for i := range entries {
		if entries[i].ModuleID != expected[i] {
			t.Errorf("entries position %d: expected %s, got %s", i, expected[i], entries[i].ModuleID)
		}
	}
}

// TestLoadHCL tests catalog loading from HCL source
func TestLoadHCL(t *testing.T) {
	src := `
module "payments" {
  name        = "Payments"
  category    = "commerce"
  base_hours  = 4
  base_tokens = 50000
  risk_weight = 1.3
}

module "invoicing" {
  name         = "Invoicing"
  base_hours   = 6
  dependencies = ["payments"]
}
`
	cat, err := Load([]byte(src), "catalog.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 modules, got %d", cat.Len())
	}

	payments, ok := cat.Get("payments")
	if !ok {
		t.Fatal("payments module missing")
	}
	if payments.BaseHours != 4 || payments.RiskWeight != 1.3 || payments.Category != "commerce" {
		t.Errorf("unexpected payments entry: %+v", payments)
	}

	// Omitted risk weight defaults to the neutral 1.0
	invoicing, ok := cat.Get("invoicing")
	if !ok {
		t.Fatal("invoicing module missing")
	}
	if invoicing.RiskWeight != 1.0 {
		t.Errorf("expected neutral risk weight, got %f", invoicing.RiskWeight)
	}
	if len(invoicing.Dependencies) != 1 || invoicing.Dependencies[0] != "payments" {
		t.Errorf("unexpected dependencies: %v", invoicing.Dependencies)
	}
}

// TestLoadHCLErrors tests loader failure modes
func TestLoadHCLErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr errors.Type
	}{
		{
			name:    "syntax error",
			src:     `module "broken" {`,
			wantErr: errors.TypeParsing,
		},
		{
			name: "missing required attribute",
			src: `
module "nameless" {
  base_hours = 2
}
`,
			wantErr: errors.TypeParsing,
		},
		{
			name: "cyclic catalog rejected at load",
			src: `
module "a" {
  name         = "A"
  base_hours   = 1
  dependencies = ["b"]
}
module "b" {
  name         = "B"
  base_hours   = 1
  dependencies = ["a"]
}
`,
			wantErr: errors.TypeCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src), "test.hcl")
			if !errors.IsType(err, tt.wantErr) {
				t.Errorf("expected %s error, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestDefaultCatalogValid verifies the built-in catalog passes its own
// validation
func TestDefaultCatalogValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default catalog failed validation: %v", err)
	}
}
