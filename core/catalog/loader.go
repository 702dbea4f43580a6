// Package catalog - HCL catalog loading
package catalog

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// catalogFile is the top-level HCL schema
type catalogFile struct {
	Modules []moduleBlock `hcl:"module,block"`
}

// moduleBlock is one module "<id>" { ... } block
type moduleBlock struct {
	ID           string   `hcl:"id,label"`
	Name         string   `hcl:"name"`
	Description  string   `hcl:"description,optional"`
	Category     string   `hcl:"category,optional"`
	BaseHours    float64  `hcl:"base_hours"`
	BaseTokens   int64    `hcl:"base_tokens,optional"`
	RiskWeight   float64  `hcl:"risk_weight,optional"`
	Dependencies []string `hcl:"dependencies,optional"`
}

// LoadFile reads and validates a module catalog from an HCL file.
//
// Example:
//
//	module "subscriptions" {
//	  name         = "Subscriptions"
//	  category     = "commerce"
//	  base_hours   = 6
//	  risk_weight  = 1.4
//	  dependencies = ["checkout"]
//	}
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeCatalog, err, "failed to read catalog file %s", path)
	}
	return Load(src, path)
}

// Load parses and validates a module catalog from HCL source
func Load(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse catalog", diags)
	}

	var raw catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode catalog", diags)
	}

	entries := make([]types.ModuleCatalogEntry, 0, len(raw.Modules))
	for _, m := range raw.Modules {
		entries = append(entries, m.toEntry())
	}

	c := New(entries)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// toEntry converts a decoded block into a catalog entry,
// applying the neutral risk weight when none is given
func (m moduleBlock) toEntry() types.ModuleCatalogEntry {
	risk := m.RiskWeight
	if risk == 0 {
		risk = 1.0
	}
	deps := make([]types.ModuleID, len(m.Dependencies))
	for i, d := range m.Dependencies {
		deps[i] = types.ModuleID(d)
	}
	return types.ModuleCatalogEntry{
		ModuleID:     types.ModuleID(m.ID),
		Name:         m.Name,
		Description:  m.Description,
		Category:     m.Category,
		BaseHours:    m.BaseHours,
		BaseTokens:   m.BaseTokens,
		RiskWeight:   risk,
		Dependencies: deps,
	}
}
