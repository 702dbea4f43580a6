package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"buildcost/core/catalog"
	"buildcost/core/estimate"
	"buildcost/core/ratecard"
	"buildcost/core/types"
	"buildcost/internal/errors"
)

func sampleEstimate(t *testing.T) (types.BuildSpec, *types.EstimateResult) {
	t.Helper()
	spec := types.BuildSpec{
		Platform:  types.PlatformBoth,
		AuthLevel: types.AuthMultiTenant,
		Quality:   types.QualityProduction,
		Modules:   []types.ModuleID{"subscriptions"},
	}
	result, err := estimate.Calculate(spec, catalog.Default(), ratecard.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return spec, result
}

// TestRenderJSON verifies the JSON envelope round-trips
func TestRenderJSON(t *testing.T) {
	spec, result := sampleEstimate(t)

	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, spec, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if envelope.Spec.Platform != types.PlatformBoth {
		t.Errorf("spec not preserved: %+v", envelope.Spec)
	}
	if envelope.Estimate == nil || envelope.Estimate.Confidence != result.Confidence {
		t.Errorf("estimate not preserved: %+v", envelope.Estimate)
	}
}

// TestRenderCLI verifies the CLI summary carries the key sections
func TestRenderCLI(t *testing.T) {
	// Deterministic output regardless of terminal detection
	color.NoColor = true
	defer func() { color.NoColor = false }()

	spec, result := sampleEstimate(t)

	var buf bytes.Buffer
	if err := Render(&buf, FormatCLI, spec, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BUILD COST ESTIMATE", "COST DRIVERS", "ASSUMPTIONS", "confidence"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}
}

// TestRenderMarkdown verifies markdown structure
func TestRenderMarkdown(t *testing.T) {
	spec, result := sampleEstimate(t)

	var buf bytes.Buffer
	if err := Render(&buf, FormatMarkdown, spec, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Build Cost Estimate", "## Cost Drivers", "## Assumptions", "**Price band:**"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

// TestRenderUnknownFormat verifies the typed input error
func TestRenderUnknownFormat(t *testing.T) {
	spec, result := sampleEstimate(t)

	err := Render(&bytes.Buffer{}, Format("xml"), spec, result)
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected %s error, got %v", errors.TypeInput, err)
	}
}
