// Package output renders estimate results for human and machine
// consumers. The engine result is already final; formatting never
// recomputes anything.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// Format identifies an output format
type Format string

const (
	FormatCLI      Format = "cli"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Envelope pairs the input spec with its estimate for serialization
type Envelope struct {
	Spec     types.BuildSpec       `json:"spec"`
	Estimate *types.EstimateResult `json:"estimate"`
}

// Render writes the estimate in the requested format
func Render(w io.Writer, format Format, spec types.BuildSpec, result *types.EstimateResult) error {
	switch format {
	case FormatCLI:
		return renderCLI(w, spec, result)
	case FormatJSON:
		return renderJSON(w, spec, result)
	case FormatMarkdown:
		return renderMarkdown(w, spec, result)
	default:
		return errors.Input(fmt.Sprintf("unknown output format: %s", format))
	}
}

func renderJSON(w io.Writer, spec types.BuildSpec, result *types.EstimateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Envelope{Spec: spec, Estimate: result})
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	priceColor  = color.New(color.FgGreen, color.Bold)
	warnColor   = color.New(color.FgYellow)
	badColor    = color.New(color.FgRed)
)

func renderCLI(w io.Writer, spec types.BuildSpec, result *types.EstimateResult) error {
	headerColor.Fprintln(w, "BUILD COST ESTIMATE")
	fmt.Fprintf(w, "  platform=%s auth=%s quality=%s modules=%d\n\n",
		spec.Platform, spec.AuthLevel, spec.Quality, len(spec.Modules))

	priceColor.Fprintf(w, "  %s - %s", money(result.PriceMin), money(result.PriceMax))
	fmt.Fprintf(w, "  (midpoint %s)\n", money(result.PriceMid))
	fmt.Fprintf(w, "  %d-%d hours, %.1f-%.1f working days\n",
		result.HoursMin, result.HoursMax, result.DaysMin, result.DaysMax)

	fmt.Fprint(w, "  confidence: ")
	confidenceColor(result.Confidence).Fprintf(w, "%d%%\n", result.Confidence)

	if len(result.Breakdown) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "MODULES")
		for _, mc := range result.Breakdown {
			fmt.Fprintf(w, "  %-28s %6.1fh  %10s\n", mc.Name, mc.Hours, money(mc.Cost))
		}
	}

	if len(result.CostDrivers) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "COST DRIVERS")
		for _, d := range result.CostDrivers {
			fmt.Fprintf(w, "  [%-6s] %-36s %12s\n", d.Impact, d.Name, signedMoney(d.Amount))
		}
	}

	if len(result.Assumptions) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "ASSUMPTIONS")
		for _, a := range result.Assumptions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	return nil
}

func renderMarkdown(w io.Writer, spec types.BuildSpec, result *types.EstimateResult) error {
	var b strings.Builder
	b.WriteString("# Build Cost Estimate\n\n")
	fmt.Fprintf(&b, "Platform `%s`, auth `%s`, quality `%s`.\n\n", spec.Platform, spec.AuthLevel, spec.Quality)
	fmt.Fprintf(&b, "**Price band:** %s - %s (midpoint %s)\n\n",
		money(result.PriceMin), money(result.PriceMax), money(result.PriceMid))
	fmt.Fprintf(&b, "**Effort:** %d-%d hours (%.1f-%.1f working days)\n\n",
		result.HoursMin, result.HoursMax, result.DaysMin, result.DaysMax)
	fmt.Fprintf(&b, "**Confidence:** %d%%\n\n", result.Confidence)

	if len(result.CostDrivers) > 0 {
		b.WriteString("## Cost Drivers\n\n| Driver | Impact | Amount |\n| --- | --- | ---: |\n")
		for _, d := range result.CostDrivers {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Name, d.Impact, signedMoney(d.Amount))
		}
		b.WriteString("\n")
	}

	if len(result.Assumptions) > 0 {
		b.WriteString("## Assumptions\n\n")
		for _, a := range result.Assumptions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// confidenceColor maps the score onto the same tiers the engine's
// consumers present: high, medium, low
func confidenceColor(confidence int) *color.Color {
	switch {
	case confidence >= 70:
		return priceColor
	case confidence >= 40:
		return warnColor
	default:
		return badColor
	}
}

// money formats a whole-dollar amount
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}

// signedMoney keeps the sign visible for savings drivers
func signedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
