// Package ratecard loads and validates billing rate cards.
//
// The engine itself assumes a valid rate card; validation here is the
// caller-side gate the engine's contract requires.
package ratecard

import (
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// rateCardFile is the YAML schema for a rate card
type rateCardFile struct {
	HourlyRate   string  `yaml:"hourly_rate"`
	TokenRateIn  string  `yaml:"token_rate_in"`
	TokenRateOut string  `yaml:"token_rate_out"`
	Markup       float64 `yaml:"markup"`
}

// Default returns the built-in rate card used when no file is supplied
func Default() types.RateCard {
	return types.RateCard{
		HourlyRate:   decimal.NewFromInt(150),
		TokenRateIn:  decimal.NewFromFloat(0.000003),
		TokenRateOut: decimal.NewFromFloat(0.000015),
		Markup:       0.2,
	}
}

// LoadFile reads and validates a rate card from a YAML file.
//
// Example:
//
//	hourly_rate: "150"
//	token_rate_in: "0.000003"
//	token_rate_out: "0.000015"
//	markup: 0.2
func LoadFile(path string) (types.RateCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RateCard{}, errors.Wrapf(errors.TypeRateCard, err, "failed to read rate card %s", path)
	}
	return Load(data)
}

// Load parses and validates a rate card from YAML source
func Load(data []byte) (types.RateCard, error) {
	var raw rateCardFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return types.RateCard{}, errors.Parsing("failed to parse rate card", err)
	}

	hourly, err := parseRate(raw.HourlyRate, "hourly_rate")
	if err != nil {
		return types.RateCard{}, err
	}
	tokenIn, err := parseRate(raw.TokenRateIn, "token_rate_in")
	if err != nil {
		return types.RateCard{}, err
	}
	tokenOut, err := parseRate(raw.TokenRateOut, "token_rate_out")
	if err != nil {
		return types.RateCard{}, err
	}

	rc := types.RateCard{
		HourlyRate:   hourly,
		TokenRateIn:  tokenIn,
		TokenRateOut: tokenOut,
		Markup:       raw.Markup,
	}
	if err := Validate(rc); err != nil {
		return types.RateCard{}, err
	}
	return rc, nil
}

// parseRate parses a decimal rate field, treating absence as zero
func parseRate(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Newf(errors.TypeRateCard, "invalid %s: %q", field, s)
	}
	return d, nil
}

// Validate checks the rate card invariants: a positive hourly rate,
// nonnegative token rates, and a nonnegative markup
func Validate(rc types.RateCard) error {
	if !rc.HourlyRate.IsPositive() {
		return errors.RateCard("hourly rate must be positive")
	}
	if rc.TokenRateIn.IsNegative() {
		return errors.RateCard("input token rate must not be negative")
	}
	if rc.TokenRateOut.IsNegative() {
		return errors.RateCard("output token rate must not be negative")
	}
	if rc.Markup < 0 {
		return errors.RateCard("markup must not be negative")
	}
	return nil
}
