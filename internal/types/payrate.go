// Package types provides the job posting model shared by the validator, the
// submission client, and the CLI.
package types

import (
	"encoding/json"
	"fmt"
)

// PayType identifies the compensation category of a posting.
type PayType string

// Supported pay types.
const (
	PayTypeSalary     PayType = "salary"
	PayTypeHourly     PayType = "hourly"
	PayTypeCommission PayType = "commission"
)

// ValidPayType reports whether p is one of the supported pay types.
func ValidPayType(p PayType) bool {
	switch p {
	case PayTypeSalary, PayTypeHourly, PayTypeCommission:
		return true
	}
	return false
}

// PayPeriod identifies the period a pay amount is quoted against.
type PayPeriod string

// Supported pay periods.
const (
	PerHour  PayPeriod = "per-hour"
	PerDay   PayPeriod = "per-day"
	PerWeek  PayPeriod = "per-week"
	PerMonth PayPeriod = "per-month"
	PerYear  PayPeriod = "per-year"
)

// ValidPayPeriod reports whether p is one of the supported pay periods.
func ValidPayPeriod(p PayPeriod) bool {
	switch p {
	case PerHour, PerDay, PerWeek, PerMonth, PerYear:
		return true
	}
	return false
}

// PayRateType is the discriminant of the PayRate tagged union.
type PayRateType string

// Supported pay rate variants.
const (
	PayRateRange    PayRateType = "range"
	PayRateStarting PayRateType = "starting-amount"
	PayRateMaximum  PayRateType = "maximum-amount"
	PayRateExact    PayRateType = "exact-amount"
)

// PayRate is a tagged union over the supported pay rate shapes. The Type
// discriminant determines which numeric fields are meaningful: Min/Max for
// the range variant, Amount for the others. Decoding is strict: an unknown
// discriminant or a missing variant field is rejected at the boundary, so a
// PayRate that arrived over the wire always has its variant fields populated.
type PayRate struct {
	Type   PayRateType
	Amount float64
	Min    float64
	Max    float64
	Period PayPeriod
}

// NewRangePayRate builds a range pay rate. Pass an empty period to omit it.
func NewRangePayRate(min, max float64, period PayPeriod) PayRate {
	return PayRate{Type: PayRateRange, Min: min, Max: max, Period: period}
}

// NewStartingPayRate builds a starting-amount pay rate.
func NewStartingPayRate(amount float64, period PayPeriod) PayRate {
	return PayRate{Type: PayRateStarting, Amount: amount, Period: period}
}

// NewMaximumPayRate builds a maximum-amount pay rate.
func NewMaximumPayRate(amount float64, period PayPeriod) PayRate {
	return PayRate{Type: PayRateMaximum, Amount: amount, Period: period}
}

// NewExactPayRate builds an exact-amount pay rate.
func NewExactPayRate(amount float64, period PayPeriod) PayRate {
	return PayRate{Type: PayRateExact, Amount: amount, Period: period}
}

// DiscriminantError reports a tagged-union value whose discriminant is
// missing or unknown, or whose variant fields are incomplete.
type DiscriminantError struct {
	Path    string
	Message string
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// MarshalJSON encodes only the fields belonging to the active variant.
func (r PayRate) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": r.Type}
	switch r.Type {
	case PayRateRange:
		out["min"] = r.Min
		out["max"] = r.Max
	case PayRateStarting, PayRateMaximum, PayRateExact:
		out["amount"] = r.Amount
	default:
		return nil, &DiscriminantError{Path: "payRate.type", Message: fmt.Sprintf("unknown pay rate type %q", string(r.Type))}
	}
	if r.Period != "" {
		out["period"] = r.Period
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a pay rate, rejecting unknown discriminants and
// missing variant fields.
func (r *PayRate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   *string    `json:"type"`
		Amount *float64   `json:"amount"`
		Min    *float64   `json:"min"`
		Max    *float64   `json:"max"`
		Period *PayPeriod `json:"period"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid pay rate: %w", err)
	}

	if raw.Type == nil {
		return &DiscriminantError{Path: "payRate.type", Message: "discriminant is required"}
	}

	switch PayRateType(*raw.Type) {
	case PayRateRange:
		if raw.Min == nil {
			return &DiscriminantError{Path: "payRate.min", Message: "min is required for range pay rates"}
		}
		if raw.Max == nil {
			return &DiscriminantError{Path: "payRate.max", Message: "max is required for range pay rates"}
		}
		r.Min = *raw.Min
		r.Max = *raw.Max
		r.Amount = 0
	case PayRateStarting, PayRateMaximum, PayRateExact:
		if raw.Amount == nil {
			return &DiscriminantError{Path: "payRate.amount", Message: fmt.Sprintf("amount is required for %s pay rates", *raw.Type)}
		}
		r.Amount = *raw.Amount
		r.Min = 0
		r.Max = 0
	default:
		return &DiscriminantError{Path: "payRate.type", Message: fmt.Sprintf("unknown pay rate type %q", *raw.Type)}
	}

	r.Type = PayRateType(*raw.Type)
	if raw.Period != nil {
		if !ValidPayPeriod(*raw.Period) {
			return &DiscriminantError{Path: "payRate.period", Message: fmt.Sprintf("unknown pay period %q", string(*raw.Period))}
		}
		r.Period = *raw.Period
	} else {
		r.Period = ""
	}
	return nil
}
