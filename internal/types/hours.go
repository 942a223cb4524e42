package types

import (
	"encoding/json"
	"fmt"
)

// HoursType is the discriminant of the HoursPerWeek tagged union.
type HoursType string

// Supported weekly-hours variants.
const (
	HoursFixed   HoursType = "fixed-hours"
	HoursRange   HoursType = "range"
	HoursMinimum HoursType = "minimum"
	HoursMaximum HoursType = "maximum"
)

// HoursPerWeek is a tagged union over the supported weekly-hours shapes.
// Amount carries the value for the fixed-hours, minimum, and maximum
// variants; Min/Max carry the bounds for the range variant. All values are
// hours per week and must fall in [1, 168].
type HoursPerWeek struct {
	Type   HoursType
	Amount float64
	Min    float64
	Max    float64
}

// NewFixedHours builds a fixed-hours value.
func NewFixedHours(hours float64) HoursPerWeek {
	return HoursPerWeek{Type: HoursFixed, Amount: hours}
}

// NewHoursRange builds a range of weekly hours.
func NewHoursRange(min, max float64) HoursPerWeek {
	return HoursPerWeek{Type: HoursRange, Min: min, Max: max}
}

// NewMinimumHours builds a minimum weekly-hours value.
func NewMinimumHours(hours float64) HoursPerWeek {
	return HoursPerWeek{Type: HoursMinimum, Amount: hours}
}

// NewMaximumHours builds a maximum weekly-hours value.
func NewMaximumHours(hours float64) HoursPerWeek {
	return HoursPerWeek{Type: HoursMaximum, Amount: hours}
}

// MarshalJSON encodes only the fields belonging to the active variant.
func (h HoursPerWeek) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": h.Type}
	switch h.Type {
	case HoursRange:
		out["min"] = h.Min
		out["max"] = h.Max
	case HoursFixed, HoursMinimum, HoursMaximum:
		out["amount"] = h.Amount
	default:
		return nil, &DiscriminantError{Path: "hoursPerWeek.type", Message: fmt.Sprintf("unknown hours type %q", string(h.Type))}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a weekly-hours value, rejecting unknown discriminants
// and missing variant fields.
func (h *HoursPerWeek) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   *string  `json:"type"`
		Amount *float64 `json:"amount"`
		Min    *float64 `json:"min"`
		Max    *float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid hours per week: %w", err)
	}

	if raw.Type == nil {
		return &DiscriminantError{Path: "hoursPerWeek.type", Message: "discriminant is required"}
	}

	switch HoursType(*raw.Type) {
	case HoursRange:
		if raw.Min == nil {
			return &DiscriminantError{Path: "hoursPerWeek.min", Message: "min is required for range hours"}
		}
		if raw.Max == nil {
			return &DiscriminantError{Path: "hoursPerWeek.max", Message: "max is required for range hours"}
		}
		h.Min = *raw.Min
		h.Max = *raw.Max
		h.Amount = 0
	case HoursFixed, HoursMinimum, HoursMaximum:
		if raw.Amount == nil {
			return &DiscriminantError{Path: "hoursPerWeek.amount", Message: fmt.Sprintf("amount is required for %s hours", *raw.Type)}
		}
		h.Amount = *raw.Amount
		h.Min = 0
		h.Max = 0
	default:
		return &DiscriminantError{Path: "hoursPerWeek.type", Message: fmt.Sprintf("unknown hours type %q", *raw.Type)}
	}

	h.Type = HoursType(*raw.Type)
	return nil
}
