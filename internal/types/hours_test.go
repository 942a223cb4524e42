package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursPerWeek_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected HoursPerWeek
	}{
		{"fixed hours", `{"type":"fixed-hours","amount":40}`, NewFixedHours(40)},
		{"range", `{"type":"range","min":20,"max":30}`, NewHoursRange(20, 30)},
		{"minimum", `{"type":"minimum","amount":10}`, NewMinimumHours(10)},
		{"maximum", `{"type":"maximum","amount":25}`, NewMaximumHours(25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hours HoursPerWeek
			err := json.Unmarshal([]byte(tt.input), &hours)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hours)
		})
	}
}

func TestHoursPerWeek_UnmarshalRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
	}{
		{"unknown type", `{"type":"flexible","amount":40}`, "hoursPerWeek.type"},
		{"missing type", `{"amount":40}`, "hoursPerWeek.type"},
		{"range missing min", `{"type":"range","max":30}`, "hoursPerWeek.min"},
		{"fixed missing amount", `{"type":"fixed-hours"}`, "hoursPerWeek.amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hours HoursPerWeek
			err := json.Unmarshal([]byte(tt.input), &hours)

			var discErr *DiscriminantError
			require.ErrorAs(t, err, &discErr)
			assert.Equal(t, tt.path, discErr.Path)
		})
	}
}

func TestHoursPerWeek_MarshalRoundTrip(t *testing.T) {
	original := NewHoursRange(15, 37.5)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded HoursPerWeek
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
