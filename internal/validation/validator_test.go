package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	Month      string  `query:"month" validate:"omitempty,year_month"`
	Frequency  string  `query:"frequency" validate:"omitempty,frequency"`
	ZThreshold float64 `json:"zThreshold" validate:"omitempty,z_threshold,lte=10"`
	Limit      int     `query:"limit" validate:"required,gte=1,lte=100"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		query   sampleQuery
		invalid string
	}{
		{"valid", sampleQuery{Month: "2024-03", Frequency: "quarterly", ZThreshold: 2.5, Limit: 10}, ""},
		{"empty optionals", sampleQuery{Limit: 1}, ""},
		{"uppercase frequency", sampleQuery{Frequency: "ANNUAL", Limit: 1}, ""},
		{"month with day", sampleQuery{Month: "2024-03-01", Limit: 1}, "month"},
		{"month out of range", sampleQuery{Month: "2024-13", Limit: 1}, "month"},
		{"unknown frequency", sampleQuery{Frequency: "weekly", Limit: 1}, "frequency"},
		{"negative threshold", sampleQuery{ZThreshold: -1, Limit: 1}, "zThreshold"},
		{"infinite threshold", sampleQuery{ZThreshold: math.Inf(1), Limit: 1}, "zThreshold"},
		{"threshold above ten", sampleQuery{ZThreshold: 11, Limit: 1}, "zThreshold"},
		{"missing limit", sampleQuery{}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.query)
			if tt.invalid == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, FieldErrors(err), tt.invalid)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	err := NewValidator().Struct(sampleQuery{Month: "March", Limit: 500})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must use the YYYY-MM format", fields["month"])
	assert.Equal(t, "must be at most 100", fields["limit"])

	assert.Empty(t, FieldErrors(nil))
	assert.Equal(t, map[string]string{"request": "boom"}, FieldErrors(errors.New("boom")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
