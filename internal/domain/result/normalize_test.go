package result

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Valid(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		maxScore float64
		want     float64
	}{
		{"fraction", "45/50", 100, 90.0},
		{"fraction ignores max", "45/50", 0, 90.0},
		{"fraction with spaces", " 17 / 20 ", 100, 85.0},
		{"fraction rounds", "2/3", 100, 66.7},
		{"fraction above total kept", "55/50", 100, 110.0},
		{"plain", "78", 100, 78.0},
		{"plain decimal", "78.26", 100, 78.3},
		{"plain other max", "36", 40, 90.0},
		{"plain rounds down", "1", 3, 33.3},
		{"plain bonus kept", "105", 100, 105.0},
		{"zero", "0", 100, 0},
		{"zero obtained fraction", "0/20", 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, tt.maxScore)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		maxScore float64
	}{
		{"empty", "", 100},
		{"blank", "   ", 100},
		{"zero total", "45/0", 100},
		{"non numeric", "abc", 100},
		{"non numeric fraction", "a/50", 100},
		{"missing total", "45/", 100},
		{"two separators", "1/2/3", 100},
		{"negative plain", "-5", 100},
		{"negative fraction", "-5/10", 100},
		{"zero max", "78", 0},
		{"negative max", "78", -100},
		{"nan", "NaN", 100},
		{"inf", "Inf", 100},
		{"nan max", "78", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw, tt.maxScore)
			assert.ErrorIs(t, err, ErrScoreInvalid)
		})
	}
}

func TestNormalize_MatchesRoundedFormula(t *testing.T) {
	for a := 0.0; a <= 60; a += 7 {
		for _, b := range []float64{1, 3, 7, 50, 60} {
			got, err := Normalize(formatFloat(a)+"/"+formatFloat(b), 100)
			require.NoError(t, err)
			assert.Equal(t, math.Round(a/b*100*10)/10, got)

			got, err = Normalize(formatFloat(a), b)
			require.NoError(t, err)
			assert.Equal(t, math.Round(a/b*100*10)/10, got)
		}
	}
}
