package significance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixcrm/helix-backend/models"
)

func TestCompute_belowSampleSizeGate(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "both variants below the gate",
			input: Input{ParticipantsA: 10, ConversionRateA: 100, ParticipantsB: 10, ConversionRateB: 0},
		},
		{
			name:  "one variant below the gate",
			input: Input{ParticipantsA: 500, ConversionRateA: 80, ParticipantsB: 29, ConversionRateB: 0},
		},
		{
			name:  "no participants at all",
			input: Input{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Compute(tt.input)

			assert.False(t, verdict.IsSignificant)
			assert.Equal(t, float64(0), verdict.Confidence)
			assert.Nil(t, verdict.Winner)
			assert.Equal(t, float64(1), verdict.PValue)
		})
	}
}

func TestCompute_clearlySeparatedProportions(t *testing.T) {
	// 20/40 conversions vs 5/40: z is around 3.6, far past the 0.05 threshold
	verdict := Compute(Input{
		ParticipantsA:   40,
		ConversionRateA: 50,
		ParticipantsB:   40,
		ConversionRateB: 12.5,
	})

	assert.True(t, verdict.IsSignificant)
	if assert.NotNil(t, verdict.Winner) {
		assert.Equal(t, models.VariantA, *verdict.Winner)
	}
	assert.Less(t, verdict.PValue, 0.05)
	assert.Greater(t, verdict.Confidence, 99.0)
}

func TestCompute_winnerIsTheHigherRate(t *testing.T) {
	verdict := Compute(Input{
		ParticipantsA:   40,
		ConversionRateA: 12.5,
		ParticipantsB:   40,
		ConversionRateB: 50,
	})

	assert.True(t, verdict.IsSignificant)
	if assert.NotNil(t, verdict.Winner) {
		assert.Equal(t, models.VariantB, *verdict.Winner)
	}
}

func TestCompute_identicalRates(t *testing.T) {
	verdict := Compute(Input{
		ParticipantsA:   1000,
		ConversionRateA: 20,
		ParticipantsB:   1000,
		ConversionRateB: 20,
	})

	assert.False(t, verdict.IsSignificant)
	assert.Nil(t, verdict.Winner)
	assert.InDelta(t, 1.0, verdict.PValue, 1e-3)
}

func TestCompute_zeroStandardError(t *testing.T) {
	// both variants at 0% leave nothing to divide by
	verdict := Compute(Input{
		ParticipantsA:   50,
		ConversionRateA: 0,
		ParticipantsB:   50,
		ConversionRateB: 0,
	})

	assert.False(t, verdict.IsSignificant)
	assert.Nil(t, verdict.Winner)
	assert.Equal(t, float64(1), verdict.PValue)

	// same at 100%
	verdict = Compute(Input{
		ParticipantsA:   50,
		ConversionRateA: 100,
		ParticipantsB:   50,
		ConversionRateB: 100,
	})

	assert.False(t, verdict.IsSignificant)
	assert.Nil(t, verdict.Winner)
}

func TestCompute_confidenceIsRoundedToOneDecimal(t *testing.T) {
	verdict := Compute(Input{
		ParticipantsA:   100,
		ConversionRateA: 30,
		ParticipantsB:   100,
		ConversionRateB: 20,
	})

	assert.Equal(t, verdict.Confidence, math.Round(verdict.Confidence*10)/10)
}

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		x        float64
		expected float64
	}{
		{x: 0, expected: 0.5},
		{x: 1.96, expected: 0.9750021},
		{x: -1.96, expected: 0.0249979},
		{x: 2.58, expected: 0.9950600},
		{x: 1, expected: 0.8413447},
		{x: -1, expected: 0.1586553},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, normalCDF(tt.x), 1e-6, "normalCDF(%v)", tt.x)
	}
}
