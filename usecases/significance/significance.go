// Package significance decides A/B test winners with a two-proportion
// z-test on conversion rates.
package significance

import (
	"math"

	"github.com/helixcrm/helix-backend/models"
)

// MinSampleSize is the per-variant participant count under which the test
// is declared inconclusive by policy rather than computed.
const MinSampleSize = 30

type Input struct {
	ParticipantsA   int
	ConversionRateA float64 // percentage, 0-100
	ParticipantsB   int
	ConversionRateB float64
}

func inconclusive() models.SignificanceVerdict {
	return models.SignificanceVerdict{
		IsSignificant: false,
		Confidence:    0,
		Winner:        nil,
		PValue:        1,
	}
}

// Compute runs the two-tailed two-proportion z-test. Conversion counts are
// reconstructed by rounding rate*n: this can bias outcomes near the
// significance boundary, but is kept on purpose to preserve historical
// verdicts.
func Compute(input Input) models.SignificanceVerdict {
	if input.ParticipantsA < MinSampleSize || input.ParticipantsB < MinSampleSize {
		return inconclusive()
	}

	convA := input.ConversionRateA / 100
	convB := input.ConversionRateB / 100
	nA := float64(input.ParticipantsA)
	nB := float64(input.ParticipantsB)

	conversionsA := math.Round(convA * nA)
	conversionsB := math.Round(convB * nB)
	pooledProb := (conversionsA + conversionsB) / (nA + nB)

	standardError := math.Sqrt(pooledProb * (1 - pooledProb) * (1/nA + 1/nB))
	if standardError == 0 {
		// both rates identical and extreme (all converted or none did)
		return inconclusive()
	}

	zScore := math.Abs(convA-convB) / standardError
	pValue := 2 * (1 - normalCDF(zScore))

	isSignificant := pValue < 0.05
	confidence := math.Round((1-pValue)*100*10) / 10

	var winner *models.Variant
	if isSignificant {
		winner = new(models.Variant)
		if convA > convB {
			*winner = models.VariantA
		} else {
			*winner = models.VariantB
		}
	}

	return models.SignificanceVerdict{
		IsSignificant: isSignificant,
		Confidence:    confidence,
		Winner:        winner,
		PValue:        pValue,
	}
}

// normalCDF is the standard normal cumulative distribution, via the
// Zelen & Severo rational polynomial approximation (Abramowitz & Stegun
// 26.2.17, accurate to ~1e-7).
func normalCDF(x float64) float64 {
	t := 1 / (1 + 0.2316419*math.Abs(x))
	d := 0.3989423 * math.Exp(-x*x/2)
	prob := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))
	if x > 0 {
		return 1 - prob
	}
	return prob
}
