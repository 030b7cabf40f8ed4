package models

// VariantMetrics are computed on demand from the stored results of one
// variant. Rates are full-precision percentages; rounding is left to the
// presentation layer.
type VariantMetrics struct {
	Variant          Variant
	ParticipantCount int
	OpenRate         float64
	ClickRate        float64
	ReplyRate        float64
	ConversionRate   float64
}

// ComputeVariantMetrics reduces a result partition into rates. An empty
// partition reports zero rates under the given canonical label.
func ComputeVariantMetrics(variant Variant, results []ABTestResult) VariantMetrics {
	total := len(results)
	if total == 0 {
		return VariantMetrics{Variant: variant}
	}

	var opens, clicks, replies, conversions int
	for _, result := range results {
		if result.OpenedAt != nil {
			opens++
		}
		if result.ClickedAt != nil {
			clicks++
		}
		if result.RepliedAt != nil {
			replies++
		}
		if result.Converted {
			conversions++
		}
	}

	return VariantMetrics{
		Variant:          variant,
		ParticipantCount: total,
		OpenRate:         float64(opens) / float64(total) * 100,
		ClickRate:        float64(clicks) / float64(total) * 100,
		ReplyRate:        float64(replies) / float64(total) * 100,
		ConversionRate:   float64(conversions) / float64(total) * 100,
	}
}

type ABTestMetrics struct {
	VariantA VariantMetrics
	VariantB VariantMetrics
}

type SignificanceVerdict struct {
	IsSignificant bool
	Confidence    float64
	Winner        *Variant
	PValue        float64
}

// ABTestAnalysis is the full analysis payload: the verdict plus the metrics
// it was derived from, the improvement of the winner over the loser and the
// test duration in days.
type ABTestAnalysis struct {
	ABTestId          string
	Status            ABTestStatus
	TotalParticipants int
	VariantA          VariantMetrics
	VariantB          VariantMetrics
	Verdict           SignificanceVerdict
	Improvement       *float64
	DurationDays      *int
}
