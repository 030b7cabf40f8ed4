package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helixcrm/helix-backend/pure_utils"
)

func TestComputeVariantMetrics_emptyPartition(t *testing.T) {
	metrics := ComputeVariantMetrics(VariantB, nil)

	assert.Equal(t, VariantB, metrics.Variant)
	assert.Equal(t, 0, metrics.ParticipantCount)
	assert.Equal(t, float64(0), metrics.OpenRate)
	assert.Equal(t, float64(0), metrics.ClickRate)
	assert.Equal(t, float64(0), metrics.ReplyRate)
	assert.Equal(t, float64(0), metrics.ConversionRate)
}

func TestComputeVariantMetrics_rates(t *testing.T) {
	now := time.Now()

	results := []ABTestResult{
		{Variant: VariantA, OpenedAt: &now, ClickedAt: &now, RepliedAt: &now, Converted: true},
		{Variant: VariantA, OpenedAt: &now, ClickedAt: &now, Converted: true},
		{Variant: VariantA, OpenedAt: &now},
		{Variant: VariantA},
	}

	metrics := ComputeVariantMetrics(VariantA, results)

	assert.Equal(t, 4, metrics.ParticipantCount)
	assert.Equal(t, float64(75), metrics.OpenRate)
	assert.Equal(t, float64(50), metrics.ClickRate)
	assert.Equal(t, float64(25), metrics.ReplyRate)
	assert.Equal(t, float64(50), metrics.ConversionRate)
}

func TestComputeVariantMetrics_duplicateRecordingCountsOnce(t *testing.T) {
	// a participant whose open callback was delivered twice still has a
	// single opened_at timestamp: the rate counts them exactly once
	openedAt := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)

	results := []ABTestResult{
		{Variant: VariantA, OpenedAt: pure_utils.Ptr(openedAt), Converted: true},
		{Variant: VariantA},
	}

	metrics := ComputeVariantMetrics(VariantA, results)

	assert.Equal(t, 2, metrics.ParticipantCount)
	assert.Equal(t, float64(50), metrics.OpenRate)
	assert.Equal(t, float64(50), metrics.ConversionRate)
}
