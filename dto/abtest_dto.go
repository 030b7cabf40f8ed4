package dto

import (
	"encoding/json"
	"time"

	"github.com/helixcrm/helix-backend/models"
)

type ABTest struct {
	Id               string          `json:"id"`
	OrganizationId   string          `json:"organization_id"`
	CreatedBy        string          `json:"created_by"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Type             string          `json:"type"`
	VariantA         json.RawMessage `json:"variant_a"`
	VariantB         json.RawMessage `json:"variant_b"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	StartDate        *time.Time      `json:"start_date"`
	EndDate          *time.Time      `json:"end_date"`
	ParticipantCount int             `json:"participant_count"`
	Winner           *string         `json:"winner"`
	Confidence       *float64        `json:"confidence"`
}

func AdaptABTestDto(abTest models.ABTest) ABTest {
	dto := ABTest{
		Id:               abTest.Id,
		OrganizationId:   abTest.OrganizationId,
		CreatedBy:        abTest.CreatedBy,
		Name:             abTest.Name,
		Description:      abTest.Description,
		Type:             string(abTest.Type),
		VariantA:         abTest.VariantA,
		VariantB:         abTest.VariantB,
		Status:           string(abTest.Status),
		CreatedAt:        abTest.CreatedAt,
		StartDate:        abTest.StartDate,
		EndDate:          abTest.EndDate,
		ParticipantCount: abTest.ParticipantCount,
		Confidence:       abTest.Confidence,
	}
	if abTest.Winner != nil {
		winner := string(*abTest.Winner)
		dto.Winner = &winner
	}
	return dto
}

type CreateABTestBody struct {
	OrganizationId string          `json:"organization_id" binding:"required,uuid"`
	CreatedBy      string          `json:"created_by" binding:"required,uuid"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Type           string          `json:"type" binding:"required"`
	VariantA       json.RawMessage `json:"variant_a" binding:"required"`
	VariantB       json.RawMessage `json:"variant_b" binding:"required"`
}

type ABTestResult struct {
	Id         string          `json:"id"`
	ABTestId   string          `json:"ab_test_id"`
	Variant    string          `json:"variant"`
	LeadId     *string         `json:"lead_id"`
	CampaignId *string         `json:"campaign_id"`
	Metadata   json.RawMessage `json:"metadata"`
	CreatedAt  time.Time       `json:"created_at"`
	OpenedAt   *time.Time      `json:"opened_at"`
	ClickedAt  *time.Time      `json:"clicked_at"`
	RepliedAt  *time.Time      `json:"replied_at"`
	Converted  bool            `json:"converted"`
}

func AdaptABTestResultDto(result models.ABTestResult) ABTestResult {
	return ABTestResult{
		Id:         result.Id,
		ABTestId:   result.ABTestId,
		Variant:    string(result.Variant),
		LeadId:     result.LeadId,
		CampaignId: result.CampaignId,
		Metadata:   result.Metadata,
		CreatedAt:  result.CreatedAt,
		OpenedAt:   result.OpenedAt,
		ClickedAt:  result.ClickedAt,
		RepliedAt:  result.RepliedAt,
		Converted:  result.Converted,
	}
}

type RecordAssignmentBody struct {
	Variant    string          `json:"variant" binding:"omitempty,oneof=A B"`
	LeadId     *string         `json:"lead_id" binding:"omitempty,uuid"`
	CampaignId *string         `json:"campaign_id" binding:"omitempty,uuid"`
	Metadata   json.RawMessage `json:"metadata"`
}

type RecordInteractionBody struct {
	Kind string `json:"kind" binding:"required"`
}

type VariantMetrics struct {
	Variant          string  `json:"variant"`
	ParticipantCount int     `json:"participant_count"`
	OpenRate         float64 `json:"open_rate"`
	ClickRate        float64 `json:"click_rate"`
	ReplyRate        float64 `json:"reply_rate"`
	ConversionRate   float64 `json:"conversion_rate"`
}

func AdaptVariantMetricsDto(metrics models.VariantMetrics) VariantMetrics {
	return VariantMetrics{
		Variant:          string(metrics.Variant),
		ParticipantCount: metrics.ParticipantCount,
		OpenRate:         metrics.OpenRate,
		ClickRate:        metrics.ClickRate,
		ReplyRate:        metrics.ReplyRate,
		ConversionRate:   metrics.ConversionRate,
	}
}

type ABTestMetrics struct {
	VariantA VariantMetrics `json:"variant_a"`
	VariantB VariantMetrics `json:"variant_b"`
}

func AdaptABTestMetricsDto(metrics models.ABTestMetrics) ABTestMetrics {
	return ABTestMetrics{
		VariantA: AdaptVariantMetricsDto(metrics.VariantA),
		VariantB: AdaptVariantMetricsDto(metrics.VariantB),
	}
}

type ABTestAnalysis struct {
	ABTestId          string         `json:"ab_test_id"`
	Status            string         `json:"status"`
	TotalParticipants int            `json:"total_participants"`
	VariantA          VariantMetrics `json:"variant_a"`
	VariantB          VariantMetrics `json:"variant_b"`
	IsSignificant     bool           `json:"is_significant"`
	Confidence        float64        `json:"confidence"`
	Winner            *string        `json:"winner"`
	PValue            float64        `json:"p_value"`
	Improvement       *float64       `json:"improvement"`
	DurationDays      *int           `json:"duration_days"`
}

func AdaptABTestAnalysisDto(analysis models.ABTestAnalysis) ABTestAnalysis {
	dto := ABTestAnalysis{
		ABTestId:          analysis.ABTestId,
		Status:            string(analysis.Status),
		TotalParticipants: analysis.TotalParticipants,
		VariantA:          AdaptVariantMetricsDto(analysis.VariantA),
		VariantB:          AdaptVariantMetricsDto(analysis.VariantB),
		IsSignificant:     analysis.Verdict.IsSignificant,
		Confidence:        analysis.Verdict.Confidence,
		PValue:            analysis.Verdict.PValue,
		Improvement:       analysis.Improvement,
		DurationDays:      analysis.DurationDays,
	}
	if analysis.Verdict.Winner != nil {
		winner := string(*analysis.Verdict.Winner)
		dto.Winner = &winner
	}
	return dto
}
