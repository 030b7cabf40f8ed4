package models

import (
	"encoding/json"
	"math/rand/v2"
	"time"
)

type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

func VariantFrom(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantA, VariantB:
		return v, nil
	default:
		return "", BadParameterError
	}
}

// RandomVariant draws an unconditioned Bernoulli(0.5) assignment. Every call
// is independent: stickiness for a returning participant is the caller's
// responsibility (reuse the stored variant instead of drawing again).
func RandomVariant() Variant {
	if rand.IntN(2) == 0 {
		return VariantA
	}
	return VariantB
}

// ABTestResult is one participant's exposure to a variant. Interaction
// fields are monotone: once set they are never cleared.
type ABTestResult struct {
	Id         string
	ABTestId   string
	Variant    Variant
	LeadId     *string
	CampaignId *string
	Metadata   json.RawMessage
	CreatedAt  time.Time
	OpenedAt   *time.Time
	ClickedAt  *time.Time
	RepliedAt  *time.Time
	Converted  bool
}

type CreateABTestResultInput struct {
	ABTestId   string
	Variant    Variant
	LeadId     *string
	CampaignId *string
	Metadata   json.RawMessage
}

type InteractionKind string

const (
	InteractionOpen       InteractionKind = "open"
	InteractionClick      InteractionKind = "click"
	InteractionReply      InteractionKind = "reply"
	InteractionConversion InteractionKind = "conversion"
)

func InteractionKindFrom(s string) (InteractionKind, error) {
	switch k := InteractionKind(s); k {
	case InteractionOpen, InteractionClick, InteractionReply, InteractionConversion:
		return k, nil
	default:
		return "", ErrUnknownInteraction
	}
}
