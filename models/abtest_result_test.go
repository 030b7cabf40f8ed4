package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomVariantConvergesToEvenSplit(t *testing.T) {
	const draws = 100_000

	countA := 0
	for range draws {
		if RandomVariant() == VariantA {
			countA++
		}
	}

	// ~15 standard deviations around the 50% mean
	assert.InDelta(t, draws/2, countA, 2500)
}

func TestInteractionKindFrom(t *testing.T) {
	for _, kind := range []string{"open", "click", "reply", "conversion"} {
		parsed, err := InteractionKindFrom(kind)
		assert.NoError(t, err)
		assert.Equal(t, InteractionKind(kind), parsed)
	}

	_, err := InteractionKindFrom("unsubscribe")
	assert.ErrorIs(t, err, ErrUnknownInteraction)
}

func TestVariantFrom(t *testing.T) {
	variant, err := VariantFrom("A")
	assert.NoError(t, err)
	assert.Equal(t, VariantA, variant)

	_, err = VariantFrom("C")
	assert.ErrorIs(t, err, BadParameterError)
}
