package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestABTestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from    ABTestStatus
		to      ABTestStatus
		allowed bool
	}{
		{ABTestDraft, ABTestRunning, true},
		{ABTestDraft, ABTestPaused, false},
		{ABTestDraft, ABTestCompleted, false},
		{ABTestRunning, ABTestPaused, true},
		{ABTestRunning, ABTestCompleted, true},
		{ABTestRunning, ABTestDraft, false},
		{ABTestPaused, ABTestRunning, true},
		{ABTestPaused, ABTestCompleted, true},
		{ABTestPaused, ABTestDraft, false},
		{ABTestCompleted, ABTestRunning, false},
		{ABTestCompleted, ABTestPaused, false},
		{ABTestCompleted, ABTestDraft, false},
		{ABTestStatus("bogus"), ABTestRunning, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func validCreateInput() CreateABTestInput {
	return CreateABTestInput{
		OrganizationId: "0eb5f03c-a3a4-4f3c-becb-f0e8a78d4f4e",
		CreatedBy:      "25ab6323-1657-4a52-923a-ef6983fe4532",
		Name:           "subject line test",
		Type:           ABTestEmailSubject,
		VariantA:       json.RawMessage(`{"subject":"Hi"}`),
		VariantB:       json.RawMessage(`{"subject":"Hello"}`),
	}
}

func TestCreateABTestInputValidate(t *testing.T) {
	assert.NoError(t, validCreateInput().Validate())

	noName := validCreateInput()
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), BadParameterError)

	noOrg := validCreateInput()
	noOrg.OrganizationId = ""
	assert.ErrorIs(t, noOrg.Validate(), BadParameterError)

	noCreator := validCreateInput()
	noCreator.CreatedBy = ""
	assert.ErrorIs(t, noCreator.Validate(), BadParameterError)

	noVariant := validCreateInput()
	noVariant.VariantB = nil
	assert.ErrorIs(t, noVariant.Validate(), BadParameterError)

	badType := validCreateInput()
	badType.Type = ABTestType("multivariate")
	assert.ErrorIs(t, badType.Validate(), ErrUnknownABTestType)
}

func TestABTestTypeFrom(t *testing.T) {
	abTestType, err := ABTestTypeFrom("email_subject")
	assert.NoError(t, err)
	assert.Equal(t, ABTestEmailSubject, abTestType)

	_, err = ABTestTypeFrom("something_else")
	assert.ErrorIs(t, err, ErrUnknownABTestType)
}
