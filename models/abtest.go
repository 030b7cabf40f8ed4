package models

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

type ABTest struct {
	Id               string
	OrganizationId   string
	CreatedBy        string
	Name             string
	Description      string
	Type             ABTestType
	VariantA         json.RawMessage
	VariantB         json.RawMessage
	Status           ABTestStatus
	CreatedAt        time.Time
	StartDate        *time.Time
	EndDate          *time.Time
	ParticipantCount int
	Winner           *Variant
	Confidence       *float64
}

type ABTestStatus string

const (
	ABTestDraft     ABTestStatus = "draft"
	ABTestRunning   ABTestStatus = "running"
	ABTestPaused    ABTestStatus = "paused"
	ABTestCompleted ABTestStatus = "completed"
)

// CanTransition implements the experiment lifecycle:
// draft -> running <-> paused, running|paused -> completed.
// Completed is terminal.
func (s ABTestStatus) CanTransition(newStatus ABTestStatus) bool {
	switch s {
	case ABTestDraft:
		return newStatus == ABTestRunning
	case ABTestRunning:
		return slices.Contains([]ABTestStatus{ABTestPaused, ABTestCompleted}, newStatus)
	case ABTestPaused:
		return slices.Contains([]ABTestStatus{ABTestRunning, ABTestCompleted}, newStatus)
	case ABTestCompleted:
		return false
	default:
		return false
	}
}

type ABTestType string

const (
	ABTestEmailSubject ABTestType = "email_subject"
	ABTestEmailContent ABTestType = "email_content"
	ABTestEmailTiming  ABTestType = "email_timing"
	ABTestSmsContent   ABTestType = "sms_content"
	ABTestLandingPage  ABTestType = "landing_page"
)

var ValidABTestTypes = []ABTestType{
	ABTestEmailSubject,
	ABTestEmailContent,
	ABTestEmailTiming,
	ABTestSmsContent,
	ABTestLandingPage,
}

func ABTestTypeFrom(s string) (ABTestType, error) {
	t := ABTestType(s)
	if !slices.Contains(ValidABTestTypes, t) {
		return "", ErrUnknownABTestType
	}
	return t, nil
}

type CreateABTestInput struct {
	OrganizationId string
	CreatedBy      string
	Name           string
	Description    string
	Type           ABTestType
	VariantA       json.RawMessage
	VariantB       json.RawMessage
}

func (input CreateABTestInput) Validate() error {
	if input.Name == "" {
		return errors.Wrap(BadParameterError, "name is required")
	}
	if input.OrganizationId == "" {
		return errors.Wrap(BadParameterError, "organization id is required")
	}
	if input.CreatedBy == "" {
		return errors.Wrap(BadParameterError, "creator id is required")
	}
	if len(input.VariantA) == 0 || len(input.VariantB) == 0 {
		return errors.Wrap(BadParameterError, "both variant payloads are required")
	}
	if !slices.Contains(ValidABTestTypes, input.Type) {
		return ErrUnknownABTestType
	}
	return nil
}

// ABTestStatusUpdate is a guarded lifecycle transition: the update only
// applies if the current status is one of ExpectedFrom.
type ABTestStatusUpdate struct {
	Id           string
	ExpectedFrom []ABTestStatus
	NewStatus    ABTestStatus
	StartDate    *time.Time
	EndDate      *time.Time
	Winner       *Variant
	Confidence   *float64
}

type ListABTestsFilters struct {
	OrganizationId string
	Status         *ABTestStatus
}
