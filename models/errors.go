package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// A/B test related errors
var (
	ErrUnknownABTestType = errors.Wrap(BadParameterError, "unknown a/b test type")

	// ErrABTestStatusTransition is returned when a lifecycle operation is
	// attempted from a status that does not allow it, including when a
	// concurrent caller won the same transition first.
	ErrABTestStatusTransition = errors.Wrap(ConflictError, "a/b test status does not allow this transition")

	// ErrABTestHasParticipants is returned when deleting a test that left the
	// draft status: collected results must be archived, not discarded.
	ErrABTestHasParticipants = errors.Wrap(ForbiddenError, "only draft a/b tests can be deleted")

	ErrUnknownInteraction = errors.Wrap(BadParameterError, "unknown interaction kind")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
