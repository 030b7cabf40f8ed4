package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories"
)

type ABTestResultRepository struct {
	mock.Mock
}

func (r *ABTestResultRepository) GetABTestResultById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.ABTestResult, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.ABTestResult), args.Error(1)
}

func (r *ABTestResultRepository) ListABTestResults(ctx context.Context, exec repositories.Executor,
	abTestId string,
) ([]models.ABTestResult, error) {
	args := r.Called(ctx, exec, abTestId)
	return args.Get(0).([]models.ABTestResult), args.Error(1)
}

func (r *ABTestResultRepository) CreateABTestResult(ctx context.Context, exec repositories.Executor,
	input models.CreateABTestResultInput, newResultId string,
) error {
	args := r.Called(ctx, exec, input, newResultId)
	return args.Error(0)
}

func (r *ABTestResultRepository) RecordInteraction(ctx context.Context, exec repositories.Executor,
	resultId string, kind models.InteractionKind,
) (models.ABTestResult, error) {
	args := r.Called(ctx, exec, resultId, kind)
	return args.Get(0).(models.ABTestResult), args.Error(1)
}
