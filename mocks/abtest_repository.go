package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories"
)

type ABTestRepository struct {
	mock.Mock
}

func (r *ABTestRepository) GetABTestById(ctx context.Context, exec repositories.Executor, id string) (models.ABTest, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.ABTest), args.Error(1)
}

func (r *ABTestRepository) ListABTests(ctx context.Context, exec repositories.Executor,
	filters models.ListABTestsFilters,
) ([]models.ABTest, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.ABTest), args.Error(1)
}

func (r *ABTestRepository) CreateABTest(ctx context.Context, exec repositories.Executor,
	input models.CreateABTestInput, newABTestId string,
) error {
	args := r.Called(ctx, exec, input, newABTestId)
	return args.Error(0)
}

func (r *ABTestRepository) UpdateABTestStatus(ctx context.Context, exec repositories.Executor,
	update models.ABTestStatusUpdate,
) (bool, error) {
	args := r.Called(ctx, exec, update)
	return args.Bool(0), args.Error(1)
}

func (r *ABTestRepository) IncrementABTestParticipantCount(ctx context.Context, exec repositories.Executor, id string) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *ABTestRepository) DeleteABTest(ctx context.Context, exec repositories.Executor, id string) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}
