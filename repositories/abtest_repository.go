package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories/dbmodels"
)

type ABTestRepository interface {
	GetABTestById(ctx context.Context, exec Executor, id string) (models.ABTest, error)
	ListABTests(ctx context.Context, exec Executor, filters models.ListABTestsFilters) ([]models.ABTest, error)
	CreateABTest(ctx context.Context, exec Executor, input models.CreateABTestInput, newABTestId string) error
	UpdateABTestStatus(ctx context.Context, exec Executor, update models.ABTestStatusUpdate) (bool, error)
	IncrementABTestParticipantCount(ctx context.Context, exec Executor, id string) error
	DeleteABTest(ctx context.Context, exec Executor, id string) error
}

type ABTestRepositoryPostgresql struct{}

func (repo ABTestRepositoryPostgresql) GetABTestById(ctx context.Context, exec Executor, id string) (models.ABTest, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.ABTest{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectABTestColumn...).
			From(dbmodels.TABLE_AB_TESTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptABTest,
	)
}

func (repo ABTestRepositoryPostgresql) ListABTests(ctx context.Context, exec Executor,
	filters models.ListABTestsFilters,
) ([]models.ABTest, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectABTestColumn...).
		From(dbmodels.TABLE_AB_TESTS).
		Where(squirrel.Eq{"organization_id": filters.OrganizationId}).
		OrderBy("created_at DESC")

	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filters.Status})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptABTest)
}

func (repo ABTestRepositoryPostgresql) CreateABTest(ctx context.Context, exec Executor,
	input models.CreateABTestInput, newABTestId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AB_TESTS).
			Columns(
				"id",
				"organization_id",
				"created_by",
				"name",
				"description",
				"type",
				"variant_a",
				"variant_b",
				"status",
			).
			Values(
				newABTestId,
				input.OrganizationId,
				input.CreatedBy,
				input.Name,
				input.Description,
				input.Type,
				[]byte(input.VariantA),
				[]byte(input.VariantB),
				models.ABTestDraft,
			),
	)
	return err
}

// UpdateABTestStatus applies a lifecycle transition with a compare-and-set
// on the current status. Returns false when no row matched, meaning another
// caller transitioned the test first (or the test does not exist).
func (repo ABTestRepositoryPostgresql) UpdateABTestStatus(ctx context.Context, exec Executor,
	update models.ABTestStatusUpdate,
) (bool, error) {
	if err := validateDbExecutor(exec); err != nil {
		return false, err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_AB_TESTS).
		Set("status", update.NewStatus).
		Where(squirrel.Eq{
			"id":     update.Id,
			"status": update.ExpectedFrom,
		})

	if update.StartDate != nil {
		query = query.Set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		query = query.Set("end_date", *update.EndDate)
	}
	if update.Winner != nil {
		query = query.Set("winner", *update.Winner)
	}
	if update.Confidence != nil {
		query = query.Set("confidence", *update.Confidence)
	}

	rowsAffected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// IncrementABTestParticipantCount is a store-side atomic add: concurrent
// assignments serialize on the row, not on an application lock.
func (repo ABTestRepositoryPostgresql) IncrementABTestParticipantCount(
	ctx context.Context, exec Executor, id string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_AB_TESTS).
			Set("participant_count", squirrel.Expr("participant_count + 1")).
			Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.NotFoundError
	}
	return nil
}

func (repo ABTestRepositoryPostgresql) DeleteABTest(ctx context.Context, exec Executor, id string) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_AB_TESTS).
			Where(squirrel.Eq{"id": id}),
	)
	return err
}
