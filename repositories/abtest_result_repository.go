package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories/dbmodels"
)

type ABTestResultRepository interface {
	GetABTestResultById(ctx context.Context, exec Executor, id string) (models.ABTestResult, error)
	ListABTestResults(ctx context.Context, exec Executor, abTestId string) ([]models.ABTestResult, error)
	CreateABTestResult(ctx context.Context, exec Executor, input models.CreateABTestResultInput, newResultId string) error
	RecordInteraction(ctx context.Context, exec Executor, resultId string, kind models.InteractionKind) (models.ABTestResult, error)
}

type ABTestResultRepositoryPostgresql struct{}

func (repo ABTestResultRepositoryPostgresql) GetABTestResultById(
	ctx context.Context, exec Executor, id string,
) (models.ABTestResult, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.ABTestResult{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectABTestResultColumn...).
			From(dbmodels.TABLE_AB_TEST_RESULTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptABTestResult,
	)
}

func (repo ABTestResultRepositoryPostgresql) ListABTestResults(
	ctx context.Context, exec Executor, abTestId string,
) ([]models.ABTestResult, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectABTestResultColumn...).
			From(dbmodels.TABLE_AB_TEST_RESULTS).
			Where(squirrel.Eq{"ab_test_id": abTestId}).
			OrderBy("created_at"),
		dbmodels.AdaptABTestResult,
	)
}

func (repo ABTestResultRepositoryPostgresql) CreateABTestResult(ctx context.Context, exec Executor,
	input models.CreateABTestResultInput, newResultId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	metadata := []byte(input.Metadata)
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AB_TEST_RESULTS).
			Columns(
				"id",
				"ab_test_id",
				"variant",
				"lead_id",
				"campaign_id",
				"metadata",
			).
			Values(
				newResultId,
				input.ABTestId,
				input.Variant,
				input.LeadId,
				input.CampaignId,
				metadata,
			),
	)
	return err
}

// RecordInteraction sets the interaction field to now() only if it is still
// unset, so re-delivered callbacks never move a timestamp. The update is a
// single statement: concurrent callbacks on the same result serialize on the
// row and commute across distinct fields.
func (repo ABTestResultRepositoryPostgresql) RecordInteraction(ctx context.Context, exec Executor,
	resultId string, kind models.InteractionKind,
) (models.ABTestResult, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.ABTestResult{}, err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_AB_TEST_RESULTS).
		Where(squirrel.Eq{"id": resultId}).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectABTestResultColumn, ","))

	switch kind {
	case models.InteractionOpen:
		query = query.Set("opened_at", squirrel.Expr("COALESCE(opened_at, now())"))
	case models.InteractionClick:
		query = query.Set("clicked_at", squirrel.Expr("COALESCE(clicked_at, now())"))
	case models.InteractionReply:
		query = query.Set("replied_at", squirrel.Expr("COALESCE(replied_at, now())"))
	case models.InteractionConversion:
		query = query.Set("converted", true)
	default:
		return models.ABTestResult{}, models.ErrUnknownInteraction
	}

	return SqlToModel(ctx, exec, query, dbmodels.AdaptABTestResult)
}
