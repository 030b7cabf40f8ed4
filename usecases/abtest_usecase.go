package usecases

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories"
	"github.com/helixcrm/helix-backend/usecases/executor_factory"
	"github.com/helixcrm/helix-backend/usecases/significance"
)

// ABTestUsecase is the experiment engine: lifecycle transitions, variant
// assignment, interaction recording, metrics aggregation and significance
// analysis. It holds no state of its own; every call recomputes from the
// store.
type ABTestUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	abTestRepository       repositories.ABTestRepository
	abTestResultRepository repositories.ABTestResultRepository
}

func (usecase ABTestUsecase) CreateABTest(ctx context.Context, input models.CreateABTestInput) (models.ABTest, error) {
	if err := input.Validate(); err != nil {
		return models.ABTest{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ABTest, error) {
			newABTestId := uuid.NewString()
			if err := usecase.abTestRepository.CreateABTest(ctx, tx, input, newABTestId); err != nil {
				return models.ABTest{}, err
			}
			return usecase.abTestRepository.GetABTestById(ctx, tx, newABTestId)
		})
}

func (usecase ABTestUsecase) GetABTest(ctx context.Context, id string) (models.ABTest, error) {
	return usecase.abTestRepository.GetABTestById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase ABTestUsecase) ListABTests(ctx context.Context, filters models.ListABTestsFilters) ([]models.ABTest, error) {
	if filters.OrganizationId == "" {
		return nil, errors.Wrap(models.BadParameterError, "organization id is required")
	}
	return usecase.abTestRepository.ListABTests(ctx, usecase.executorFactory.NewExecutor(), filters)
}

// StartABTest moves a draft test to running, or resumes a paused one. The
// start date is stamped on the first start only.
func (usecase ABTestUsecase) StartABTest(ctx context.Context, id string) (models.ABTest, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ABTest, error) {
			abTest, err := usecase.abTestRepository.GetABTestById(ctx, tx, id)
			if err != nil {
				return models.ABTest{}, err
			}
			if !abTest.Status.CanTransition(models.ABTestRunning) {
				return models.ABTest{}, errors.Wrapf(models.ErrABTestStatusTransition,
					"cannot start a/b test in status %s", abTest.Status)
			}

			update := models.ABTestStatusUpdate{
				Id:           id,
				ExpectedFrom: []models.ABTestStatus{models.ABTestDraft, models.ABTestPaused},
				NewStatus:    models.ABTestRunning,
			}
			if abTest.StartDate == nil {
				now := time.Now()
				update.StartDate = &now
			}

			return usecase.applyStatusUpdate(ctx, tx, update)
		})
}

func (usecase ABTestUsecase) PauseABTest(ctx context.Context, id string) (models.ABTest, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ABTest, error) {
			if _, err := usecase.abTestRepository.GetABTestById(ctx, tx, id); err != nil {
				return models.ABTest{}, err
			}

			return usecase.applyStatusUpdate(ctx, tx, models.ABTestStatusUpdate{
				Id:           id,
				ExpectedFrom: []models.ABTestStatus{models.ABTestRunning},
				NewStatus:    models.ABTestPaused,
			})
		})
}

// StopABTest completes a running or paused test. The final verdict is
// computed and frozen onto the test record in the same transaction as the
// status change; the compare-and-set guarantees that of two concurrent
// stops, exactly one writes the verdict and the other fails.
func (usecase ABTestUsecase) StopABTest(ctx context.Context, id string) (models.ABTest, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ABTest, error) {
			abTest, err := usecase.abTestRepository.GetABTestById(ctx, tx, id)
			if err != nil {
				return models.ABTest{}, err
			}
			if !abTest.Status.CanTransition(models.ABTestCompleted) {
				return models.ABTest{}, errors.Wrapf(models.ErrABTestStatusTransition,
					"cannot stop a/b test in status %s", abTest.Status)
			}

			analysis, err := usecase.analyzeABTest(ctx, tx, abTest)
			if err != nil {
				return models.ABTest{}, err
			}

			now := time.Now()
			return usecase.applyStatusUpdate(ctx, tx, models.ABTestStatusUpdate{
				Id:           id,
				ExpectedFrom: []models.ABTestStatus{models.ABTestRunning, models.ABTestPaused},
				NewStatus:    models.ABTestCompleted,
				EndDate:      &now,
				Winner:       analysis.Verdict.Winner,
				Confidence:   &analysis.Verdict.Confidence,
			})
		})
}

func (usecase ABTestUsecase) applyStatusUpdate(ctx context.Context, tx repositories.Transaction,
	update models.ABTestStatusUpdate,
) (models.ABTest, error) {
	updated, err := usecase.abTestRepository.UpdateABTestStatus(ctx, tx, update)
	if err != nil {
		return models.ABTest{}, err
	}
	if !updated {
		return models.ABTest{}, errors.Wrapf(models.ErrABTestStatusTransition,
			"a/b test %s was transitioned concurrently", update.Id)
	}
	return usecase.abTestRepository.GetABTestById(ctx, tx, update.Id)
}

// DeleteABTest removes a draft test. A test that left the draft status has
// collected data and must be archived by the caller instead.
func (usecase ABTestUsecase) DeleteABTest(ctx context.Context, id string) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		abTest, err := usecase.abTestRepository.GetABTestById(ctx, tx, id)
		if err != nil {
			return err
		}
		if abTest.Status != models.ABTestDraft {
			return errors.Wrapf(models.ErrABTestHasParticipants,
				"a/b test %s is in status %s", id, abTest.Status)
		}
		return usecase.abTestRepository.DeleteABTest(ctx, tx, id)
	})
}

// AssignVariant draws a variant for a new participant, 50/50.
func (usecase ABTestUsecase) AssignVariant() models.Variant {
	return models.RandomVariant()
}

// RecordAssignment creates the participation record and increments the
// test's participant counter in one transaction. The increment is an atomic
// add in the store, so concurrent assignments never lose counts.
func (usecase ABTestUsecase) RecordAssignment(ctx context.Context,
	input models.CreateABTestResultInput,
) (models.ABTestResult, error) {
	if input.Variant != models.VariantA && input.Variant != models.VariantB {
		return models.ABTestResult{}, errors.Wrap(models.BadParameterError, "unknown variant")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ABTestResult, error) {
			newResultId := uuid.NewString()
			if err := usecase.abTestResultRepository.CreateABTestResult(ctx, tx, input, newResultId); err != nil {
				return models.ABTestResult{}, err
			}
			if err := usecase.abTestRepository.IncrementABTestParticipantCount(ctx, tx, input.ABTestId); err != nil {
				return models.ABTestResult{}, err
			}
			return usecase.abTestResultRepository.GetABTestResultById(ctx, tx, newResultId)
		})
}

// RecordInteraction marks an interaction on a participation record.
// Recording the same kind twice is a no-op.
func (usecase ABTestUsecase) RecordInteraction(ctx context.Context,
	resultId string, kind models.InteractionKind,
) (models.ABTestResult, error) {
	return usecase.abTestResultRepository.RecordInteraction(
		ctx, usecase.executorFactory.NewExecutor(), resultId, kind)
}

func (usecase ABTestUsecase) GetABTestMetrics(ctx context.Context, id string) (models.ABTestMetrics, error) {
	exec := usecase.executorFactory.NewExecutor()

	if _, err := usecase.abTestRepository.GetABTestById(ctx, exec, id); err != nil {
		return models.ABTestMetrics{}, err
	}
	return usecase.computeMetrics(ctx, exec, id)
}

func (usecase ABTestUsecase) computeMetrics(ctx context.Context, exec repositories.Executor,
	abTestId string,
) (models.ABTestMetrics, error) {
	results, err := usecase.abTestResultRepository.ListABTestResults(ctx, exec, abTestId)
	if err != nil {
		return models.ABTestMetrics{}, err
	}

	var resultsA, resultsB []models.ABTestResult
	for _, result := range results {
		switch result.Variant {
		case models.VariantA:
			resultsA = append(resultsA, result)
		case models.VariantB:
			resultsB = append(resultsB, result)
		}
	}

	return models.ABTestMetrics{
		VariantA: models.ComputeVariantMetrics(models.VariantA, resultsA),
		VariantB: models.ComputeVariantMetrics(models.VariantB, resultsB),
	}, nil
}

// AnalyzeABTest recomputes the verdict from stored results. It is persisted
// only when the test is stopped.
func (usecase ABTestUsecase) AnalyzeABTest(ctx context.Context, id string) (models.ABTestAnalysis, error) {
	exec := usecase.executorFactory.NewExecutor()

	abTest, err := usecase.abTestRepository.GetABTestById(ctx, exec, id)
	if err != nil {
		return models.ABTestAnalysis{}, err
	}
	return usecase.analyzeABTest(ctx, exec, abTest)
}

func (usecase ABTestUsecase) analyzeABTest(ctx context.Context, exec repositories.Executor,
	abTest models.ABTest,
) (models.ABTestAnalysis, error) {
	metrics, err := usecase.computeMetrics(ctx, exec, abTest.Id)
	if err != nil {
		return models.ABTestAnalysis{}, err
	}

	verdict := significance.Compute(significance.Input{
		ParticipantsA:   metrics.VariantA.ParticipantCount,
		ConversionRateA: metrics.VariantA.ConversionRate,
		ParticipantsB:   metrics.VariantB.ParticipantCount,
		ConversionRateB: metrics.VariantB.ConversionRate,
	})

	analysis := models.ABTestAnalysis{
		ABTestId:          abTest.Id,
		Status:            abTest.Status,
		TotalParticipants: metrics.VariantA.ParticipantCount + metrics.VariantB.ParticipantCount,
		VariantA:          metrics.VariantA,
		VariantB:          metrics.VariantB,
		Verdict:           verdict,
	}

	if verdict.Winner != nil {
		winnerRate, loserRate := metrics.VariantA.ConversionRate, metrics.VariantB.ConversionRate
		if *verdict.Winner == models.VariantB {
			winnerRate, loserRate = loserRate, winnerRate
		}
		if loserRate > 0 {
			improvement := (winnerRate - loserRate) / loserRate * 100
			analysis.Improvement = &improvement
		}
	}

	if abTest.StartDate != nil {
		end := time.Now()
		if abTest.EndDate != nil {
			end = *abTest.EndDate
		}
		days := int(math.Ceil(end.Sub(*abTest.StartDate).Hours() / 24))
		analysis.DurationDays = &days
	}

	return analysis, nil
}
