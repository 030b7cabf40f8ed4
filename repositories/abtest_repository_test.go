package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/repositories/dbmodels"
)

const (
	testABTestId       = "0ae6fda7-f7b3-4218-9fc3-4efa329432a7"
	testOrganizationId = "25ab6323-1657-4a52-923a-ef6983fe4532"
	testUserId         = "466b1b3a-9b68-4b3b-9a77-01a6ebbe6e51"
)

func newPoolMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func abTestRow(createdAt time.Time) []any {
	return []any{
		testABTestId,
		testOrganizationId,
		testUserId,
		"subject line test",
		"",
		"email_subject",
		[]byte(`{"subject":"Hi"}`),
		[]byte(`{"subject":"Hello"}`),
		"draft",
		createdAt,
		nil, // start_date
		nil, // end_date
		0,   // participant_count
		nil, // winner
		nil, // confidence
	}
}

func TestABTestRepository_GetABTestById(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}

	t.Run("nominal", func(t *testing.T) {
		mock := newPoolMock(t)
		createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT .* FROM ab_tests WHERE id =").
			WithArgs(testABTestId).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectABTestColumn).
				AddRow(abTestRow(createdAt)...))

		abTest, err := repo.GetABTestById(context.Background(), mock, testABTestId)

		assert.NoError(t, err)
		assert.Equal(t, testABTestId, abTest.Id)
		assert.Equal(t, models.ABTestDraft, abTest.Status)
		assert.Equal(t, models.ABTestEmailSubject, abTest.Type)
		assert.Nil(t, abTest.StartDate)
		assert.Nil(t, abTest.Winner)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newPoolMock(t)

		mock.ExpectQuery("SELECT .* FROM ab_tests WHERE id =").
			WithArgs(testABTestId).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectABTestColumn))

		_, err := repo.GetABTestById(context.Background(), mock, testABTestId)

		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestABTestRepository_ListABTests(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}

	t.Run("with status filter", func(t *testing.T) {
		mock := newPoolMock(t)
		createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		status := models.ABTestDraft

		mock.ExpectQuery("SELECT .* FROM ab_tests WHERE organization_id = .* AND status = .* ORDER BY created_at DESC").
			WithArgs(testOrganizationId, status).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectABTestColumn).
				AddRow(abTestRow(createdAt)...))

		abTests, err := repo.ListABTests(context.Background(), mock, models.ListABTestsFilters{
			OrganizationId: testOrganizationId,
			Status:         &status,
		})

		assert.NoError(t, err)
		assert.Len(t, abTests, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches yields an empty list", func(t *testing.T) {
		mock := newPoolMock(t)

		mock.ExpectQuery("SELECT .* FROM ab_tests WHERE organization_id = .* ORDER BY created_at DESC").
			WithArgs(testOrganizationId).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectABTestColumn))

		abTests, err := repo.ListABTests(context.Background(), mock, models.ListABTestsFilters{
			OrganizationId: testOrganizationId,
		})

		assert.NoError(t, err)
		assert.Empty(t, abTests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestABTestRepository_CreateABTest(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}
	mock := newPoolMock(t)

	input := models.CreateABTestInput{
		OrganizationId: testOrganizationId,
		CreatedBy:      testUserId,
		Name:           "subject line test",
		Type:           models.ABTestEmailSubject,
		VariantA:       []byte(`{"subject":"Hi"}`),
		VariantB:       []byte(`{"subject":"Hello"}`),
	}

	mock.ExpectExec("INSERT INTO ab_tests").
		WithArgs(testABTestId, testOrganizationId, testUserId, "subject line test", "",
			models.ABTestEmailSubject, []byte(`{"subject":"Hi"}`), []byte(`{"subject":"Hello"}`),
			models.ABTestDraft).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateABTest(context.Background(), mock, input, testABTestId)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestABTestRepository_UpdateABTestStatus(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}

	t.Run("compare-and-set wins", func(t *testing.T) {
		mock := newPoolMock(t)
		startDate := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

		mock.ExpectExec("UPDATE ab_tests SET status = .*, start_date = .* WHERE id = .* AND status IN").
			WithArgs(models.ABTestRunning, startDate, testABTestId,
				models.ABTestDraft, models.ABTestPaused).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.UpdateABTestStatus(context.Background(), mock, models.ABTestStatusUpdate{
			Id:           testABTestId,
			ExpectedFrom: []models.ABTestStatus{models.ABTestDraft, models.ABTestPaused},
			NewStatus:    models.ABTestRunning,
			StartDate:    &startDate,
		})

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("compare-and-set loses when the status moved", func(t *testing.T) {
		mock := newPoolMock(t)

		mock.ExpectExec("UPDATE ab_tests SET status = .* WHERE id = .* AND status IN").
			WithArgs(models.ABTestPaused, testABTestId, models.ABTestRunning).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		updated, err := repo.UpdateABTestStatus(context.Background(), mock, models.ABTestStatusUpdate{
			Id:           testABTestId,
			ExpectedFrom: []models.ABTestStatus{models.ABTestRunning},
			NewStatus:    models.ABTestPaused,
		})

		assert.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completion freezes the verdict columns", func(t *testing.T) {
		mock := newPoolMock(t)
		endDate := time.Date(2026, 2, 20, 18, 0, 0, 0, time.UTC)
		winner := models.VariantA
		confidence := 99.6

		mock.ExpectExec("UPDATE ab_tests SET status = .*, end_date = .*, winner = .*, confidence = .* WHERE id = .* AND status IN").
			WithArgs(models.ABTestCompleted, endDate, winner, confidence, testABTestId,
				models.ABTestRunning, models.ABTestPaused).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.UpdateABTestStatus(context.Background(), mock, models.ABTestStatusUpdate{
			Id:           testABTestId,
			ExpectedFrom: []models.ABTestStatus{models.ABTestRunning, models.ABTestPaused},
			NewStatus:    models.ABTestCompleted,
			EndDate:      &endDate,
			Winner:       &winner,
			Confidence:   &confidence,
		})

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestABTestRepository_IncrementABTestParticipantCount(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}

	t.Run("nominal", func(t *testing.T) {
		mock := newPoolMock(t)

		mock.ExpectExec("UPDATE ab_tests SET participant_count = participant_count").
			WithArgs(testABTestId).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.IncrementABTestParticipantCount(context.Background(), mock, testABTestId)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown test", func(t *testing.T) {
		mock := newPoolMock(t)

		mock.ExpectExec("UPDATE ab_tests SET participant_count = participant_count").
			WithArgs(testABTestId).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.IncrementABTestParticipantCount(context.Background(), mock, testABTestId)

		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestABTestRepository_DeleteABTest(t *testing.T) {
	repo := ABTestRepositoryPostgresql{}
	mock := newPoolMock(t)

	mock.ExpectExec("DELETE FROM ab_tests").
		WithArgs(testABTestId).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteABTest(context.Background(), mock, testABTestId)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
