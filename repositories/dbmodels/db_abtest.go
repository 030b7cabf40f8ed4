package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/utils"
)

type DBABTest struct {
	Id               string      `db:"id"`
	OrganizationId   string      `db:"organization_id"`
	CreatedBy        string      `db:"created_by"`
	Name             string      `db:"name"`
	Description      string      `db:"description"`
	Type             string      `db:"type"`
	VariantA         []byte      `db:"variant_a"`
	VariantB         []byte      `db:"variant_b"`
	Status           string      `db:"status"`
	CreatedAt        time.Time   `db:"created_at"`
	StartDate        null.Time   `db:"start_date"`
	EndDate          null.Time   `db:"end_date"`
	ParticipantCount int         `db:"participant_count"`
	Winner           null.String `db:"winner"`
	Confidence       null.Float  `db:"confidence"`
}

const TABLE_AB_TESTS = "ab_tests"

var SelectABTestColumn = utils.ColumnList[DBABTest]()

func AdaptABTest(db DBABTest) (models.ABTest, error) {
	abTest := models.ABTest{
		Id:               db.Id,
		OrganizationId:   db.OrganizationId,
		CreatedBy:        db.CreatedBy,
		Name:             db.Name,
		Description:      db.Description,
		Type:             models.ABTestType(db.Type),
		VariantA:         db.VariantA,
		VariantB:         db.VariantB,
		Status:           models.ABTestStatus(db.Status),
		CreatedAt:        db.CreatedAt,
		StartDate:        db.StartDate.Ptr(),
		EndDate:          db.EndDate.Ptr(),
		ParticipantCount: db.ParticipantCount,
		Confidence:       db.Confidence.Ptr(),
	}

	if db.Winner.Valid {
		winner := models.Variant(db.Winner.String)
		abTest.Winner = &winner
	}

	return abTest, nil
}
