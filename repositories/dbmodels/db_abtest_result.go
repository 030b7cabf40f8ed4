package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/utils"
)

type DBABTestResult struct {
	Id         string      `db:"id"`
	ABTestId   string      `db:"ab_test_id"`
	Variant    string      `db:"variant"`
	LeadId     null.String `db:"lead_id"`
	CampaignId null.String `db:"campaign_id"`
	Metadata   []byte      `db:"metadata"`
	CreatedAt  time.Time   `db:"created_at"`
	OpenedAt   null.Time   `db:"opened_at"`
	ClickedAt  null.Time   `db:"clicked_at"`
	RepliedAt  null.Time   `db:"replied_at"`
	Converted  bool        `db:"converted"`
}

const TABLE_AB_TEST_RESULTS = "ab_test_results"

var SelectABTestResultColumn = utils.ColumnList[DBABTestResult]()

func AdaptABTestResult(db DBABTestResult) (models.ABTestResult, error) {
	return models.ABTestResult{
		Id:         db.Id,
		ABTestId:   db.ABTestId,
		Variant:    models.Variant(db.Variant),
		LeadId:     db.LeadId.Ptr(),
		CampaignId: db.CampaignId.Ptr(),
		Metadata:   db.Metadata,
		CreatedAt:  db.CreatedAt,
		OpenedAt:   db.OpenedAt.Ptr(),
		ClickedAt:  db.ClickedAt.Ptr(),
		RepliedAt:  db.RepliedAt.Ptr(),
		Converted:  db.Converted,
	}, nil
}
