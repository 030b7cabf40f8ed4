package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helixcrm/helix-backend/dto"
	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/pure_utils"
)

type ABTestUriInput struct {
	ABTestId string `uri:"ab_test_id" binding:"required,uuid"`
}

func (api *API) handleCreateABTest(c *gin.Context) {
	var input dto.CreateABTestBody
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	abTestType, err := models.ABTestTypeFrom(input.Type)
	if presentError(c, err) {
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	abTest, err := usecase.CreateABTest(c.Request.Context(), models.CreateABTestInput{
		OrganizationId: input.OrganizationId,
		CreatedBy:      input.CreatedBy,
		Name:           input.Name,
		Description:    input.Description,
		Type:           abTestType,
		VariantA:       input.VariantA,
		VariantB:       input.VariantB,
	})
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ab_test": dto.AdaptABTestDto(abTest)})
}

func (api *API) handleListABTests(c *gin.Context) {
	var query struct {
		OrganizationId string `form:"organization_id" binding:"required,uuid"`
		Status         string `form:"status" binding:"omitempty,oneof=draft running paused completed"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := models.ListABTestsFilters{OrganizationId: query.OrganizationId}
	if query.Status != "" {
		status := models.ABTestStatus(query.Status)
		filters.Status = &status
	}

	usecase := api.usecases.NewABTestUsecase()
	abTests, err := usecase.ListABTests(c.Request.Context(), filters)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ab_tests": pure_utils.Map(abTests, dto.AdaptABTestDto),
	})
}

func (api *API) handleGetABTest(c *gin.Context) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	abTest, err := usecase.GetABTest(c.Request.Context(), uriInput.ABTestId)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ab_test": dto.AdaptABTestDto(abTest)})
}

func (api *API) handleStartABTest(c *gin.Context) {
	api.handleStatusTransition(c, func(c *gin.Context, id string) (models.ABTest, error) {
		return api.usecases.NewABTestUsecase().StartABTest(c.Request.Context(), id)
	})
}

func (api *API) handlePauseABTest(c *gin.Context) {
	api.handleStatusTransition(c, func(c *gin.Context, id string) (models.ABTest, error) {
		return api.usecases.NewABTestUsecase().PauseABTest(c.Request.Context(), id)
	})
}

func (api *API) handleStopABTest(c *gin.Context) {
	api.handleStatusTransition(c, func(c *gin.Context, id string) (models.ABTest, error) {
		return api.usecases.NewABTestUsecase().StopABTest(c.Request.Context(), id)
	})
}

func (api *API) handleStatusTransition(c *gin.Context,
	transition func(c *gin.Context, id string) (models.ABTest, error),
) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	abTest, err := transition(c, uriInput.ABTestId)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ab_test": dto.AdaptABTestDto(abTest)})
}

func (api *API) handleDeleteABTest(c *gin.Context) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	if presentError(c, usecase.DeleteABTest(c.Request.Context(), uriInput.ABTestId)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// handleRecordAssignment draws a variant when the caller does not supply
// one, then creates the participation record. Callers wanting stickiness
// for a returning participant pass the previously stored variant.
func (api *API) handleRecordAssignment(c *gin.Context) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input dto.RecordAssignmentBody
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usecase := api.usecases.NewABTestUsecase()

	variant := usecase.AssignVariant()
	if input.Variant != "" {
		variant = models.Variant(input.Variant)
	}

	result, err := usecase.RecordAssignment(c.Request.Context(), models.CreateABTestResultInput{
		ABTestId:   uriInput.ABTestId,
		Variant:    variant,
		LeadId:     input.LeadId,
		CampaignId: input.CampaignId,
		Metadata:   input.Metadata,
	})
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": dto.AdaptABTestResultDto(result)})
}

func (api *API) handleRecordInteraction(c *gin.Context) {
	var uriInput struct {
		ResultId string `uri:"result_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input dto.RecordInteractionBody
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := models.InteractionKindFrom(input.Kind)
	if presentError(c, err) {
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	result, err := usecase.RecordInteraction(c.Request.Context(), uriInput.ResultId, kind)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": dto.AdaptABTestResultDto(result)})
}

func (api *API) handleGetABTestMetrics(c *gin.Context) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	metrics, err := usecase.GetABTestMetrics(c.Request.Context(), uriInput.ABTestId)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": dto.AdaptABTestMetricsDto(metrics)})
}

func (api *API) handleAnalyzeABTest(c *gin.Context) {
	var uriInput ABTestUriInput
	if err := c.ShouldBindUri(&uriInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usecase := api.usecases.NewABTestUsecase()
	analysis, err := usecase.AnalyzeABTest(c.Request.Context(), uriInput.ABTestId)
	if presentError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": dto.AdaptABTestAnalysisDto(analysis)})
}
