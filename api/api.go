package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helixcrm/helix-backend/usecases"
)

type API struct {
	usecases usecases.Usecases
}

func New(usecases usecases.Usecases) *API {
	return &API{
		usecases: usecases,
	}
}

func (api *API) Routes(r *gin.Engine) {
	r.GET("/liveness", api.handleLivenessProbe)

	abTests := r.Group("/ab-tests")
	abTests.POST("", api.handleCreateABTest)
	abTests.GET("", api.handleListABTests)
	abTests.GET("/:ab_test_id", api.handleGetABTest)
	abTests.DELETE("/:ab_test_id", api.handleDeleteABTest)
	abTests.POST("/:ab_test_id/start", api.handleStartABTest)
	abTests.POST("/:ab_test_id/pause", api.handlePauseABTest)
	abTests.POST("/:ab_test_id/stop", api.handleStopABTest)
	abTests.POST("/:ab_test_id/assign", api.handleRecordAssignment)
	abTests.GET("/:ab_test_id/metrics", api.handleGetABTestMetrics)
	abTests.GET("/:ab_test_id/analysis", api.handleAnalyzeABTest)
	abTests.POST("/results/:result_id/interactions", api.handleRecordInteraction)
}

func (api *API) handleLivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
