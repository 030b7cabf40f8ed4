package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/helixcrm/helix-backend/models"
	"github.com/helixcrm/helix-backend/utils"
)

// presentError maps the domain error taxonomy to http statuses. Anything
// outside the taxonomy is a store or programming fault and surfaces as 500.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx := c.Request.Context()
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error: "+err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
