package comparison_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// loadCriteria resolves the caller's session and its criteria set. A nil
// session means the response was already written.
func loadCriteria(c *gin.Context) (*models.Session, comparison.Set, context.Context, context.CancelFunc, bool) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return nil, comparison.Set{}, nil, nil, false
	}

	ctx, cancel := config.WithTimeout()

	set, err := services.Sessions().Criteria(ctx, sess.ID)
	if err != nil {
		cancel()
		log.Printf("[compare.criteria] load for %s failed: %v", sess.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load criteria"))
		return nil, comparison.Set{}, nil, nil, false
	}

	return sess, set, ctx, cancel, true
}

func saveCriteria(c *gin.Context, ctx context.Context, sessionID string, set comparison.Set) bool {
	if err := services.Sessions().SaveCriteria(ctx, sessionID, set); err != nil {
		log.Printf("[compare.criteria] save for %s failed: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save criteria"))
		return false
	}
	return true
}

func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse(c, apiErr.Message))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Ranking service unavailable"))
}
