package comparison_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// ResetCriteria godoc
// @Summary Reset criteria to the ranking service defaults
// @Description Discards the session's criteria state and rebuilds it from the ranking service's default criteria map. Falls back to the built-in set when the service is unreachable.
// @Tags Storefront - Comparison
// @Produce json
// @Success 200 {object} models.ApiResponse "Criteria reset"
// @Router /store/compare/criteria/reset [post]
func ResetCriteria(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var set comparison.Set
	if specs, err := services.Store().DefaultCriteria(ctx); err == nil && len(specs) > 0 {
		set = comparison.FromSpecs(specs)
	} else {
		if err != nil {
			log.Printf("[compare.reset] upstream defaults unavailable, using built-in set: %v", err)
		}
		set = comparison.DefaultSet()
	}

	if !saveCriteria(c, ctx, sess.ID, set) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Criteria reset", set))
}
