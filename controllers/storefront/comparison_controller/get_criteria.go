package comparison_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/models"
)

// GetCriteria godoc
// @Summary Get comparison criteria
// @Description Returns the session's current criteria set: per-criterion weight, kind and active flag, plus whether weights are auto-distributed.
// @Tags Storefront - Comparison
// @Produce json
// @Success 200 {object} models.ApiResponse "Criteria fetched"
// @Router /store/compare/criteria [get]
func GetCriteria(c *gin.Context) {
	_, set, _, cancel, ok := loadCriteria(c)
	if !ok {
		return
	}
	defer cancel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Criteria fetched", set))
}
