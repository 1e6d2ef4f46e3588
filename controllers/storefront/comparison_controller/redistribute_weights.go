package comparison_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/models"
)

// RedistributeWeights godoc
// @Summary Redistribute criteria weights equally
// @Description Resets all active criteria to an equal split totaling exactly 100 and re-enables automatic distribution.
// @Tags Storefront - Comparison
// @Produce json
// @Success 200 {object} models.ApiResponse "Weights redistributed"
// @Router /store/compare/criteria/redistribute [post]
func RedistributeWeights(c *gin.Context) {
	sess, set, ctx, cancel, ok := loadCriteria(c)
	if !ok {
		return
	}
	defer cancel()

	set.RedistributeEqually()

	if !saveCriteria(c, ctx, sess.ID, set) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Weights redistributed", set))
}
