package comparison_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/models"
)

type adjustWeightRequest struct {
	Weight int `json:"weight" binding:"min=0"`
}

// AdjustWeight godoc
// @Summary Adjust a criterion weight
// @Description Sets a criterion's weight as an integer percentage. Values are clamped to [0,100] and to the headroom the other active criteria leave; exceeding that headroom applies the clamped weight and reports a transient validation message. Any adjustment switches the set to manual mode.
// @Tags Storefront - Comparison
// @Accept json
// @Produce json
// @Param name path string true "Criterion name"
// @Param body body adjustWeightRequest true "New weight"
// @Success 200 {object} models.ApiResponse "Weight adjusted"
// @Failure 404 {object} models.ApiResponse "Unknown criterion"
// @Failure 422 {object} models.ApiResponse "Weight clamped or criterion inactive"
// @Router /store/compare/criteria/{name}/weight [post]
func AdjustWeight(c *gin.Context) {
	var req adjustWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid weight payload"))
		return
	}

	sess, set, ctx, cancel, ok := loadCriteria(c)
	if !ok {
		return
	}
	defer cancel()

	name := c.Param("name")
	err := set.AdjustWeight(name, req.Weight)
	switch {
	case errors.Is(err, comparison.ErrUnknownCriterion):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown criterion: "+name))
		return
	case errors.Is(err, comparison.ErrInactiveCriterion):
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, "Criterion is not active", set))
		return
	case errors.Is(err, comparison.ErrTotalExceeded):
		// The clamped weight was applied; persist it so the client and the
		// store agree on the state the message describes.
		if !saveCriteria(c, ctx, sess.ID, set) {
			return
		}
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, "Total weight cannot exceed 100%", set))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to adjust weight"))
		return
	}

	if !saveCriteria(c, ctx, sess.ID, set) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Weight adjusted", set))
}
