package comparison_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/models"
)

// ToggleCriterion godoc
// @Summary Toggle a comparison criterion
// @Description Flips a criterion between active and inactive. Deactivating the last active criterion is refused. Under auto mode weights are redistributed equally after the toggle.
// @Tags Storefront - Comparison
// @Produce json
// @Param name path string true "Criterion name"
// @Success 200 {object} models.ApiResponse "Criterion toggled"
// @Failure 404 {object} models.ApiResponse "Unknown criterion"
// @Failure 422 {object} models.ApiResponse "At least one criterion must stay active"
// @Router /store/compare/criteria/{name}/toggle [post]
func ToggleCriterion(c *gin.Context) {
	sess, set, ctx, cancel, ok := loadCriteria(c)
	if !ok {
		return
	}
	defer cancel()

	name := c.Param("name")
	if err := set.Toggle(name); err != nil {
		switch {
		case errors.Is(err, comparison.ErrUnknownCriterion):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown criterion: "+name))
		case errors.Is(err, comparison.ErrLastActive):
			c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, "At least one criterion must stay active", set))
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle criterion"))
		}
		return
	}

	if !saveCriteria(c, ctx, sess.ID, set) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Criterion toggled", set))
}
