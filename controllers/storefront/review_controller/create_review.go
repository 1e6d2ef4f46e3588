package review_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// CreateReview godoc
// @Summary Post a product review
// @Description Creates a review with a 1-5 rating and an optional comment, attributed to the caller's session.
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.ReviewRequest true "Rating and comment"
// @Success 201 {object} models.ApiResponse{data=models.Review} "Review created"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 502 {object} models.ApiResponse "Review service unavailable"
// @Router /store/products/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Rating must be between 1 and 5"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, err := services.Store().CreateReview(ctx, productID, sess.ID, req)
	if err != nil {
		log.Printf("[reviews.create] product %d: %v", productID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created", review))
}
