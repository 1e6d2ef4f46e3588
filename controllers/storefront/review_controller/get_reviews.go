package review_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse(c, apiErr.Message))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Review service unavailable"))
}

// GetReviews godoc
// @Summary List product reviews
// @Description Returns the reviews posted for one product.
// @Tags Storefront - Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=[]models.Review} "Reviews fetched"
// @Failure 400 {object} models.ApiResponse "Invalid product id"
// @Failure 502 {object} models.ApiResponse "Review service unavailable"
// @Router /store/products/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews, err := services.Store().FetchReviews(ctx, productID)
	if err != nil {
		log.Printf("[reviews.get] product %d: %v", productID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews fetched", reviews))
}
