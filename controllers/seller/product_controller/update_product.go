package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Migueeel08/focoshop-sub000/cache"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Applies a partial update to one product and invalidates the storefront snapshot. Only the fields present in the payload change.
// @Tags Seller - Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product} "Product updated"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /seller/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := services.Store().UpdateProduct(ctx, id, req)
	if err != nil {
		log.Printf("[seller.update] product %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product))
}
