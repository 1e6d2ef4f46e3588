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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes a product from the catalog and invalidates the storefront snapshot.
// @Tags Seller - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Product deleted"
// @Failure 400 {object} models.ApiResponse "Invalid product id"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /seller/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.Store().DeleteProduct(ctx, id); err != nil {
		log.Printf("[seller.delete] product %d: %v", id, err)
		respondUpstreamError(c, err)
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[seller.delete] product %d removed", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}
