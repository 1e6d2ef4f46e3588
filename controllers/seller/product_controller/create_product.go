package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Migueeel08/focoshop-sub000/cache"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Publishes a new product through the catalog service and invalidates the storefront snapshot.
// @Tags Seller - Products
// @Accept json
// @Produce json
// @Param body body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product} "Product created"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /seller/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := services.Store().CreateProduct(ctx, req)
	if err != nil {
		log.Printf("[seller.create] %q: %v", req.Name, err)
		respondUpstreamError(c, err)
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[seller.create] product %d published", product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
