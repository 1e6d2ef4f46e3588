package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	seller_product "github.com/Migueeel08/focoshop-sub000/controllers/seller/product_controller"
	"github.com/Migueeel08/focoshop-sub000/middleware"
)

// SetupSellerRoutes sets up the product management proxy, rate-limited.
func SetupSellerRoutes(router *gin.RouterGroup) {
	seller := router.Group("/seller")
	seller.Use(middleware.RateLimiter(100, time.Minute))
	{
		seller.POST("/products", seller_product.CreateProduct)
		seller.PUT("/products/:id", seller_product.UpdateProduct)
		seller.DELETE("/products/:id", seller_product.DeleteProduct)
	}
}
