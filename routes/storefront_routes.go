package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	store_comparison "github.com/Migueeel08/focoshop-sub000/controllers/storefront/comparison_controller"
	store_filter "github.com/Migueeel08/focoshop-sub000/controllers/storefront/filter_controller"
	store_product "github.com/Migueeel08/focoshop-sub000/controllers/storefront/product_controller"
	store_review "github.com/Migueeel08/focoshop-sub000/controllers/storefront/review_controller"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, hub *events.Hub) {
	// Storefront routes (public, session-scoped)
	store := router.Group("/store")
	store.Use(middleware.Session())

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts) // List with filters
		products.GET("/:id", store_product.GetProductByID)

		products.GET("/:id/reviews", store_review.GetReviews)
		products.POST("/:id/reviews", store_review.CreateReview)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Comparison routes (ranking delegated upstream, rate-limited)
	compare := store.Group("/compare")
	compare.Use(middleware.RateLimiter(100, time.Minute))
	{
		compare.POST("", store_comparison.CompareProducts)

		compare.GET("/criteria", store_comparison.GetCriteria)
		compare.POST("/criteria/:name/toggle", store_comparison.ToggleCriterion)
		compare.POST("/criteria/:name/weight", store_comparison.AdjustWeight)
		compare.POST("/criteria/redistribute", store_comparison.RedistributeWeights)
		compare.POST("/criteria/reset", store_comparison.ResetCriteria)
	}

	// Websocket: cart/favorites change notifications, one room per session
	store.GET("/events/ws", func(c *gin.Context) {
		sess := middleware.GetSessionFromContext(c)
		if sess == nil {
			c.AbortWithStatus(500)
			return
		}
		_ = hub.Serve(c.Writer, c.Request, sess.ID)
	})
}
