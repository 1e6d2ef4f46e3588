package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/controllers/user/cart_controller"
	"github.com/Migueeel08/focoshop-sub000/controllers/user/favorites_controller"
	"github.com/Migueeel08/focoshop-sub000/controllers/user/order_controller"
	"github.com/Migueeel08/focoshop-sub000/controllers/user/session_controller"
	"github.com/Migueeel08/focoshop-sub000/middleware"
)

// SetupUserRoutes sets up the session-scoped routes: cart, favorites, orders.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.Session())
	{
		// Session lifecycle
		user.GET("/session", session_controller.GetSession)
		user.DELETE("/session", session_controller.EndSession)

		// Cart
		user.GET("/cart", cart_controller.GetCart)
		user.DELETE("/cart", cart_controller.ClearCart)
		user.POST("/cart/items", cart_controller.AddCartItem)
		user.PUT("/cart/items/:id", cart_controller.UpdateCartItem)
		user.DELETE("/cart/items/:id", cart_controller.RemoveCartItem)

		// Favorites
		user.GET("/favorites", favorites_controller.GetFavorites)
		user.PUT("/favorites/:id", favorites_controller.ToggleFavorite)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
		user.GET("/orders/:id", order_controller.GetOrderByID)
		user.GET("/orders/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}
