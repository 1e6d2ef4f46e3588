package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Adds the product (or bumps its quantity) and returns the updated cart. Connected storefront tabs of the same session are notified.
// @Tags User - Cart
// @Accept json
// @Produce json
// @Param body body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.Cart} "Item added"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 502 {object} models.ApiResponse "Cart service unavailable"
// @Router /user/cart/items [post]
func AddCartItem(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.Store().AddCartItem(ctx, sess.ID, req)
	if err != nil {
		log.Printf("[cart.add] %s product %d: %v", sess.ID, req.ProductID, err)
		respondUpstreamError(c, err)
		return
	}

	events.Publish(events.New(events.CartChanged, sess.ID, cart))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cart))
}
