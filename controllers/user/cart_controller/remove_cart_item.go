package cart_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Description Drops one cart line and returns the updated cart.
// @Tags User - Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Cart} "Item removed"
// @Failure 400 {object} models.ApiResponse "Invalid product id"
// @Failure 502 {object} models.ApiResponse "Cart service unavailable"
// @Router /user/cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.Store().RemoveCartItem(ctx, sess.ID, productID)
	if err != nil {
		log.Printf("[cart.remove] %s product %d: %v", sess.ID, productID, err)
		respondUpstreamError(c, err)
		return
	}

	events.Publish(events.New(events.CartChanged, sess.ID, cart))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cart))
}
