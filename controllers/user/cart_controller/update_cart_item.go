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

// UpdateCartItem godoc
// @Summary Update a cart item quantity
// @Description Sets the quantity of one cart line and returns the updated cart.
// @Tags User - Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.Cart} "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 502 {object} models.ApiResponse "Cart service unavailable"
// @Router /user/cart/items/{id} [put]
func UpdateCartItem(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quantity payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.Store().UpdateCartItem(ctx, sess.ID, productID, req.Quantity)
	if err != nil {
		log.Printf("[cart.update] %s product %d: %v", sess.ID, productID, err)
		respondUpstreamError(c, err)
		return
	}

	events.Publish(events.New(events.CartChanged, sess.ID, cart))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cart))
}
