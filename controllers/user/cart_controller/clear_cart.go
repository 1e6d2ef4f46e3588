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

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every item from the session cart.
// @Tags User - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Failure 502 {object} models.ApiResponse "Cart service unavailable"
// @Router /user/cart [delete]
func ClearCart(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.Store().ClearCart(ctx, sess.ID); err != nil {
		log.Printf("[cart.clear] %s: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	events.Publish(events.New(events.CartChanged, sess.ID, nil))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", nil))
}
