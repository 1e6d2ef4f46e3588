package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Returns the caller's cart with line items and total.
// @Tags User - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Cart} "Cart fetched"
// @Failure 502 {object} models.ApiResponse "Cart service unavailable"
// @Router /user/cart [get]
func GetCart(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.Store().GetCart(ctx, sess.ID)
	if err != nil {
		log.Printf("[cart.get] %s: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", cart))
}
