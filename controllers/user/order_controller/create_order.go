package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// CreateOrder godoc
// @Summary Place an order
// @Description Checks out the session cart. Payment is handled by the store service; the gateway only forwards the opaque payment token. The cart is emptied upstream on success.
// @Tags User - Orders
// @Accept json
// @Produce json
// @Param body body models.CreateOrderRequest true "Checkout details"
// @Success 201 {object} models.ApiResponse{data=models.Order} "Order created"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 502 {object} models.ApiResponse "Order service unavailable"
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Shipping address is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.Store().CreateOrder(ctx, sess.ID, req)
	if err != nil {
		log.Printf("[orders.create] %s: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	// Checkout empties the cart upstream; tell the other tabs.
	events.Publish(events.New(events.CartChanged, sess.ID, nil))

	log.Printf("[orders.create] order %s placed by session %s", order.OrderNumber, sess.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created", order))
}
