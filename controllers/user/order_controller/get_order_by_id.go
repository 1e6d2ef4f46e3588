package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// GetOrderByID godoc
// @Summary Get one order
// @Description Returns a single order belonging to the caller's session.
// @Tags User - Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order} "Order fetched"
// @Failure 400 {object} models.ApiResponse "Invalid order id"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /user/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.Store().FetchOrder(ctx, sess.ID, orderID)
	if err != nil {
		log.Printf("[orders.get] %s order %d: %v", sess.ID, orderID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched", order))
}
