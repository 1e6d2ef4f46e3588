package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// GetOrders godoc
// @Summary List the session's orders
// @Description Returns every order placed by the caller's session, newest first.
// @Tags User - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Order} "Orders fetched"
// @Failure 502 {object} models.ApiResponse "Order service unavailable"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.Store().FetchOrders(ctx, sess.ID)
	if err != nil {
		log.Printf("[orders.list] %s: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched", orders))
}
