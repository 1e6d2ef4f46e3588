package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download an order invoice PDF
// @Description Renders the order as a PDF invoice and streams it back.
// @Tags User - Orders
// @Produce application/pdf
// @Param id path int true "Order ID"
// @Success 200 {file} file "Invoice PDF"
// @Failure 400 {object} models.ApiResponse "Invalid order id"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "PDF generation failed"
// @Router /user/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
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
		log.Printf("[orders.invoice] %s order %d: %v", sess.ID, orderID, err)
		respondUpstreamError(c, err)
		return
	}

	pdfBuffer := generateOrderInvoicePDF(order)
	if pdfBuffer.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("factura-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
