package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse(c, apiErr.Message))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Catalog service unavailable"))
}
