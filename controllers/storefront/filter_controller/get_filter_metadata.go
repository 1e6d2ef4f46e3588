package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/catalog"
	"github.com/Migueeel08/focoshop-sub000/controllers/storefront/product_controller"
	"github.com/Migueeel08/focoshop-sub000/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, the category tree, brand counts and the price range for the storefront filter panel, computed from the current catalog snapshot.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 502 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	items, err := product_controller.LoadCatalog(c)
	if err != nil {
		log.Printf("[store.filters] catalog fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Catalog service unavailable"))
		return
	}

	metadata := catalog.Metadata(items)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
