package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/catalog"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// GetProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve available products with optional search, category, subcategory, condition, price range, brand, rating, and sorting filters. A non-empty search query matches across all categories.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name, description, category, brand)"
// @Param category query string false "Category name"
// @Param subcategory query string false "Subcategory name"
// @Param condition query string false "Condition filter (nuevo | usado | ambos)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param brand query []string false "Brand names (repeatable)"
// @Param minRating query number false "Minimum rating"
// @Param sortBy query string false "Sort strategy (relevant, lowest-price, highest-price, best-selling)" default(relevant)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	filters := parseFilterState(c)

	items, err := LoadCatalog(c)
	if err != nil {
		log.Printf("[store.products] catalog fetch failed: %v", err)
		respondUpstreamError(c, err)
		return
	}

	filtered := catalog.Apply(items, filters)
	pageItems, meta := paginate(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		pageItems,
		meta,
	))
}

// respondUpstreamError relays an upstream failure, keeping the upstream's own
// message and status where it provided them.
func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse(c, apiErr.Message))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Catalog service unavailable"))
}
