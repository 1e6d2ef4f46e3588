package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Migueeel08/focoshop-sub000/cache"
	"github.com/Migueeel08/focoshop-sub000/catalog"
	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseFilterState maps query params onto the filter pipeline's state.
func parseFilterState(c *gin.Context) catalog.FilterState {
	f := catalog.FilterState{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Brands:      c.QueryArray("brand"),
		SortBy:      c.DefaultQuery("sortBy", catalog.SortRelevant),
	}

	switch c.Query("condition") {
	case "nuevo":
		f.ConditionNew = true
	case "usado":
		f.ConditionUsed = true
	case "ambos", "both":
		f.ConditionNew = true
		f.ConditionUsed = true
	}

	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &min
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &max
		}
	}
	if v := c.Query("minRating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinRating = &rating
		}
	}

	return f
}

// LoadCatalog returns the cached catalog snapshot, fetching from upstream on
// a miss. Shared with the filter metadata and comparison controllers.
func LoadCatalog(c *gin.Context) ([]models.Product, error) {
	if items, ok := catalog_cache.Get(); ok {
		return items, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := services.Store().FetchCatalog(ctx, "")
	if err != nil {
		return nil, err
	}
	catalog_cache.Set(items)
	return items, nil
}

func paginate(items []models.Product, page, limit int) ([]models.Product, *models.Pagination) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
