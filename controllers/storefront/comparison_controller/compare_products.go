package comparison_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

type compareProductsRequest struct {
	ProductIDs []int `json:"product_ids" binding:"required"`
}

// CompareProducts godoc
// @Summary Compare products
// @Description Ranks 2 to 5 candidate products with the session's weighted criteria. Candidates are resolved individually; an id that fails to load is dropped, and the comparison is blocked if fewer than 2 survive. All scoring happens in the ranking service; the result is relayed verbatim.
// @Tags Storefront - Comparison
// @Accept json
// @Produce json
// @Param body body compareProductsRequest true "Candidate product ids"
// @Success 200 {object} models.ApiResponse{data=models.ComparisonResult} "Comparison computed"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 422 {object} models.ApiResponse "Candidate or criteria validation failed"
// @Failure 502 {object} models.ApiResponse "Ranking service unavailable"
// @Router /store/compare [post]
func CompareProducts(c *gin.Context) {
	var req compareProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid comparison payload"))
		return
	}

	if err := comparison.ValidateCandidates(req.ProductIDs); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, err.Error(), nil))
		return
	}

	sess, set, ctx, cancel, ok := loadCriteria(c)
	if !ok {
		return
	}
	defer cancel()

	// Criteria are checked before any network call; an invalid set never
	// reaches the ranking service.
	if err := set.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, err.Error(), set))
		return
	}

	// Resolve candidates concurrently; ids that fail to load are dropped.
	// Each goroutine writes its own slot, so request order is preserved.
	var wg sync.WaitGroup
	loaded := make([]bool, len(req.ProductIDs))

	for i, id := range req.ProductIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			if _, err := services.Store().FetchProduct(ctx, id); err != nil {
				log.Printf("[compare] candidate %d dropped: %v", id, err)
				return
			}
			loaded[i] = true
		}(i, id)
	}
	wg.Wait()

	survivors := make([]int, 0, len(req.ProductIDs))
	for i, id := range req.ProductIDs {
		if loaded[i] {
			survivors = append(survivors, id)
		}
	}

	if len(survivors) < comparison.MinCandidates {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(c, "Not enough products could be loaded to compare", nil))
		return
	}

	result, err := services.Store().Compare(ctx, models.CompareRequest{
		ProductIDs: survivors,
		Criteria:   set.Payload(),
	})
	if err != nil {
		log.Printf("[compare] upstream ranking for %s failed: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison computed", result))
}
