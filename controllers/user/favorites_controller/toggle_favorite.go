package favorites_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Adds the product to the session's favorites, or removes it when already present. The response reports which way the toggle went.
// @Tags User - Favorites
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.FavoriteToggleResult} "Favorite toggled"
// @Failure 400 {object} models.ApiResponse "Invalid product id"
// @Failure 502 {object} models.ApiResponse "Favorites service unavailable"
// @Router /user/favorites/{id} [put]
func ToggleFavorite(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.Store().ToggleFavorite(ctx, sess.ID, productID)
	if err != nil {
		log.Printf("[favorites.toggle] %s product %d: %v", sess.ID, productID, err)
		respondUpstreamError(c, err)
		return
	}

	events.Publish(events.New(events.FavoritesChanged, sess.ID, result))

	message := "Removed from favorites"
	if result.Added {
		message = "Added to favorites"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
}
