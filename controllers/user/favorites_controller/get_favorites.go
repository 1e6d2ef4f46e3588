package favorites_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

func requireSession(c *gin.Context) (*models.Session, bool) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return nil, false
	}
	return sess, true
}

func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse(c, apiErr.Message))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Favorites service unavailable"))
}

// GetFavorites godoc
// @Summary List favorite products
// @Description Returns the session's favorited products.
// @Tags User - Favorites
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Product} "Favorites fetched"
// @Failure 502 {object} models.ApiResponse "Favorites service unavailable"
// @Router /user/favorites [get]
func GetFavorites(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := services.Store().GetFavorites(ctx, sess.ID)
	if err != nil {
		log.Printf("[favorites.get] %s: %v", sess.ID, err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched", items))
}
