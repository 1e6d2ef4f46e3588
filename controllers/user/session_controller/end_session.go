package session_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

// EndSession godoc
// @Summary End the current session
// @Description Clears the session record and its comparison criteria, and drops the session cookie. The next request starts fresh.
// @Tags User - Session
// @Produce json
// @Success 200 {object} models.ApiResponse "Session ended"
// @Router /user/session [delete]
func EndSession(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.Sessions().End(ctx, sess.ID); err != nil {
		log.Printf("[session.end] %s: %v", sess.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to end session"))
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session ended", nil))
}
