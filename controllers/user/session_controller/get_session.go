package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/middleware"
	"github.com/Migueeel08/focoshop-sub000/models"
)

// GetSession godoc
// @Summary Get the current session
// @Description Returns the caller's session record. A new session is started transparently when none exists.
// @Tags User - Session
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Session} "Session fetched"
// @Router /user/session [get]
func GetSession(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session fetched", sess))
}
