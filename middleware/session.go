package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Migueeel08/focoshop-sub000/config"
	"github.com/Migueeel08/focoshop-sub000/models"
	"github.com/Migueeel08/focoshop-sub000/services"
)

const sessionCookie = "session_id"

// Session resolves the caller's storefront session from the X-Session-ID
// header or the session_id cookie, starting a fresh one when neither resolves.
// The session is stored in the gin context under "session".
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		id := c.GetHeader("X-Session-ID")
		if id == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				id = cookie
			}
		}

		if id != "" {
			sess, err := services.Sessions().Get(ctx, id)
			if err == nil {
				if err := services.Sessions().Touch(ctx, id); err != nil {
					log.Printf("[session.touch] %s: %v", id, err)
				}
				c.Set("session", sess)
				c.Next()
				return
			}
			if !errors.Is(err, services.ErrSessionNotFound) {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session store unavailable"))
				c.Abort()
				return
			}
			// Expired or unknown id falls through to a fresh session.
		}

		sess, err := services.Sessions().Start(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
			c.Abort()
			return
		}

		c.SetCookie(sessionCookie, sess.ID, 86400, "/", "", false, true)
		c.Header("X-Session-ID", sess.ID)
		c.Set("session", sess)
		c.Next()
	}
}

// GetSessionFromContext returns the resolved session, or nil when the request
// did not pass through the Session middleware.
func GetSessionFromContext(c *gin.Context) *models.Session {
	if raw, exists := c.Get("session"); exists {
		if sess, ok := raw.(*models.Session); ok {
			return sess
		}
	}
	return nil
}
