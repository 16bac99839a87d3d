package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"postboard/internal/auth"
)

const identityKey = "identity"

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	}
}

// requireAuth resolves the caller identity from the bearer token once per
// request and stores it in the request context. The role comes from the user
// record, not the token, so role changes take effect immediately.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		userID, err := auth.ParseToken(h.jwtSecret, strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		c.Set(identityKey, &auth.Identity{UserID: user.ID, Role: user.Role})
		c.Next()
	}
}

// can aborts the request before the handler runs when the gate denies the
// action for the current caller.
func (h *Handler) can(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.gate.Authorize(identityFromContext(c), action, nil); err != nil {
			h.respondError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func identityFromContext(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, ok := v.(*auth.Identity)
	if !ok {
		return nil
	}
	return ident
}
