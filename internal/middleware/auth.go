package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/token"
)

// Context keys set by JWTAuth.
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// JWTAuth validates the bearer token and loads the caller from the store.
func JWTAuth(tokens token.TokenService, users stores.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			abortWithMessage(c, http.StatusUnauthorized, "not logged in")
			return
		}

		claims, err := tokens.ParseAccessToken(raw)
		if err != nil {
			log.Warn("rejected token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			abortWithMessage(c, http.StatusUnauthorized, "invalid token")
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if errors.Is(err, stores.ErrNotFound) {
			log.Warn("token for unknown user", zap.String("user_id", claims.UserID))
			abortWithMessage(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, u.ID)
		c.Set(UserRoleKey, u.Role)
		c.Next()
	}
}

// RequireRole only lets callers with one of roles through. It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, c.GetString(UserRoleKey)) {
			abortWithMessage(c, http.StatusForbidden, "permission denied")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or "" outside JWTAuth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "failed",
		"message": message,
	})
}
