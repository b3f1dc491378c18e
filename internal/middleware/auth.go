package middleware

import (
	"net/http"
	"strings"

	"github.com/jpconwi/communitycare/config"
	"github.com/jpconwi/communitycare/internal/auth"
	"github.com/jpconwi/communitycare/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets user_id, email and role in
// the request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetActor returns the authenticated caller from context (must be used after
// AuthRequired).
func GetActor(c *gin.Context) service.Actor {
	var actor service.Actor
	if v, ok := c.Get("user_id"); ok {
		actor.ID = v.(uint)
	}
	if v, ok := c.Get("role"); ok {
		actor.Role = v.(string)
	}
	return actor
}
