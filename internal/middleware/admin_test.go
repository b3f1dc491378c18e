package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jpconwi/communitycare/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(role string, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if authed {
			c.Set("user_id", uint(1))
			c.Set("role", role)
		}
		c.Next()
	})
	r.DELETE("/admin/logs", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		authed bool
		want   int
	}{
		{"admin allowed", domain.RoleAdmin, true, http.StatusOK},
		{"user forbidden", domain.RoleUser, true, http.StatusForbidden},
		{"unauthenticated forbidden", "", false, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/admin/logs", nil)
			adminTestRouter(tt.role, tt.authed).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
