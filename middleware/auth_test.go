package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter() (*gin.Engine, *gin.Context) {
	var captured gin.Context
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		captured = *c.Copy()
		c.JSON(http.StatusOK, models.Response{Success: true})
	})
	return router, &captured
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router, _ := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router, _ := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router, _ := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	router, captured := authTestRouter()

	token, err := utils.GenerateToken("user-1", "sara@x.com", models.RoleUser)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", captured.GetString("user_id"))
	require.Equal(t, "sara@x.com", captured.GetString("user_email"))
	require.Equal(t, models.RoleUser, captured.GetString("user_role"))
}

func TestOptionalAuthMiddlewareNeverRejects(t *testing.T) {
	var captured gin.Context
	router := gin.New()
	router.POST("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		captured = *c.Copy()
		c.JSON(http.StatusOK, models.Response{Success: true})
	})

	// Anonymous request passes with no identity attached.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, captured.GetString("user_id"))

	// A broken token is ignored rather than rejected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, captured.GetString("user_id"))

	// A valid one attaches the user.
	token, err := utils.GenerateToken("user-1", "sara@x.com", models.RoleUser)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", captured.GetString("user_id"))
}

func TestAdminMiddleware(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if role != "" {
				c.Set("user_role", role)
			}
		})
		router.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, models.Response{Success: true})
		})
		return router
	}

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK},
		{"user denied", models.RoleUser, http.StatusForbidden},
		{"missing role denied", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			newRouter(tt.role).ServeHTTP(w, req)
			require.Equal(t, tt.want, w.Code)
		})
	}
}
