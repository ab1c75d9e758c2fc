package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/config"
	"staffhub_backend/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	config.AppConfig = cfg
	m.Run()
}

func newProtectedRouter(roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	group := r.Group("/")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorID(c)})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newProtectedRouter()

	t.Run("missing header rejected", func(t *testing.T) {
		w := doRequest(t, r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := doRequest(t, r, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and exposes the actor", func(t *testing.T) {
		token, err := auth.NewToken("worker-42", models.RoleWorker, time.Hour)
		require.NoError(t, err)

		w := doRequest(t, r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "worker-42")
	})
}

func TestRequireRoles(t *testing.T) {
	r := newProtectedRouter(models.RoleHotel, models.RoleAdmin)

	t.Run("listed role allowed", func(t *testing.T) {
		token, err := auth.NewToken("hotel-1", models.RoleHotel, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doRequest(t, r, token).Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := auth.NewToken("admin-1", models.RoleAdmin, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doRequest(t, r, token).Code)
	})

	t.Run("unlisted role refused", func(t *testing.T) {
		token, err := auth.NewToken("worker-1", models.RoleWorker, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, doRequest(t, r, token).Code)
	})
}
