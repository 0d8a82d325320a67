package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

func TestAllowList(t *testing.T) {
	isAdmin := AllowList([]string{"Boss@Example.com", " ops@example.com "})

	assert.True(t, isAdmin("boss@example.com"))
	assert.True(t, isAdmin("OPS@EXAMPLE.COM"))
	assert.False(t, isAdmin("grower@example.com"))

	nobody := AllowList(nil)
	assert.False(t, nobody("boss@example.com"))
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	s, err := store.New(db, 0)
	require.NoError(t, err)
	return s
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := newTestStore(t)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(s, AllowList([]string{"boss@example.com"})))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"grower@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "grower", body.User.Name)
	assert.Equal(t, models.RoleUser, body.User.Role)
	assert.NotEmpty(t, body.Token)

	// identity persisted as the session record
	stored, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, body.User, stored)
}

func TestLoginHandlerAdminPolicy(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := newTestStore(t)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(s, AllowList([]string{"boss@example.com"})))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"boss@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.RoleAdmin, body.User.Role)
	assert.True(t, strings.HasPrefix(body.User.ID, "admin-"))
}

func TestLoginHandlerRejectsBadEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := newTestStore(t)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(s, AllowList(nil)))

	for _, payload := range []string{`{}`, `{"email":"not-an-email"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}
