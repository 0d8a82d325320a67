package builderController

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

	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	s, err := store.New(db, 0)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/builder/default", DefaultConfigHandler())
	r.POST("/builder/quote", QuoteHandler(s))
	r.POST("/builder/compose", ComposeHandler(s))
	return r
}

func TestDefaultConfigEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/builder/default", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Config struct {
			Substrate string `json:"substrate"`
			Layout    string `json:"layout"`
		} `json:"config"`
		Price int `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "linen", body.Config.Substrate)
	assert.Equal(t, "single", body.Config.Layout)
	assert.Equal(t, 1500, body.Price)
}

func TestQuoteResolvesAutoMode(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"autoMode": true, "layout": "quad"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/builder/quote", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Config struct {
			HasController bool `json:"hasController"`
			HasPump       bool `json:"hasPump"`
		} `json:"config"`
		Price int `json:"price"`
		Units int `json:"units"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// the echoed config shows the forced dependencies
	assert.True(t, body.Config.HasController)
	assert.True(t, body.Config.HasPump)
	assert.Equal(t, 4, body.Units)
	// (1500+2500+300+350+250+600+1200+800) * 4 * 0.9
	assert.Equal(t, 27000, body.Price)
}

func TestQuoteRejectsUnknownSeed(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"seeds": ["seed-nope"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/builder/quote", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteRejectsMalformedEnum(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"layout": "hex"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/builder/quote", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComposeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"layout": "quad", "lidType": "domed"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/builder/compose", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Assembly struct {
			Units      []json.RawMessage `json:"units"`
			Connectors []json.RawMessage `json:"connectors"`
			Struts     []json.RawMessage `json:"struts"`
		} `json:"assembly"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Assembly.Units, 4)
	assert.Len(t, body.Assembly.Connectors, 2)
	assert.Len(t, body.Assembly.Struts, 8)
}
