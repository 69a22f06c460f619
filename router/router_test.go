package router

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventex/config"
	"eventex/controllers"
	"eventex/db"
	"eventex/mail"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, log *slog.Logger) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Configuration
	cfg.Database = "sqlite3"
	cfg.DbPath = ":memory:"
	cfg.AutoMigrate = true
	cfg.Security.SecretKey = "test-secret-key"

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	require.Nil(t, err)
	t.Cleanup(func() { database.Close() })

	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := gin.New()
	require.Nil(t, Initialize(r, cfg, log, database, mail.NewOutbox()))
	return r, database
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, database := newEngine(t, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	require.Nil(t, database.Close())
	w = serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNoRoute(t *testing.T) {
	r, _ := newEngine(t, nil)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/nada/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Página não encontrada")
}

func TestLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newEngine(t, slog.New(slog.NewTextHandler(&buf, nil)))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/inscricao/", nil))
	generated := w.Header().Get(REQUEST_ID_HEADER)
	assert.Len(t, generated, 27)
	assert.Contains(t, buf.String(), "GET /inscricao/ -> 200")
	assert.Contains(t, buf.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/inscricao/", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc")
	w = serve(r, req)
	assert.Equal(t, "abc", w.Header().Get(REQUEST_ID_HEADER))
}

func TestServerError(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newEngine(t, slog.New(slog.NewTextHandler(&buf, nil)))
	r.GET("/boom", func(c *gin.Context) {
		controllers.AbortWithServerError(c, errors.New("database exploded"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro no servidor")
	assert.Contains(t, buf.String(), "database exploded")
}

func TestTrailingSlashRedirect(t *testing.T) {
	r, _ := newEngine(t, nil)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/inscricao", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/inscricao/", w.Header().Get("Location"))
}
