package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/database"
	"github.com/ericoliveiras/painel-admin/internal/service"
)

func setupRouter(t *testing.T, limite config.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.SessionSecret = "secret-key-for-test"
	cfg.RateLimit = limite
	cfg.Database = config.DatabaseConfig{
		Driver: "sqlite",
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := database.Open(cfg.Database, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	router, err := New(cfg, service.NewServices(db, nil, zap.NewNop()), zap.NewNop())
	require.NoError(t, err)
	return router
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNew_Rotas(t *testing.T) {
	r := setupRouter(t, config.RateLimitConfig{})

	for _, path := range []string{
		"/",
		"/clientes", "/clientes/novo",
		"/produtos", "/produtos/novo",
		"/fornecedores", "/fornecedores/novo",
		"/promocoes", "/promocoes/novo",
		"/api/v1/clientes", "/api/v1/produtos", "/api/v1/fornecedores", "/api/v1/promocoes",
		"/api/v1/marcas", "/api/v1/catalogo/paises",
	} {
		rec := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNew_Metricas(t *testing.T) {
	r := setupRouter(t, config.RateLimitConfig{})
	serve(r, http.MethodGet, "/clientes", "")

	rec := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{endpoint="/clientes",method="GET",status="2xx"}`)
}

func TestNew_LimiteSoNasEscritas(t *testing.T) {
	r := setupRouter(t, config.RateLimitConfig{RPS: 0.001, Burst: 1})

	rec := serve(r, http.MethodPost, "/api/v1/fornecedores", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = serve(r, http.MethodPost, "/api/v1/fornecedores", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	for i := 0; i < 3; i++ {
		rec = serve(r, http.MethodGet, "/api/v1/fornecedores", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
