// Package routes monta o roteador gin do painel e da API.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/filter"
	"github.com/ericoliveiras/painel-admin/internal/handler"
	"github.com/ericoliveiras/painel-admin/internal/logger"
	"github.com/ericoliveiras/painel-admin/internal/metrics"
	"github.com/ericoliveiras/painel-admin/internal/middleware"
	"github.com/ericoliveiras/painel-admin/internal/model"
	"github.com/ericoliveiras/painel-admin/internal/service"
	"github.com/ericoliveiras/painel-admin/internal/validation"
	"github.com/ericoliveiras/painel-admin/internal/view"
)

// New devolve o roteador com as telas, a API em /api/v1 e /metrics.
func New(cfg *config.AppConfig, s *service.Services, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(log), metrics.Middleware())
	router.SetHTMLTemplate(tmpl)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// limite por IP só nas rotas que gravam
	escrita := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware()

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/", handler.NewHomeHandler(store, s, log).ShowHomePage)

	handler.NewPainel[model.Cliente, validation.ClienteForm, filter.Clientes](store, s.Clientes, handler.TelaClientes(), log).Registrar(router, escrita)
	handler.NewPainel[model.Produto, validation.ProdutoForm, filter.Produtos](store, s.Produtos, handler.TelaProdutos(s.Opcoes), log).Registrar(router, escrita)
	handler.NewPainel[model.Fornecedor, validation.FornecedorForm, filter.Fornecedores](store, s.Fornecedores, handler.TelaFornecedores(), log).Registrar(router, escrita)
	handler.NewPainel[model.Promocao, validation.PromocaoForm, filter.Promocoes](store, s.Promocoes, handler.TelaPromocoes(s.Opcoes), log).Registrar(router, escrita)

	api := router.Group("/api/v1")
	{
		handler.NewAPI[model.Cliente, validation.ClienteForm, filter.Clientes](s.Clientes, log).Registrar(api, escrita)
		handler.NewAPI[model.Produto, validation.ProdutoForm, filter.Produtos](s.Produtos, log).Registrar(api, escrita)
		handler.NewAPI[model.Fornecedor, validation.FornecedorForm, filter.Fornecedores](s.Fornecedores, log).Registrar(api, escrita)
		handler.NewAPI[model.Promocao, validation.PromocaoForm, filter.Promocoes](s.Promocoes, log).Registrar(api, escrita)

		aux := handler.NewAuxiliar(s.Opcoes, log)
		api.GET("/marcas", aux.Marcas)
		api.GET("/catalogo/paises", aux.Paises)
	}

	return router, nil
}
