package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/service"
)

type area struct {
	Titulo string
	Rota   string
	total  func(context.Context) (int64, error)
	Total  int64
}

type HomeHandler struct {
	Store *sessions.CookieStore
	areas []area
	log   *zap.Logger
}

func NewHomeHandler(store *sessions.CookieStore, s *service.Services, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		Store: store,
		log:   log,
		areas: []area{
			{Titulo: "Clientes", Rota: "/clientes", total: s.Clientes.Total},
			{Titulo: "Produtos", Rota: "/produtos", total: s.Produtos.Total},
			{Titulo: "Fornecedores", Rota: "/fornecedores", total: s.Fornecedores.Total},
			{Titulo: "Promoções", Rota: "/promocoes", total: s.Promocoes.Total},
		},
	}
}

// ShowHomePage renderiza o painel com o total de registros de cada área.
func (h *HomeHandler) ShowHomePage(c *gin.Context) {
	dados := comFlashes(c, h.Store, h.log, gin.H{"Titulo": "Painel Administrativo"})

	resumo := make([]area, 0, len(h.areas))
	for _, a := range h.areas {
		n, err := a.total(c.Request.Context())
		if err != nil {
			h.log.Error("erro ao contar registros", zap.String("area", a.Rota), zap.Error(err))
			dados["ErrorMsg"] = err.Error()
		}
		a.Total = n
		resumo = append(resumo, a)
	}
	dados["Resumo"] = resumo

	c.HTML(http.StatusOK, "index.html", dados)
}
