package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/catalog"
	"github.com/ericoliveiras/painel-admin/internal/repository"
	"github.com/ericoliveiras/painel-admin/internal/service"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

// API expõe uma entidade em JSON: select, insert, update e delete.
type API[T any, I any, F service.Filtro] struct {
	svc *service.Service[T, I]
	log *zap.Logger
}

func NewAPI[T any, I any, F service.Filtro](svc *service.Service[T, I], log *zap.Logger) *API[T, I, F] {
	return &API[T, I, F]{svc: svc, log: log.With(zap.String("api", svc.Entidade()))}
}

// Registrar monta as rotas em r sob /<entidade>.
func (a *API[T, I, F]) Registrar(r gin.IRouter, escrita ...gin.HandlerFunc) {
	g := r.Group("/" + a.svc.Entidade())
	g.GET("", a.List)
	g.GET("/:id", a.Get)
	g.POST("", encadear(escrita, a.Create)...)
	g.PUT("/:id", encadear(escrita, a.Update)...)
	g.DELETE("/:id", encadear(escrita, a.Delete)...)
}

func (a *API[T, I, F]) List(c *gin.Context) {
	var filtro F
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := a.svc.List(c.Request.Context(), filtro)
	if err != nil {
		a.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *API[T, I, F]) Get(c *gin.Context) {
	row, err := a.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (a *API[T, I, F]) Create(c *gin.Context) {
	var form I
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := a.svc.Create(c.Request.Context(), form)
	if err != nil {
		a.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (a *API[T, I, F]) Update(c *gin.Context) {
	var form I
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := a.svc.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		a.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete só exclui com ?confirmar=true.
func (a *API[T, I, F]) Delete(c *gin.Context) {
	if c.Query("confirmar") != "true" {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "Confirme a exclusão com confirmar=true"})
		return
	}
	if err := a.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API[T, I, F]) responderErro(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, verr)
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro não encontrado"})
	default:
		a.log.Error("erro no banco", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// Auxiliar serve as listas usadas pelos formulários.
type Auxiliar struct {
	Opcoes *service.Opcoes
	log    *zap.Logger
}

func NewAuxiliar(opcoes *service.Opcoes, log *zap.Logger) *Auxiliar {
	return &Auxiliar{Opcoes: opcoes, log: log}
}

// Marcas lista as marcas em ordem alfabética.
func (h *Auxiliar) Marcas(c *gin.Context) {
	marcas, err := h.Opcoes.Marcas(c.Request.Context())
	if err != nil {
		h.log.Error("erro ao buscar marcas", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, marcas)
}

// Paises lista o catálogo de países e estados.
func (h *Auxiliar) Paises(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Padrao().Paises())
}
