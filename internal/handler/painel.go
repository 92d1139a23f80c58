package handler

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/repository"
	"github.com/ericoliveiras/painel-admin/internal/service"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

// Tela descreve as páginas de uma entidade: rota, títulos, mensagens e como
// converter entre o registro e o formulário.
type Tela[T any, I any] struct {
	Rota     string // ex.: "/clientes"
	Template string // prefixo dos templates: "<Template>_lista.html" e "<Template>_form.html"

	Titulo        string
	TituloNovo    string
	TituloEditar  string
	TituloExcluir string

	Criado        string
	Atualizado    string
	Excluido      string
	NaoEncontrado string

	// FormVazio devolve o formulário com os valores padrão do esquema.
	FormVazio func() I
	FormDe    func(row *T) I
	Descrever func(row *T) string
	Opcoes    func(ctx context.Context) (Opcoes, error)
}

// Painel serve a listagem com filtros, o formulário de criação/edição e a
// confirmação de exclusão de uma entidade.
type Painel[T any, I any, F service.Filtro] struct {
	Store *sessions.CookieStore
	svc   *service.Service[T, I]
	tela  Tela[T, I]
	log   *zap.Logger
}

func NewPainel[T any, I any, F service.Filtro](store *sessions.CookieStore, svc *service.Service[T, I], tela Tela[T, I], log *zap.Logger) *Painel[T, I, F] {
	return &Painel[T, I, F]{
		Store: store,
		svc:   svc,
		tela:  tela,
		log:   log.With(zap.String("tela", tela.Rota)),
	}
}

// Registrar monta as rotas da tela. escrita roda antes das rotas que gravam.
func (p *Painel[T, I, F]) Registrar(r gin.IRouter, escrita ...gin.HandlerFunc) {
	g := r.Group(p.tela.Rota)
	g.GET("", p.Lista)
	g.GET("/novo", p.Novo)
	g.GET("/:id/editar", p.Editar)
	g.GET("/:id/excluir", p.ConfirmarExclusao)
	g.POST("", encadear(escrita, p.Criar)...)
	g.POST("/:id", encadear(escrita, p.Atualizar)...)
	g.POST("/:id/excluir", encadear(escrita, p.Excluir)...)
}

func encadear(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clip(mw), h)
}

// Lista aplica os filtros da query string e renderiza a tabela.
func (p *Painel[T, I, F]) Lista(c *gin.Context) {
	var filtro F
	dados := p.dados(c, p.tela.Titulo)
	dados["Itens"] = []T{}

	if err := c.ShouldBindQuery(&filtro); err != nil {
		dados["Filtro"] = filtro
		dados["ErrorMsg"] = "Filtro inválido: " + err.Error()
		c.HTML(http.StatusBadRequest, p.tela.Template+"_lista.html", dados)
		return
	}
	dados["Filtro"] = filtro

	itens, err := p.svc.List(c.Request.Context(), filtro)
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		dados["Erro"] = verr
		c.HTML(http.StatusUnprocessableEntity, p.tela.Template+"_lista.html", dados)
		return
	case err != nil:
		p.log.Error("erro ao buscar registros", zap.Error(err))
		dados["ErrorMsg"] = err.Error()
		c.HTML(http.StatusOK, p.tela.Template+"_lista.html", dados)
		return
	}

	dados["Itens"] = itens
	c.HTML(http.StatusOK, p.tela.Template+"_lista.html", dados)
}

// Novo renderiza o formulário vazio.
func (p *Painel[T, I, F]) Novo(c *gin.Context) {
	p.renderForm(c, http.StatusOK, p.tela.TituloNovo, p.tela.Rota, p.tela.FormVazio(), nil, false)
}

// Editar renderiza o formulário preenchido com o registro.
func (p *Painel[T, I, F]) Editar(c *gin.Context) {
	id := c.Param("id")
	row, err := p.svc.Get(c.Request.Context(), id)
	if err != nil {
		p.falhaAoBuscar(c, err)
		return
	}
	p.renderForm(c, http.StatusOK, p.tela.TituloEditar, p.tela.Rota+"/"+id, p.tela.FormDe(row), nil, true)
}

// Criar processa o formulário de criação.
func (p *Painel[T, I, F]) Criar(c *gin.Context) {
	var form I
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Formulário inválido: "+err.Error())
		return
	}

	if _, err := p.svc.Create(c.Request.Context(), form); err != nil {
		p.falhaAoGravar(c, p.tela.TituloNovo, p.tela.Rota, form, err, false)
		return
	}

	flash(c, p.Store, p.log, "success", p.tela.Criado)
	c.Redirect(http.StatusFound, p.tela.Rota)
}

// Atualizar processa o formulário de edição.
func (p *Painel[T, I, F]) Atualizar(c *gin.Context) {
	id := c.Param("id")
	var form I
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Formulário inválido: "+err.Error())
		return
	}

	if _, err := p.svc.Update(c.Request.Context(), id, form); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, p.tela.NaoEncontrado)
			return
		}
		p.falhaAoGravar(c, p.tela.TituloEditar, p.tela.Rota+"/"+id, form, err, true)
		return
	}

	flash(c, p.Store, p.log, "success", p.tela.Atualizado)
	c.Redirect(http.StatusFound, p.tela.Rota)
}

// ConfirmarExclusao pede a confirmação antes de excluir.
func (p *Painel[T, I, F]) ConfirmarExclusao(c *gin.Context) {
	id := c.Param("id")
	row, err := p.svc.Get(c.Request.Context(), id)
	if err != nil {
		p.falhaAoBuscar(c, err)
		return
	}

	dados := p.dados(c, p.tela.TituloExcluir)
	dados["ID"] = id
	dados["Descricao"] = p.tela.Descrever(row)
	c.HTML(http.StatusOK, "confirmar_exclusao.html", dados)
}

// Excluir remove o registro confirmado e volta para a listagem.
func (p *Painel[T, I, F]) Excluir(c *gin.Context) {
	err := p.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		flash(c, p.Store, p.log, "error", p.tela.NaoEncontrado)
	case err != nil:
		flash(c, p.Store, p.log, "error", err.Error())
	default:
		flash(c, p.Store, p.log, "success", p.tela.Excluido)
	}
	c.Redirect(http.StatusFound, p.tela.Rota)
}

func (p *Painel[T, I, F]) dados(c *gin.Context, titulo string) gin.H {
	dados := gin.H{
		"Titulo": titulo,
		"Rota":   p.tela.Rota,
		"Erro":   (*validation.Error)(nil),
	}
	opcoes, err := p.tela.Opcoes(c.Request.Context())
	if err != nil {
		p.log.Error("erro ao carregar opções", zap.Error(err))
		dados["ErrorMsg"] = err.Error()
	}
	dados["Opcoes"] = opcoes
	return comFlashes(c, p.Store, p.log, dados)
}

func (p *Painel[T, I, F]) renderForm(c *gin.Context, status int, titulo, acao string, form I, err error, editando bool) {
	dados := p.dados(c, titulo)
	dados["Acao"] = acao
	dados["Form"] = form
	dados["Editando"] = editando

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		dados["Erro"] = verr
	case err != nil:
		dados["ErrorMsg"] = err.Error()
	}
	c.HTML(status, p.tela.Template+"_form.html", dados)
}

// falhaAoGravar reabre o formulário com o que foi enviado: erro de validação
// aparece junto do campo, erro do banco aparece como veio.
func (p *Painel[T, I, F]) falhaAoGravar(c *gin.Context, titulo, acao string, form I, err error, editando bool) {
	var verr *validation.Error
	status := http.StatusBadGateway
	if errors.As(err, &verr) {
		status = http.StatusUnprocessableEntity
	}
	p.renderForm(c, status, titulo, acao, form, err, editando)
}

func (p *Painel[T, I, F]) falhaAoBuscar(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, p.tela.NaoEncontrado)
		return
	}
	p.log.Error("erro ao buscar registro", zap.Error(err))
	c.String(http.StatusBadGateway, err.Error())
}
