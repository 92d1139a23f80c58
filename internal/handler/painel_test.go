package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/database"
	"github.com/ericoliveiras/painel-admin/internal/filter"
	"github.com/ericoliveiras/painel-admin/internal/model"
	"github.com/ericoliveiras/painel-admin/internal/service"
	"github.com/ericoliveiras/painel-admin/internal/validation"
	"github.com/ericoliveiras/painel-admin/internal/view"
)

type ambiente struct {
	router *gin.Engine
	svc    *service.Services
	db     *gorm.DB
}

func setup(t *testing.T) *ambiente {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := zap.NewNop()
	s := service.NewServices(db, nil, log)

	tmpl, err := view.Templates()
	require.NoError(t, err)
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	store := sessions.NewCookieStore([]byte("secret-key-for-test"))
	router.GET("/", NewHomeHandler(store, s, log).ShowHomePage)
	NewPainel[model.Cliente, validation.ClienteForm, filter.Clientes](store, s.Clientes, TelaClientes(), log).Registrar(router)
	NewPainel[model.Produto, validation.ProdutoForm, filter.Produtos](store, s.Produtos, TelaProdutos(s.Opcoes), log).Registrar(router)
	NewPainel[model.Fornecedor, validation.FornecedorForm, filter.Fornecedores](store, s.Fornecedores, TelaFornecedores(), log).Registrar(router)
	NewPainel[model.Promocao, validation.PromocaoForm, filter.Promocoes](store, s.Promocoes, TelaPromocoes(s.Opcoes), log).Registrar(router)

	api := router.Group("/api/v1")
	NewAPI[model.Fornecedor, validation.FornecedorForm, filter.Fornecedores](s.Fornecedores, log).Registrar(api)
	NewAPI[model.Promocao, validation.PromocaoForm, filter.Promocoes](s.Promocoes, log).Registrar(api)
	aux := NewAuxiliar(s.Opcoes, log)
	api.GET("/marcas", aux.Marcas)
	api.GET("/catalogo/paises", aux.Paises)

	return &ambiente{router: router, svc: s, db: db}
}

func (a *ambiente) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *ambiente) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func formCliente() url.Values {
	return url.Values{
		"nome":              {"Mariana"},
		"sobrenome":         {"Souza"},
		"telefone_ou_email": {"mariana@exemplo.com"},
		"genero":            {"Feminino"},
		"data_nascimento":   {"1992-03-15"},
		"senha":             {"Senha123!"},
		"pais":              {"BR"},
		"estado":            {"Pernambuco"},
		"cidade":            {"Recife"},
		"numero":            {"120"},
	}
}

func formFornecedor(nome string) url.Values {
	return url.Values{
		"nome":     {nome},
		"cpf_cnpj": {"12.345.678/0001-99"},
		"pais":     {"BR"},
		"estado":   {"Paraná"},
		"cidade":   {"Curitiba"},
		"status":   {"Ativo"},
	}
}

func novoFornecedor(t *testing.T, a *ambiente, nome string) *model.Fornecedor {
	t.Helper()
	f, err := a.svc.Fornecedores.Create(context.Background(), validation.FornecedorForm{
		Nome:    nome,
		CpfCnpj: "12.345.678/0001-99",
		Pais:    "BR",
		Estado:  "Paraná",
		Cidade:  "Curitiba",
	})
	require.NoError(t, err)
	return f
}

func TestShowHomePage(t *testing.T) {
	a := setup(t)
	novoFornecedor(t, a, "Malhas Sul")

	rec := a.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/fornecedores">Fornecedores</a></td><td>1</td>`)
}

func TestLista_Vazia(t *testing.T) {
	a := setup(t)

	for path, msg := range map[string]string{
		"/clientes":     "Nenhum cliente encontrado.",
		"/produtos":     "Nenhum produto encontrado.",
		"/fornecedores": "Nenhum fornecedor encontrado.",
		"/promocoes":    "Nenhuma promoção encontrada.",
	} {
		rec := a.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), msg, path)
	}
}

func TestLista_FiltroInvalido(t *testing.T) {
	a := setup(t)

	rec := a.get("/clientes?genero=Nenhum")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gênero inválido")
}

func TestLista_Filtra(t *testing.T) {
	a := setup(t)
	novoFornecedor(t, a, "Malhas Sul")
	novoFornecedor(t, a, "Tecidos Norte")

	rec := a.get("/fornecedores?nome=malhas")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Malhas Sul")
	assert.NotContains(t, rec.Body.String(), "Tecidos Norte")
}

func TestNovo_ValoresPadrao(t *testing.T) {
	a := setup(t)

	rec := a.get("/fornecedores/novo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="BR" selected>Brasil</option>`)
	assert.Contains(t, rec.Body.String(), `action="/fornecedores"`)
}

func TestCriar_ErroDeValidacaoReabreFormulario(t *testing.T) {
	a := setup(t)

	form := formCliente()
	form.Set("nome", "Mariana3")
	rec := a.post("/clientes", form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Nome deve conter apenas letras")
	assert.Contains(t, body, `value="Mariana3"`)
	assert.NotContains(t, body, "Senha123!")

	lista, err := a.svc.Clientes.List(context.Background(), filter.Clientes{})
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestCriar_RedirecionaComMensagem(t *testing.T) {
	a := setup(t)

	rec := a.post("/clientes", formCliente())
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/clientes", rec.Header().Get("Location"))

	rec = a.get("/clientes", rec.Result().Cookies()...)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cliente cadastrado com sucesso!")
	assert.Contains(t, body, "Mariana Souza")
	assert.Contains(t, body, "Brasil")
}

func TestCriar_ErroDoBancoAparecePorInteiro(t *testing.T) {
	a := setup(t)
	require.NoError(t, a.db.Exec("DROP TABLE fornecedores").Error)

	rec := a.post("/fornecedores", formFornecedor("Malhas Sul"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such table: fornecedores")
	assert.Contains(t, rec.Body.String(), `value="Malhas Sul"`)
}

func TestEditar_PreencheEAtualiza(t *testing.T) {
	a := setup(t)
	f := novoFornecedor(t, a, "Malhas Sul")

	rec := a.get("/fornecedores/" + f.ID + "/editar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Malhas Sul"`)
	assert.Contains(t, rec.Body.String(), `action="/fornecedores/`+f.ID+`"`)

	form := formFornecedor("Malhas Sul e Norte")
	form.Set("status", "Inativo")
	rec = a.post("/fornecedores/"+f.ID, form)
	require.Equal(t, http.StatusFound, rec.Code)

	got, err := a.svc.Fornecedores.Get(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Malhas Sul e Norte", got.Nome)
	assert.Equal(t, model.StatusInativo, got.Status)
}

func TestEditar_Inexistente(t *testing.T) {
	a := setup(t)

	rec := a.get("/fornecedores/" + uuid.NewString() + "/editar")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fornecedor não encontrado.")

	rec = a.post("/fornecedores/"+uuid.NewString(), formFornecedor("X"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExcluir_PedeConfirmacao(t *testing.T) {
	a := setup(t)
	f := novoFornecedor(t, a, "Malhas Sul")

	rec := a.get("/fornecedores/" + f.ID + "/excluir")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tem certeza que deseja excluir <strong>Malhas Sul</strong>?")

	// a página de confirmação não exclui nada
	_, err := a.svc.Fornecedores.Get(context.Background(), f.ID)
	require.NoError(t, err)

	rec = a.post("/fornecedores/"+f.ID+"/excluir", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = a.get("/fornecedores", rec.Result().Cookies()...)
	assert.Contains(t, rec.Body.String(), "Fornecedor excluído com sucesso!")
	assert.Contains(t, rec.Body.String(), "Nenhum fornecedor encontrado.")
}

func TestExcluir_Inexistente(t *testing.T) {
	a := setup(t)

	rec := a.post("/promocoes/"+uuid.NewString()+"/excluir", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = a.get("/promocoes", rec.Result().Cookies()...)
	assert.Contains(t, rec.Body.String(), "Promoção não encontrada.")
}

func TestProdutos_FormularioComMarcas(t *testing.T) {
	a := setup(t)
	ctx := context.Background()
	_, err := database.SeedMarcas(ctx, a.db, zap.NewNop(), []string{"Hering"})
	require.NoError(t, err)
	marcas, err := a.svc.Opcoes.Marcas(ctx)
	require.NoError(t, err)
	require.Len(t, marcas, 1)

	rec := a.get("/produtos/novo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="`+marcas[0].ID+`" >Hering</option>`)

	rec = a.post("/produtos", url.Values{
		"nome_produto":          {"Camiseta Básica"},
		"tipo":                  {"Camiseta"},
		"caracteristicas_texto": {"Algodão, 100%\r\nLeve"},
		"marca_id":              {marcas[0].ID},
		"tamanho":               {"M"},
		"cor":                   {"Azul", "Preto"},
		"preco":                 {"49.90"},
		"quantidade_estoque":    {"3"},
		"imagem_url":            {"https://exemplo.com/c.png"},
		"tecido":                {"Algodão"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	lista, err := a.svc.Produtos.List(ctx, filter.Produtos{})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, model.Lista{"Azul", "Preto"}, lista[0].Cor)
	assert.Equal(t, 3, lista[0].QuantidadeEstoque)
	assert.Equal(t, model.Lista{"Algodão, 100%", "Leve"}, lista[0].Caracteristicas)

	rec = a.get("/produtos/" + lista[0].ID + "/editar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">Algodão, 100%\nLeve</textarea>")

	rec = a.get("/produtos")
	assert.Contains(t, rec.Body.String(), "Camiseta Básica")
	assert.Contains(t, rec.Body.String(), "Hering")
}

func TestPromocoes_AplicarATodos(t *testing.T) {
	a := setup(t)

	form := url.Values{
		"nome":           {"Verão"},
		"tipo_desconto":  {"Percentual"},
		"valor_desconto": {"15"},
		"data_inicio":    {"2024-01-01"},
		"data_termino":   {"2023-12-01"},
		"status":         {"Ativo"},
	}
	rec := a.post("/promocoes", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data de término deve ser maior ou igual à data de início")

	form.Set("data_termino", "2024-02-28")
	rec = a.post("/promocoes", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Selecione ao menos um produto ou aplique a todos os produtos")

	form.Set("aplicar_todos_produtos", "true")
	rec = a.post("/promocoes", form)
	require.Equal(t, http.StatusFound, rec.Code)

	lista, err := a.svc.Promocoes.List(context.Background(), filter.Promocoes{})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.True(t, lista[0].AplicarTodosProdutos)
	assert.Empty(t, lista[0].ProdutosAplicaveis)
}
