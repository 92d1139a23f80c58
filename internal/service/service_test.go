package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/database"
	"github.com/ericoliveiras/painel-admin/internal/filter"
	"github.com/ericoliveiras/painel-admin/internal/model"
	"github.com/ericoliveiras/painel-admin/internal/repository"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func setupServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	s := NewServices(db, nil, zap.NewNop())
	s.Clientes.mapper = ClienteMapper{Custo: bcrypt.MinCost}
	return s, db
}

func clienteForm(nome string) validation.ClienteForm {
	return validation.ClienteForm{
		Nome:            nome,
		Sobrenome:       "Souza",
		TelefoneOuEmail: "11999990000",
		Genero:          "Feminino",
		DataNascimento:  "1992-03-15",
		Senha:           "Senha123!",
		Pais:            "Brasil",
	}
}

func nomesClientes(cs []model.Cliente) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Nome)
	}
	return out
}

// criar, filtrar e excluir um cliente, como na tela de clientes
func TestClientes_FluxoCompleto(t *testing.T) {
	ctx := context.Background()
	s, db := setupServices(t)

	_, err := s.Clientes.Create(ctx, clienteForm("Beatriz"))
	require.NoError(t, err)
	novo, err := s.Clientes.Create(ctx, clienteForm("Mariana"))
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Cliente{}).Where("id = ?", novo.ID).
		Update("created_at", time.Now().Add(time.Minute)).Error)

	lista, err := s.Clientes.List(ctx, filter.Clientes{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mariana", "Beatriz"}, nomesClientes(lista))

	lista, err = s.Clientes.List(ctx, filter.Clientes{Nome: "arian"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mariana"}, nomesClientes(lista))

	lista, err = s.Clientes.List(ctx, filter.Clientes{Nome: "xyz"})
	require.NoError(t, err)
	assert.Empty(t, lista)

	require.NoError(t, s.Clientes.Delete(ctx, novo.ID))
	lista, err = s.Clientes.List(ctx, filter.Clientes{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Beatriz"}, nomesClientes(lista))
}

func TestClientes_SenhaGuardadaComoHash(t *testing.T) {
	ctx := context.Background()
	s, _ := setupServices(t)

	c, err := s.Clientes.Create(ctx, clienteForm("Lucia"))
	require.NoError(t, err)
	assert.NotEqual(t, "Senha123!", c.SenhaHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.SenhaHash), []byte("Senha123!")))
	require.NotNil(t, c.Pais)
	assert.Equal(t, "BR", *c.Pais)
	assert.Nil(t, c.Cidade)

	// edição sem senha mantém o hash
	f := clienteForm("Lucia")
	f.Senha = ""
	f.Cidade = "Recife"
	upd, err := s.Clientes.Update(ctx, c.ID, f)
	require.NoError(t, err)
	assert.Equal(t, c.SenhaHash, upd.SenhaHash)
	require.NotNil(t, upd.Cidade)
	assert.Equal(t, "Recife", *upd.Cidade)

	// edição com senha nova troca o hash
	f.Senha = "NovaSenha9"
	upd, err = s.Clientes.Update(ctx, c.ID, f)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(upd.SenhaHash), []byte("NovaSenha9")))
}

func TestCreate_ErroDeValidacaoNaoGrava(t *testing.T) {
	ctx := context.Background()
	s, db := setupServices(t)

	f := clienteForm("Ana3")
	_, err := s.Clientes.Create(ctx, f)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nome", verr.Field)

	var total int64
	require.NoError(t, db.Model(&model.Cliente{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestUpdate_Inexistente(t *testing.T) {
	s, _ := setupServices(t)
	_, err := s.Fornecedores.Update(context.Background(), uuid.NewString(), validation.FornecedorForm{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProdutos_ComMarca(t *testing.T) {
	ctx := context.Background()
	s, db := setupServices(t)
	_, err := database.SeedMarcas(ctx, db, zap.NewNop(), []string{"Reserva", "Hering"})
	require.NoError(t, err)

	marcas, err := s.Opcoes.Marcas(ctx)
	require.NoError(t, err)
	require.Len(t, marcas, 2)
	assert.Equal(t, "Hering", marcas[0].Nome)

	p, err := s.Produtos.Create(ctx, validation.ProdutoForm{
		NomeProduto:       "Camiseta Básica",
		Tipo:              "Camiseta",
		Caracteristicas:   []string{"Algodão", "Gola V, canelada"},
		MarcaID:           marcas[0].ID,
		Tamanho:           "M",
		Cor:               []string{"Azul", "Preto"},
		Preco:             "49.90",
		QuantidadeEstoque: "",
		ImagemURL:         "https://exemplo.com/c.png",
		Tecido:            "Algodão",
	})
	require.NoError(t, err)
	assert.Equal(t, 49.9, p.Preco)
	assert.Zero(t, p.QuantidadeEstoque)

	got, err := s.Produtos.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Marca)
	assert.Equal(t, "Hering", got.Marca.Nome)
	assert.Equal(t, model.Lista{"Algodão", "Gola V, canelada"}, got.Caracteristicas)

	lista, err := s.Produtos.List(ctx, filter.Produtos{MarcaID: marcas[0].ID, PrecoMax: "50"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	require.NotNil(t, lista[0].Marca)

	resumo, err := s.Opcoes.ProdutosResumo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ProdutoResumo{{ID: p.ID, NomeProduto: "Camiseta Básica"}}, resumo)

	atualizado, err := s.Produtos.Update(ctx, p.ID, validation.ProdutoForm{
		NomeProduto:       "Camiseta Básica",
		Tipo:              "Camiseta",
		Caracteristicas:   []string{"Algodão"},
		MarcaID:           marcas[1].ID,
		Tamanho:           "G",
		Cor:               []string{"Azul"},
		Preco:             "59.90",
		QuantidadeEstoque: "7",
		ImagemURL:         "https://exemplo.com/c.png",
		Tecido:            "Algodão",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, atualizado.QuantidadeEstoque)
	require.NotNil(t, atualizado.Marca)
	assert.Equal(t, "Reserva", atualizado.Marca.Nome)
}

func TestProdutoMapper_QuantidadeForaDoIntervalo(t *testing.T) {
	form := validation.ProdutoForm{
		NomeProduto:       "Camiseta Básica",
		Tipo:              "Camiseta",
		Caracteristicas:   []string{"Algodão"},
		MarcaID:           uuid.NewString(),
		Tamanho:           "M",
		Cor:               []string{"Azul"},
		Preco:             "49.90",
		QuantidadeEstoque: "1e30",
		ImagemURL:         "https://exemplo.com/c.png",
		Tecido:            "Algodão",
	}
	_, err := ProdutoMapper{}.Novo(form)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantidade_estoque", verr.Field)

	form.QuantidadeEstoque = "2147483647"
	p, err := ProdutoMapper{}.Novo(form)
	require.NoError(t, err)
	assert.Equal(t, 2147483647, p.QuantidadeEstoque)
}

func TestPromocoes_FiltroDeDatasECodigo(t *testing.T) {
	ctx := context.Background()
	s, _ := setupServices(t)

	base := validation.PromocaoForm{
		TipoDesconto:         "Percentual",
		ValorDesconto:        "10",
		AplicarTodosProdutos: true,
	}
	verao := base
	verao.Nome, verao.DataInicio, verao.DataTermino = "Verão", "2024-01-01", "2024-02-28"
	verao.CodigoPromocional = "VERAO10"
	inverno := base
	inverno.Nome, inverno.DataInicio, inverno.DataTermino = "Inverno", "2024-06-01", "2024-07-31"

	_, err := s.Promocoes.Create(ctx, verao)
	require.NoError(t, err)
	p, err := s.Promocoes.Create(ctx, inverno)
	require.NoError(t, err)
	assert.Nil(t, p.CodigoPromocional)
	assert.Equal(t, model.StatusAtivo, p.Status)

	lista, err := s.Promocoes.List(ctx, filter.Promocoes{})
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Inverno", lista[0].Nome)

	lista, err = s.Promocoes.List(ctx, filter.Promocoes{DataInicio: "2024-05-01"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Inverno", lista[0].Nome)

	lista, err = s.Promocoes.List(ctx, filter.Promocoes{DataTermino: "2024-02-28"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Verão", lista[0].Nome)

	lista, err = s.Promocoes.List(ctx, filter.Promocoes{TemCodigo: "on"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Verão", lista[0].Nome)
}

func TestFornecedores_PaisPorNome(t *testing.T) {
	ctx := context.Background()
	s, _ := setupServices(t)

	f, err := s.Fornecedores.Create(ctx, validation.FornecedorForm{
		Nome:    "  Malhas Sul  ",
		CpfCnpj: "123.456.789-01",
		Pais:    "Brasil",
		Estado:  "Paraná",
		Cidade:  "Curitiba",
	})
	require.NoError(t, err)
	assert.Equal(t, "Malhas Sul", f.Nome)
	assert.Equal(t, "BR", f.Pais)
	assert.Equal(t, model.StatusAtivo, f.Status)

	for _, pais := range []string{"BR", "Brasil"} {
		lista, err := s.Fornecedores.List(ctx, filter.Fornecedores{Pais: pais})
		require.NoError(t, err)
		assert.Len(t, lista, 1, pais)
	}
}
