package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ericoliveiras/painel-admin/internal/catalog"
	"github.com/ericoliveiras/painel-admin/internal/model"
	"github.com/ericoliveiras/painel-admin/internal/query"
	"github.com/ericoliveiras/painel-admin/internal/repository"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

type (
	Clientes     = Service[model.Cliente, validation.ClienteForm]
	Produtos     = Service[model.Produto, validation.ProdutoForm]
	Fornecedores = Service[model.Fornecedor, validation.FornecedorForm]
	Promocoes    = Service[model.Promocao, validation.PromocaoForm]
)

// Services reúne os serviços das quatro entidades e as opções dos formulários.
type Services struct {
	Clientes     *Clientes
	Produtos     *Produtos
	Fornecedores *Fornecedores
	Promocoes    *Promocoes
	Opcoes       *Opcoes
}

// NewServices monta os serviços sobre db. cache pode ser nil (sem cache).
func NewServices(db *gorm.DB, cache repository.ListCache, log *zap.Logger) *Services {
	opts := []repository.Option{repository.WithLogger(log)}
	if cache != nil {
		opts = append(opts, repository.WithCache(cache))
	}

	produtos := repository.NewTable[model.Produto](db, opts...)
	marcas := repository.NewTable[model.Marca](db, opts...)

	return &Services{
		Clientes:     New[model.Cliente, validation.ClienteForm]("clientes", repository.NewTable[model.Cliente](db, opts...), ClienteMapper{}, log),
		Produtos:     New[model.Produto, validation.ProdutoForm]("produtos", produtos, ProdutoMapper{}, log, "Marca"),
		Fornecedores: New[model.Fornecedor, validation.FornecedorForm]("fornecedores", repository.NewTable[model.Fornecedor](db, opts...), FornecedorMapper{}, log),
		Promocoes:    New[model.Promocao, validation.PromocaoForm]("promocoes", repository.NewTable[model.Promocao](db, opts...), PromocaoMapper{}, log),
		Opcoes:       &Opcoes{marcas: marcas, produtos: produtos},
	}
}

// ClienteMapper guarda a senha como hash bcrypt. Na edição, senha vazia
// mantém o hash atual.
type ClienteMapper struct {
	Custo int
}

func (m ClienteMapper) Novo(f validation.ClienteForm) (*model.Cliente, error) {
	v, err := f.Validate(false)
	if err != nil {
		return nil, err
	}
	hash, err := m.hash(v.Senha)
	if err != nil {
		return nil, err
	}
	return clienteDe(v, hash), nil
}

func (m ClienteMapper) Alterado(f validation.ClienteForm, atual *model.Cliente) (*model.Cliente, error) {
	v, err := f.Validate(true)
	if err != nil {
		return nil, err
	}
	hash := atual.SenhaHash
	if v.Senha != "" {
		if hash, err = m.hash(v.Senha); err != nil {
			return nil, err
		}
	}
	return clienteDe(v, hash), nil
}

func (m ClienteMapper) hash(senha string) (string, error) {
	custo := m.Custo
	if custo == 0 {
		custo = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(senha), custo)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return string(h), nil
}

func clienteDe(v validation.Cliente, hash string) *model.Cliente {
	nascimento, _ := validation.ParseData(v.DataNascimento)
	return &model.Cliente{
		Nome:            v.Nome,
		Sobrenome:       v.Sobrenome,
		TelefoneOuEmail: v.TelefoneOuEmail,
		Genero:          v.Genero,
		DataNascimento:  nascimento,
		SenhaHash:       hash,
		Cidade:          validation.Opcional(v.Cidade),
		Bairro:          validation.Opcional(v.Bairro),
		Pais:            validation.Opcional(catalog.Padrao().Normaliza(v.Pais)),
		Estado:          validation.Opcional(v.Estado),
		RuaAvenida:      validation.Opcional(v.RuaAvenida),
		Numero:          validation.Inteiro(v.Numero),
	}
}

type ProdutoMapper struct{}

func (ProdutoMapper) Novo(f validation.ProdutoForm) (*model.Produto, error) {
	v, err := f.Validate()
	if err != nil {
		return nil, err
	}
	estoque, ok := validation.ParaInt(v.QuantidadeEstoque)
	if !ok {
		return nil, &validation.Error{Field: "quantidade_estoque", Message: "Quantidade inválida"}
	}
	return &model.Produto{
		NomeProduto:       v.NomeProduto,
		Tipo:              v.Tipo,
		Caracteristicas:   model.Lista(v.Caracteristicas),
		MarcaID:           v.MarcaID,
		Tamanho:           v.Tamanho,
		Cor:               model.Lista(v.Cor),
		Preco:             v.Preco,
		QuantidadeEstoque: estoque,
		ImagemURL:         v.ImagemURL,
		Tecido:            v.Tecido,
	}, nil
}

func (m ProdutoMapper) Alterado(f validation.ProdutoForm, _ *model.Produto) (*model.Produto, error) {
	return m.Novo(f)
}

type FornecedorMapper struct{}

func (FornecedorMapper) Novo(f validation.FornecedorForm) (*model.Fornecedor, error) {
	v, err := f.Validate()
	if err != nil {
		return nil, err
	}
	return &model.Fornecedor{
		Nome:               v.Nome,
		CpfCnpj:            v.CpfCnpj,
		Pais:               catalog.Padrao().Normaliza(v.Pais),
		Estado:             v.Estado,
		Cidade:             v.Cidade,
		Bairro:             validation.Opcional(v.Bairro),
		RuaAvenida:         validation.Opcional(v.RuaAvenida),
		Numero:             validation.Inteiro(v.Numero),
		Telefone:           validation.Opcional(v.Telefone),
		Email:              validation.Opcional(v.Email),
		ProdutosFornecidos: validation.Opcional(v.ProdutosFornecidos),
		Status:             v.Status,
	}, nil
}

func (m FornecedorMapper) Alterado(f validation.FornecedorForm, _ *model.Fornecedor) (*model.Fornecedor, error) {
	return m.Novo(f)
}

type PromocaoMapper struct{}

func (PromocaoMapper) Novo(f validation.PromocaoForm) (*model.Promocao, error) {
	v, err := f.Validate()
	if err != nil {
		return nil, err
	}
	inicio, _ := validation.ParseData(v.DataInicio)
	termino, _ := validation.ParseData(v.DataTermino)

	return &model.Promocao{
		Nome:                 v.Nome,
		TipoDesconto:         v.TipoDesconto,
		ValorDesconto:        *v.ValorDesconto,
		ProdutosAplicaveis:   model.Lista(v.ProdutosAplicaveis),
		AplicarTodosProdutos: v.AplicarTodosProdutos,
		DataInicio:           inicio,
		DataTermino:          termino,
		CodigoPromocional:    validation.Opcional(v.CodigoPromocional),
		LimiteUso:            validation.Inteiro(v.LimiteUso),
		Status:               v.Status,
	}, nil
}

func (m PromocaoMapper) Alterado(f validation.PromocaoForm, _ *model.Promocao) (*model.Promocao, error) {
	return m.Novo(f)
}

// Opcoes alimenta as listas de seleção dos formulários.
type Opcoes struct {
	marcas   *repository.Table[model.Marca]
	produtos *repository.Table[model.Produto]
}

// Marcas lista as marcas em ordem alfabética.
func (o *Opcoes) Marcas(ctx context.Context) ([]model.Marca, error) {
	return o.marcas.Select(ctx, query.New("nome asc"))
}

// ProdutosResumo lista id e nome dos produtos, para o seletor de produtos da promoção.
func (o *Opcoes) ProdutosResumo(ctx context.Context) ([]model.ProdutoResumo, error) {
	out := []model.ProdutoResumo{}
	if err := o.produtos.Scan(ctx, query.New("nome_produto asc"), &out, "id", "nome_produto"); err != nil {
		return nil, err
	}
	return out, nil
}
