// Package filter traduz os painéis de filtro de cada entidade em query.Spec.
//
// Os campos chegam como texto da query string; só os preenchidos viram
// predicados.
package filter

import (
	"math"
	"strings"

	"github.com/ericoliveiras/painel-admin/internal/catalog"
	"github.com/ericoliveiras/painel-admin/internal/query"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

type Clientes struct {
	Nome           string `form:"nome" json:"nome" validate:"max=80"`
	Telefone       string `form:"telefone" json:"telefone" validate:"max=40"`
	Genero         string `form:"genero" json:"genero" validate:"omitempty,oneof=Feminino Masculino Outro"`
	Cidade         string `form:"cidade" json:"cidade"`
	Bairro         string `form:"bairro" json:"bairro"`
	Pais           string `form:"pais" json:"pais"`
	Estado         string `form:"estado" json:"estado"`
	DataNascimento string `form:"data_nascimento" json:"data_nascimento" validate:"omitempty,data"`
}

var mensagensClientes = validation.Mensagens{
	"nome.max":             "Nome deve ter no máximo 80 caracteres",
	"telefone.max":         "Telefone deve ter no máximo 40 caracteres",
	"genero.oneof":         "Gênero inválido",
	"data_nascimento.data": "Data de nascimento inválida",
}

func (f Clientes) Spec() (*query.Spec, error) {
	if err := validation.Check(f, mensagensClientes); err != nil {
		return nil, err
	}
	nascimento, _ := validation.ParseData(f.DataNascimento)

	return query.New("created_at desc").
		ILike("nome", f.Nome).
		ILike("telefone_ou_email", f.Telefone).
		Eq("genero", f.Genero).
		Eq("cidade", strings.TrimSpace(f.Cidade)).
		Eq("bairro", strings.TrimSpace(f.Bairro)).
		Eq("pais", pais(f.Pais)).
		Eq("estado", f.Estado).
		Eq("data_nascimento", nascimento), nil
}

type Produtos struct {
	NomeProduto string           `form:"nome_produto" json:"nome_produto" validate:"max=100"`
	Tipo        string           `form:"tipo" json:"tipo"`
	MarcaID     string           `form:"marca_id" json:"marca_id"`
	Tamanho     string           `form:"tamanho" json:"tamanho"`
	Tecido      string           `form:"tecido" json:"tecido"`
	PrecoMin    validation.Valor `form:"preco_min" json:"preco_min"`
	PrecoMax    validation.Valor `form:"preco_max" json:"preco_max"`
}

var mensagensProdutos = validation.Mensagens{
	"nome_produto.max": "Nome deve ter no máximo 100 caracteres",
}

func (f Produtos) Spec() (*query.Spec, error) {
	if err := validation.Check(f, mensagensProdutos); err != nil {
		return nil, err
	}
	precoMin, err := faixa(f.PrecoMin, "preco_min", "Preço mínimo inválido")
	if err != nil {
		return nil, err
	}
	precoMax, err := faixa(f.PrecoMax, "preco_max", "Preço máximo inválido")
	if err != nil {
		return nil, err
	}

	return query.New("created_at desc").
		Preload("Marca").
		ILike("nome_produto", f.NomeProduto).
		Eq("tipo", strings.TrimSpace(f.Tipo)).
		Eq("marca_id", f.MarcaID).
		Eq("tamanho", f.Tamanho).
		Eq("tecido", strings.TrimSpace(f.Tecido)).
		Gte("preco", precoMin).
		Lte("preco", precoMax), nil
}

type Fornecedores struct {
	Nome    string `form:"nome" json:"nome" validate:"max=80"`
	CpfCnpj string `form:"cpf_cnpj" json:"cpf_cnpj" validate:"max=18"`
	Cidade  string `form:"cidade" json:"cidade" validate:"max=30"`
	Pais    string `form:"pais" json:"pais"`
	Estado  string `form:"estado" json:"estado"`
	Status  string `form:"status" json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

var mensagensFornecedores = validation.Mensagens{
	"nome.max":     "Nome deve ter no máximo 80 caracteres",
	"cpf_cnpj.max": "CPF/CNPJ deve ter no máximo 18 caracteres",
	"cidade.max":   "Cidade deve ter no máximo 30 caracteres",
	"status.oneof": "Status inválido",
}

func (f Fornecedores) Spec() (*query.Spec, error) {
	if err := validation.Check(f, mensagensFornecedores); err != nil {
		return nil, err
	}
	return query.New("nome asc").
		ILike("nome", f.Nome).
		ILike("cpf_cnpj", f.CpfCnpj).
		ILike("cidade", f.Cidade).
		Eq("pais", pais(f.Pais)).
		Eq("estado", f.Estado).
		Eq("status", f.Status), nil
}

type Promocoes struct {
	Nome         string `form:"nome" json:"nome" validate:"max=80"`
	TipoDesconto string `form:"tipo_desconto" json:"tipo_desconto" validate:"omitempty,oneof='Percentual' 'Valor fixo'"`
	Status       string `form:"status" json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	DataInicio   string `form:"data_inicio" json:"data_inicio" validate:"omitempty,data"`
	DataTermino  string `form:"data_termino" json:"data_termino" validate:"omitempty,data"`
	TemCodigo    string `form:"tem_codigo" json:"tem_codigo"`
}

var mensagensPromocoes = validation.Mensagens{
	"nome.max":            "Nome deve ter no máximo 80 caracteres",
	"tipo_desconto.oneof": "Tipo de desconto inválido",
	"status.oneof":        "Status inválido",
	"data_inicio.data":    "Data de início inválida",
	"data_termino.data":   "Data de término inválida",
}

func (f Promocoes) Spec() (*query.Spec, error) {
	if err := validation.Check(f, mensagensPromocoes); err != nil {
		return nil, err
	}
	inicio, _ := validation.ParseData(f.DataInicio)
	termino, _ := validation.ParseData(f.DataTermino)

	return query.New("nome asc").
		ILike("nome", f.Nome).
		Eq("tipo_desconto", f.TipoDesconto).
		Eq("status", f.Status).
		Gte("data_inicio", inicio).
		Lte("data_termino", termino).
		NotNull("codigo_promocional", marcado(f.TemCodigo)), nil
}

// marcado interpreta o valor de um checkbox HTML ou de um booleano na query.
func marcado(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1":
		return true
	}
	return false
}

func pais(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return catalog.Padrao().Normaliza(v)
}

func faixa(v validation.Valor, campo, msg string) (*float64, error) {
	f := v.Opcional()
	if f != nil && (math.IsNaN(*f) || math.IsInf(*f, 0)) {
		return nil, &validation.Error{Field: campo, Message: msg}
	}
	return f, nil
}
