package validation

import (
	"slices"
	"strings"
)

// MaxCaracteristicas limita o texto das características juntas por ", ",
// contado em unidades UTF-16.
const MaxCaracteristicas = 150

// ProdutoForm chega pela API em JSON ou pela tela. Na tela as características
// vêm do textarea CaracteristicasTexto, uma por linha.
type ProdutoForm struct {
	NomeProduto          string   `form:"nome_produto" json:"nome_produto"`
	Tipo                 string   `form:"tipo" json:"tipo"`
	Caracteristicas      []string `form:"caracteristicas" json:"caracteristicas"`
	MarcaID              string   `form:"marca_id" json:"marca_id"`
	Tamanho              string   `form:"tamanho" json:"tamanho"`
	Cor                  []string `form:"cor" json:"cor"`
	Preco                Valor    `form:"preco" json:"preco"`
	QuantidadeEstoque    Valor    `form:"quantidade_estoque" json:"quantidade_estoque"`
	ImagemURL            string   `form:"imagem_url" json:"imagem_url"`
	Tecido               string   `form:"tecido" json:"tecido"`
	CaracteristicasTexto string   `form:"caracteristicas_texto" json:"-"`
}

type Produto struct {
	NomeProduto       string   `json:"nome_produto" validate:"required"`
	Tipo              string   `json:"tipo" validate:"required,max=40,letras"`
	Caracteristicas   []string `json:"caracteristicas" validate:"min=1,caracteristicas"`
	MarcaID           string   `json:"marca_id" validate:"required"`
	Tamanho           string   `json:"tamanho" validate:"required"`
	Cor               []string `json:"cor" validate:"min=1"`
	Preco             float64  `json:"preco" validate:"gt=0,lt=10000000"`
	QuantidadeEstoque float64  `json:"quantidade_estoque" validate:"gte=0,lte=2147483647,inteiro"`
	ImagemURL         string   `json:"imagem_url" validate:"required"`
	Tecido            string   `json:"tecido" validate:"required,max=40,letras"`
}

var mensagensProduto = Mensagens{
	"nome_produto.required":           "Nome do produto é obrigatório",
	"tipo.required":                   "Tipo é obrigatório",
	"tipo.max":                        "Tipo deve ter no máximo 40 caracteres",
	"tipo.letras":                     "Tipo deve conter apenas letras",
	"caracteristicas.min":             "Adicione pelo menos uma característica",
	"caracteristicas.caracteristicas": "Características devem ter no máximo 150 caracteres no total",
	"marca_id.required":               "Marca é obrigatória",
	"tamanho.required":                "Tamanho é obrigatório",
	"cor.min":                         "Selecione pelo menos uma cor",
	"preco.gt":                        "Preço deve ser maior que zero",
	"preco.lt":                        "Preço deve ter no máximo 7 dígitos",
	"quantidade_estoque.gte":          "Quantidade deve ser maior ou igual a zero",
	"quantidade_estoque.lte":          "Quantidade deve ser no máximo 2.147.483.647",
	"quantidade_estoque.inteiro":      "Quantidade deve ser um número inteiro",
	"imagem_url.required":             "Imagem é obrigatória",
	"tecido.required":                 "Tecido é obrigatório",
	"tecido.max":                      "Tecido deve ter no máximo 40 caracteres",
	"tecido.letras":                   "Tecido deve conter apenas letras",
}

func (f ProdutoForm) Validate() (Produto, error) {
	preco := f.Preco.ParseFloat()
	if preco != preco { // NaN
		preco = 0
	}

	p := Produto{
		NomeProduto:       f.NomeProduto,
		Tipo:              f.Tipo,
		Caracteristicas:   semVazios(append(slices.Clone(f.Caracteristicas), strings.Split(f.CaracteristicasTexto, "\n")...)),
		MarcaID:           f.MarcaID,
		Tamanho:           f.Tamanho,
		Cor:               semVazios(f.Cor),
		Preco:             preco,
		QuantidadeEstoque: f.QuantidadeEstoque.Number(),
		ImagemURL:         f.ImagemURL,
		Tecido:            f.Tecido,
	}
	if err := Check(p, mensagensProduto); err != nil {
		return Produto{}, err
	}
	return p, nil
}

// semVazios apara os itens e descarta os vazios, preservando a ordem.
func semVazios(itens []string) []string {
	out := make([]string, 0, len(itens))
	for _, item := range itens {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
