package model

// Marca é a marca referenciada pelos produtos.
type Marca struct {
	Base
	Nome string `gorm:"not null;uniqueIndex;size:60" json:"nome"`
}

func (Marca) TableName() string { return "marcas" }

// Produto representa uma peça do catálogo.
type Produto struct {
	Base
	NomeProduto       string  `gorm:"not null;size:100" json:"nome_produto"`
	Tipo              string  `gorm:"not null;size:40" json:"tipo"`
	Caracteristicas   Lista   `gorm:"not null" json:"caracteristicas"`
	MarcaID           string  `gorm:"type:uuid;not null;index" json:"marca_id"`
	Marca             *Marca  `gorm:"foreignKey:MarcaID" json:"marca,omitempty"`
	Tamanho           string  `gorm:"not null;size:10" json:"tamanho"`
	Cor               Lista   `gorm:"not null" json:"cor"`
	Preco             float64 `gorm:"type:numeric(10,2);not null" json:"preco"`
	QuantidadeEstoque int     `gorm:"not null;default:0" json:"quantidade_estoque"`
	ImagemURL         string  `gorm:"not null" json:"imagem_url"`
	Tecido            string  `gorm:"not null;size:40" json:"tecido"`
}

func (Produto) TableName() string { return "produtos" }

// ProdutoResumo é a projeção usada para escolher produtos em outras telas.
type ProdutoResumo struct {
	ID          string `json:"id"`
	NomeProduto string `json:"nome_produto"`
}

// CoresDisponiveis são as cores oferecidas no formulário de produto.
var CoresDisponiveis = []string{
	"Vermelho",
	"Azul",
	"Preto",
	"Branco",
	"Verde",
	"Amarelo",
	"Rosa",
	"Laranja",
	"Roxo",
	"Marrom",
	"Cinza",
}

// TamanhosDisponiveis são os tamanhos oferecidos no formulário de produto.
var TamanhosDisponiveis = []string{"PP", "P", "M", "G", "GG", "XG"}
