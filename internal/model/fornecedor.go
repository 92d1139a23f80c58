package model

const (
	StatusAtivo   = "Ativo"
	StatusInativo = "Inativo"
)

type Fornecedor struct {
	Base
	Nome               string  `gorm:"not null;size:100" json:"nome"`
	CpfCnpj            string  `gorm:"column:cpf_cnpj;not null;size:18" json:"cpf_cnpj"`
	Pais               string  `gorm:"not null;size:60" json:"pais"`
	Estado             string  `gorm:"not null;size:60" json:"estado"`
	Cidade             string  `gorm:"not null;size:30" json:"cidade"`
	Bairro             *string `gorm:"size:30" json:"bairro"`
	RuaAvenida         *string `gorm:"size:50" json:"rua_avenida"`
	Numero             *int    `json:"numero"`
	Telefone           *string `gorm:"size:20" json:"telefone"`
	Email              *string `gorm:"size:50" json:"email"`
	ProdutosFornecidos *string `gorm:"size:70" json:"produtos_fornecidos"`
	Status             string  `gorm:"not null;size:10;default:'Ativo'" json:"status"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
