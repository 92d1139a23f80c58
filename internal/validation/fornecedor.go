package validation

import "strings"

type FornecedorForm struct {
	Nome               string `form:"nome" json:"nome"`
	CpfCnpj            string `form:"cpf_cnpj" json:"cpf_cnpj"`
	Pais               string `form:"pais" json:"pais"`
	Estado             string `form:"estado" json:"estado"`
	Cidade             string `form:"cidade" json:"cidade"`
	Bairro             string `form:"bairro" json:"bairro"`
	RuaAvenida         string `form:"rua_avenida" json:"rua_avenida"`
	Numero             Valor  `form:"numero" json:"numero"`
	Telefone           string `form:"telefone" json:"telefone"`
	Email              string `form:"email" json:"email"`
	ProdutosFornecidos string `form:"produtos_fornecidos" json:"produtos_fornecidos"`
	Status             string `form:"status" json:"status"`
}

type Fornecedor struct {
	Nome               string   `json:"nome" validate:"required,max=100"`
	CpfCnpj            string   `json:"cpf_cnpj" validate:"required,cpf_cnpj"`
	Pais               string   `json:"pais" validate:"required"`
	Estado             string   `json:"estado" validate:"required"`
	Cidade             string   `json:"cidade" validate:"required,max=30"`
	Bairro             string   `json:"bairro" validate:"omitempty,max=30"`
	RuaAvenida         string   `json:"rua_avenida" validate:"omitempty,max=50"`
	Numero             *float64 `json:"numero" validate:"omitempty,numero,lte=2147483647,inteiro,gt=0"`
	Telefone           string   `json:"telefone" validate:"omitempty,max=20,digitos"`
	Email              string   `json:"email" validate:"omitempty,max=50,email"`
	ProdutosFornecidos string   `json:"produtos_fornecidos" validate:"omitempty,max=70"`
	Status             string   `json:"status" validate:"oneof=Ativo Inativo"`
}

var mensagensFornecedor = Mensagens{
	"nome.required":           "Nome é obrigatório",
	"nome.max":                "Nome deve ter no máximo 100 caracteres",
	"cpf_cnpj.required":       "CPF/CNPJ é obrigatório",
	"cpf_cnpj.cpf_cnpj":       "Formato inválido. Use XXX.XXX.XXX-XX para CPF ou XX.XXX.XXX/XXXX-XX para CNPJ",
	"pais.required":           "País é obrigatório",
	"estado.required":         "Estado é obrigatório",
	"cidade.required":         "Cidade é obrigatória",
	"cidade.max":              "Cidade deve ter no máximo 30 caracteres",
	"bairro.max":              "Bairro deve ter no máximo 30 caracteres",
	"rua_avenida.max":         "Rua/Avenida deve ter no máximo 50 caracteres",
	"numero.numero":           "Número inválido",
	"numero.lte":              "Número deve ser no máximo 2.147.483.647",
	"numero.inteiro":          "Número deve ser um inteiro",
	"numero.gt":               "Número deve ser positivo",
	"telefone.max":            "Telefone deve ter no máximo 20 caracteres",
	"telefone.digitos":        "Telefone deve conter apenas números",
	"email.max":               "E-mail deve ter no máximo 50 caracteres",
	"email.email":             "E-mail inválido",
	"produtos_fornecidos.max": "Produtos fornecidos deve ter no máximo 70 caracteres",
	"status.oneof":            "Status inválido",
}

func (f FornecedorForm) Validate() (Fornecedor, error) {
	status := f.Status
	if status == "" {
		status = "Ativo"
	}

	forn := Fornecedor{
		Nome:               strings.TrimSpace(f.Nome),
		CpfCnpj:            f.CpfCnpj,
		Pais:               f.Pais,
		Estado:             f.Estado,
		Cidade:             strings.TrimSpace(f.Cidade),
		Bairro:             strings.TrimSpace(f.Bairro),
		RuaAvenida:         strings.TrimSpace(f.RuaAvenida),
		Numero:             f.Numero.Opcional(),
		Telefone:           f.Telefone,
		Email:              f.Email,
		ProdutosFornecidos: strings.TrimSpace(f.ProdutosFornecidos),
		Status:             status,
	}
	if err := Check(forn, mensagensFornecedor); err != nil {
		return Fornecedor{}, err
	}
	return forn, nil
}
