package validation

import "strings"

type PromocaoForm struct {
	Nome                 string   `form:"nome" json:"nome"`
	TipoDesconto         string   `form:"tipo_desconto" json:"tipo_desconto"`
	ValorDesconto        Valor    `form:"valor_desconto" json:"valor_desconto"`
	ProdutosAplicaveis   []string `form:"produtos_aplicaveis" json:"produtos_aplicaveis"`
	AplicarTodosProdutos bool     `form:"aplicar_todos_produtos" json:"aplicar_todos_produtos"`
	DataInicio           string   `form:"data_inicio" json:"data_inicio"`
	DataTermino          string   `form:"data_termino" json:"data_termino"`
	CodigoPromocional    string   `form:"codigo_promocional" json:"codigo_promocional"`
	LimiteUso            Valor    `form:"limite_uso" json:"limite_uso"`
	Status               string   `form:"status" json:"status"`
}

type Promocao struct {
	Nome                 string   `json:"nome" validate:"required,max=100"`
	TipoDesconto         string   `json:"tipo_desconto" validate:"required,oneof='Percentual' 'Valor fixo'"`
	ValorDesconto        *float64 `json:"valor_desconto" validate:"required,numero,gt=0"`
	ProdutosAplicaveis   []string `json:"produtos_aplicaveis"`
	AplicarTodosProdutos bool     `json:"aplicar_todos_produtos"`
	DataInicio           string   `json:"data_inicio" validate:"required,data"`
	DataTermino          string   `json:"data_termino" validate:"required,data"`
	CodigoPromocional    string   `json:"codigo_promocional" validate:"omitempty,max=50"`
	LimiteUso            *float64 `json:"limite_uso" validate:"omitempty,numero,lte=2147483647,inteiro,gt=0"`
	Status               string   `json:"status" validate:"oneof=Ativo Inativo"`
}

var mensagensPromocao = Mensagens{
	"nome.required":           "Nome da promoção é obrigatório",
	"nome.max":                "Nome deve ter no máximo 100 caracteres",
	"tipo_desconto.required":  "Tipo de desconto é obrigatório",
	"tipo_desconto.oneof":     "Tipo de desconto inválido",
	"valor_desconto.required": "Valor do desconto é obrigatório",
	"valor_desconto.numero":   "Valor do desconto inválido",
	"valor_desconto.gt":       "Valor do desconto deve ser positivo",
	"data_inicio.required":    "Data de início é obrigatória",
	"data_inicio.data":        "Data de início inválida",
	"data_termino.required":   "Data de término é obrigatória",
	"data_termino.data":       "Data de término inválida",
	"codigo_promocional.max":  "Código promocional deve ter no máximo 50 caracteres",
	"limite_uso.numero":       "Limite de uso inválido",
	"limite_uso.lte":          "Limite de uso deve ser no máximo 2.147.483.647",
	"limite_uso.inteiro":      "Limite de uso deve ser um inteiro",
	"limite_uso.gt":           "Limite de uso deve ser positivo",
	"status.oneof":            "Status inválido",
}

func (f PromocaoForm) Validate() (Promocao, error) {
	status := f.Status
	if status == "" {
		status = "Ativo"
	}

	p := Promocao{
		Nome:                 strings.TrimSpace(f.Nome),
		TipoDesconto:         f.TipoDesconto,
		ValorDesconto:        f.ValorDesconto.Opcional(),
		ProdutosAplicaveis:   semVazios(f.ProdutosAplicaveis),
		AplicarTodosProdutos: f.AplicarTodosProdutos,
		DataInicio:           f.DataInicio,
		DataTermino:          f.DataTermino,
		CodigoPromocional:    strings.TrimSpace(f.CodigoPromocional),
		LimiteUso:            f.LimiteUso.Opcional(),
		Status:               status,
	}
	if err := Check(p, mensagensPromocao); err != nil {
		return Promocao{}, err
	}
	if err := p.refine(); err != nil {
		return Promocao{}, err
	}
	if p.AplicarTodosProdutos {
		p.ProdutosAplicaveis = []string{}
	}
	return p, nil
}

// refine aplica as regras entre campos, que só rodam com todos os campos válidos.
func (p Promocao) refine() error {
	inicio, _ := ParseData(p.DataInicio)
	termino, _ := ParseData(p.DataTermino)
	if termino.Before(inicio) {
		return &Error{
			Field:   "data_termino",
			Message: "Data de término deve ser maior ou igual à data de início",
		}
	}
	if !p.AplicarTodosProdutos && len(p.ProdutosAplicaveis) == 0 {
		return &Error{
			Field:   "produtos_aplicaveis",
			Message: "Selecione ao menos um produto ou aplique a todos os produtos",
		}
	}
	return nil
}
