package model

import "time"

const (
	DescontoPercentual = "Percentual"
	DescontoValorFixo  = "Valor fixo"
)

type Promocao struct {
	Base
	Nome                 string    `gorm:"not null;size:100" json:"nome"`
	TipoDesconto         string    `gorm:"not null;size:20" json:"tipo_desconto"`
	ValorDesconto        float64   `gorm:"type:numeric(10,2);not null" json:"valor_desconto"`
	ProdutosAplicaveis   Lista     `gorm:"not null" json:"produtos_aplicaveis"`
	AplicarTodosProdutos bool      `gorm:"not null;default:false" json:"aplicar_todos_produtos"`
	DataInicio           time.Time `gorm:"type:date;not null" json:"data_inicio"`
	DataTermino          time.Time `gorm:"type:date;not null" json:"data_termino"`
	CodigoPromocional    *string   `gorm:"size:50" json:"codigo_promocional"`
	LimiteUso            *int      `json:"limite_uso"`
	Status               string    `gorm:"not null;size:10;default:'Ativo'" json:"status"`
}

func (Promocao) TableName() string { return "promocoes" }
