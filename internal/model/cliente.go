package model

import "time"

const (
	GeneroFeminino  = "Feminino"
	GeneroMasculino = "Masculino"
	GeneroOutro     = "Outro"
)

// Cliente é um cliente da loja. A senha só é guardada como hash.
type Cliente struct {
	Base
	Nome            string    `gorm:"not null;size:40" json:"nome"`
	Sobrenome       string    `gorm:"not null;size:40" json:"sobrenome"`
	TelefoneOuEmail string    `gorm:"not null;size:40" json:"telefone_ou_email"`
	Genero          string    `gorm:"not null;size:20" json:"genero"`
	DataNascimento  time.Time `gorm:"type:date;not null" json:"data_nascimento"`
	SenhaHash       string    `gorm:"not null" json:"-"`
	Cidade          *string   `gorm:"size:30" json:"cidade"`
	Bairro          *string   `gorm:"size:30" json:"bairro"`
	Pais            *string   `gorm:"size:60" json:"pais"`
	Estado          *string   `gorm:"size:60" json:"estado"`
	RuaAvenida      *string   `gorm:"size:50" json:"rua_avenida"`
	Numero          *int      `json:"numero"`
}

func (Cliente) TableName() string { return "clientes" }

// NomeCompleto junta nome e sobrenome como aparece na listagem.
func (c Cliente) NomeCompleto() string {
	return c.Nome + " " + c.Sobrenome
}
