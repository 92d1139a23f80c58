package validation

// ClienteForm é o formulário de cliente como chega do navegador ou da API.
type ClienteForm struct {
	Nome            string `form:"nome" json:"nome"`
	Sobrenome       string `form:"sobrenome" json:"sobrenome"`
	TelefoneOuEmail string `form:"telefone_ou_email" json:"telefone_ou_email"`
	Genero          string `form:"genero" json:"genero"`
	DataNascimento  string `form:"data_nascimento" json:"data_nascimento"`
	Senha           string `form:"senha" json:"senha"`
	Cidade          string `form:"cidade" json:"cidade"`
	Bairro          string `form:"bairro" json:"bairro"`
	Pais            string `form:"pais" json:"pais"`
	Estado          string `form:"estado" json:"estado"`
	RuaAvenida      string `form:"rua_avenida" json:"rua_avenida"`
	Numero          Valor  `form:"numero" json:"numero"`
}

// Cliente é o formulário depois da conversão, pronto para validar e gravar.
type Cliente struct {
	Nome            string   `json:"nome" validate:"required,max=40,letras"`
	Sobrenome       string   `json:"sobrenome" validate:"required,max=40,letras"`
	TelefoneOuEmail string   `json:"telefone_ou_email" validate:"required,max=40"`
	Genero          string   `json:"genero" validate:"required,oneof=Feminino Masculino Outro"`
	DataNascimento  string   `json:"data_nascimento" validate:"required,data"`
	Senha           string   `json:"senha" validate:"min=8,max=40,senha_forte"`
	Cidade          string   `json:"cidade" validate:"omitempty,max=30,letras"`
	Bairro          string   `json:"bairro" validate:"omitempty,max=30"`
	Pais            string   `json:"pais" validate:"omitempty,max=60"`
	Estado          string   `json:"estado" validate:"omitempty,max=60"`
	RuaAvenida      string   `json:"rua_avenida" validate:"omitempty,max=50"`
	Numero          *float64 `json:"numero" validate:"omitempty,numero,lte=2147483647,inteiro"`
}

var mensagensCliente = Mensagens{
	"nome.required":              "Nome é obrigatório",
	"nome.max":                   "Nome deve ter no máximo 40 caracteres",
	"nome.letras":                "Nome deve conter apenas letras",
	"sobrenome.required":         "Sobrenome é obrigatório",
	"sobrenome.max":              "Sobrenome deve ter no máximo 40 caracteres",
	"sobrenome.letras":           "Sobrenome deve conter apenas letras",
	"telefone_ou_email.required": "Telefone ou E-mail é obrigatório",
	"telefone_ou_email.max":      "Deve ter no máximo 40 caracteres",
	"genero.required":            "Gênero é obrigatório",
	"genero.oneof":               "Gênero inválido",
	"data_nascimento.required":   "Data de nascimento é obrigatória",
	"data_nascimento.data":       "Data de nascimento inválida",
	"senha.min":                  "Senha deve ter no mínimo 8 caracteres",
	"senha.max":                  "Senha deve ter no máximo 40 caracteres",
	"senha.senha_forte":          "Senha deve conter letra maiúscula, minúscula e número",
	"cidade.max":                 "Cidade deve ter no máximo 30 caracteres",
	"cidade.letras":              "Cidade deve conter apenas letras",
	"bairro.max":                 "Bairro deve ter no máximo 30 caracteres",
	"rua_avenida.max":            "Rua/Avenida deve ter no máximo 50 caracteres",
	"numero.numero":              "Número inválido",
	"numero.lte":                 "Número deve ser no máximo 2.147.483.647",
	"numero.inteiro":             "Número deve ser um inteiro",
}

// Validate converte e valida o formulário. Com manterSenha, uma senha vazia
// não é validada (edição que preserva a senha atual).
func (f ClienteForm) Validate(manterSenha bool) (Cliente, error) {
	c := Cliente{
		Nome:            f.Nome,
		Sobrenome:       f.Sobrenome,
		TelefoneOuEmail: f.TelefoneOuEmail,
		Genero:          f.Genero,
		DataNascimento:  f.DataNascimento,
		Senha:           f.Senha,
		Cidade:          f.Cidade,
		Bairro:          f.Bairro,
		Pais:            f.Pais,
		Estado:          f.Estado,
		RuaAvenida:      f.RuaAvenida,
		Numero:          f.Numero.Opcional(),
	}

	var ignorar []string
	if manterSenha && c.Senha == "" {
		ignorar = append(ignorar, "Senha")
	}
	if err := Check(c, mensagensCliente, ignorar...); err != nil {
		return Cliente{}, err
	}
	return c, nil
}
