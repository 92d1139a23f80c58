package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Valor é um campo numérico que pode chegar como número (JSON) ou como texto
// (formulário HTML ou JSON com string). A conversão acontece na validação.
type Valor string

var (
	prefixoNumerico = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	numeroCompleto  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// NovoValor formata f para pré-preencher formulários.
func NovoValor(f float64) Valor {
	return Valor(strconv.FormatFloat(f, 'f', -1, 64))
}

// ValorDe devolve o valor vazio para nil.
func ValorDe(n *int) Valor {
	if n == nil {
		return ""
	}
	return Valor(strconv.Itoa(*n))
}

func (v *Valor) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*v = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = Valor(str)
	case numeroCompleto.MatchString(s):
		*v = Valor(s)
	default:
		return fmt.Errorf("valor numérico inválido: %s", s)
	}
	return nil
}

// UnmarshalParam é usado pelo binding de formulário do gin.
func (v *Valor) UnmarshalParam(param string) error {
	*v = Valor(param)
	return nil
}

// Vazio indica que o campo não foi informado.
func (v Valor) Vazio() bool {
	return strings.TrimSpace(string(v)) == ""
}

// ParseFloat lê o maior prefixo numérico do texto; sem prefixo válido devolve NaN.
func (v Valor) ParseFloat() float64 {
	m := prefixoNumerico.FindString(strings.TrimLeft(string(v), " \t\n\r"))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Number converte o texto inteiro: vazio vira 0, lixo vira NaN.
func (v Valor) Number() float64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0
	}
	if !numeroCompleto.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Opcional converte o campo em número, tratando vazio como ausente.
func (v Valor) Opcional() *float64 {
	if v.Vazio() {
		return nil
	}
	f := v.Number()
	return &f
}
