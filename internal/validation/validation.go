// Package validation reúne os esquemas de validação dos formulários do painel.
//
// Cada esquema é uma struct com tags do validator; a validação para no primeiro
// campo inválido (na ordem de declaração) e só então roda as regras que cruzam
// campos. O erro devolvido é sempre um *Error com o nome do campo como aparece
// no formulário.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Error é a violação de uma regra de formulário.
type Error struct {
	Field   string `json:"campo"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// Mensagens associa "campo.tag" à mensagem exibida ao usuário.
type Mensagens map[string]string

const LayoutData = "2006-01-02"

var (
	letrasRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	cpfRegex    = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjRegex   = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	digitos     = regexp.MustCompile(`^\d+$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "letras", func(fl validator.FieldLevel) bool {
		return letrasRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "senha_forte", func(fl validator.FieldLevel) bool {
		return SenhaForte(fl.Field().String())
	})
	mustRegister(v, "cpf_cnpj", func(fl validator.FieldLevel) bool {
		return CpfOuCnpj(fl.Field().String())
	})
	mustRegister(v, "digitos", func(fl validator.FieldLevel) bool {
		return digitos.MatchString(fl.Field().String())
	})
	mustRegister(v, "data", func(fl validator.FieldLevel) bool {
		_, err := ParseData(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "numero", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "inteiro", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})
	mustRegister(v, "caracteristicas", func(fl validator.FieldLevel) bool {
		itens, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		return len(utf16.Encode([]rune(strings.Join(itens, ", ")))) <= MaxCaracteristicas
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
	}
}

// Check valida s e devolve apenas a primeira violação encontrada. Campos em
// ignorar (nomes Go da struct) são pulados.
func Check(s any, mensagens Mensagens, ignorar ...string) error {
	var err error
	if len(ignorar) > 0 {
		err = validate.StructExcept(s, ignorar...)
	} else {
		err = validate.Struct(s)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	msg, ok := mensagens[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = fmt.Sprintf("Campo %s inválido", fe.Field())
	}
	return &Error{Field: fe.Field(), Message: msg}
}

// SenhaForte exige ao menos uma minúscula, uma maiúscula e um dígito.
func SenhaForte(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// CpfOuCnpj confere apenas o formato (XXX.XXX.XXX-XX ou XX.XXX.XXX/XXXX-XX).
func CpfOuCnpj(s string) bool {
	return cpfRegex.MatchString(s) || cnpjRegex.MatchString(s)
}

// ParseData aceita "2006-01-02" ou um timestamp RFC 3339, do qual só a data importa.
func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(LayoutData, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Opcional converte texto vazio em ausência.
func Opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ParaInt converte f em int quando ele é inteiro e cabe em int32, o limite
// das colunas inteiras.
func ParaInt(f float64) (int, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Inteiro converte um número opcional já validado em inteiro opcional. Fora
// do intervalo de ParaInt devolve nil.
func Inteiro(f *float64) *int {
	if f == nil {
		return nil
	}
	n, ok := ParaInt(*f)
	if !ok {
		return nil
	}
	return &n
}
