// Package view contém os templates HTML do painel e as funções usadas neles.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ericoliveiras/painel-admin/internal/catalog"
	"github.com/ericoliveiras/painel-admin/internal/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega todos os templates com as funções do painel. O nome de
// cada template é o nome do arquivo (ex.: "clientes_lista.html").
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"data":      Data,
		"dataISO":   DataISO,
		"moeda":     Moeda,
		"pais":      catalog.Padrao().Nome,
		"texto":     Texto,
		"numero":    Numero,
		"juntar":    func(itens []string) string { return strings.Join(itens, ", ") },
		"contem":    Contem,
		"erroCampo": ErroCampo,
		"campos":    Campos,
	}
}

// Data formata uma data como dd/mm/aaaa.
func Data(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}

// DataISO formata uma data para campos <input type="date">.
func DataISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(validation.LayoutData)
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Moeda formata um valor em reais (R$ 1.234,50).
func Moeda(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Texto exibe um opcional; nulo vira "-".
func Texto(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func Numero(n *int) string {
	if n == nil {
		return "-"
	}
	return printer.Sprintf("%d", *n)
}

func Contem(itens []string, v string) bool {
	for _, item := range itens {
		if item == v {
			return true
		}
	}
	return false
}

// Campos monta um mapa a partir de pares chave/valor, para passar mais de um
// argumento a um template parcial.
func Campos(pares ...any) (map[string]any, error) {
	if len(pares)%2 != 0 {
		return nil, fmt.Errorf("campos: número ímpar de argumentos")
	}
	m := make(map[string]any, len(pares)/2)
	for i := 0; i < len(pares); i += 2 {
		chave, ok := pares[i].(string)
		if !ok {
			return nil, fmt.Errorf("campos: chave %v não é texto", pares[i])
		}
		m[chave] = pares[i+1]
	}
	return m, nil
}

// ErroCampo devolve a mensagem de erro quando ela pertence ao campo. err
// pode ser nil ou qualquer outro erro, que é ignorado.
func ErroCampo(err any, campo string) string {
	verr, ok := err.(*validation.Error)
	if !ok || verr == nil || verr.Field != campo {
		return ""
	}
	return verr.Message
}
