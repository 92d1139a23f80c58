// Package catalog guarda os países e estados oferecidos nos formulários.
//
// O banco grava sempre o código ISO do país; o nome em português é só para
// exibição. Entradas antigas com o nome do país ("Brasil") são resolvidas
// para o código.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed paises.yaml
var paisesYAML []byte

// PaisPadrao é o país pré-selecionado no cadastro de fornecedores.
const PaisPadrao = "BR"

type Pais struct {
	Codigo  string   `yaml:"codigo" json:"codigo"`
	Nome    string   `yaml:"nome" json:"nome"`
	Estados []string `yaml:"estados" json:"estados"`
}

type Catalogo struct {
	paises    []Pais
	porCodigo map[string]int

	mu       sync.Mutex
	comparar *collate.Collator
}

var (
	padrao     *Catalogo
	padraoOnce sync.Once
)

// Padrao devolve o catálogo embutido no binário.
func Padrao() *Catalogo {
	padraoOnce.Do(func() {
		c, err := Parse(paisesYAML)
		if err != nil {
			panic(err)
		}
		padrao = c
	})
	return padrao
}

// Parse lê um catálogo em YAML e ordena países e estados em ordem alfabética pt-BR.
func Parse(data []byte) (*Catalogo, error) {
	var paises []Pais
	if err := yaml.Unmarshal(data, &paises); err != nil {
		return nil, fmt.Errorf("catalog: ler países: %w", err)
	}

	namer := display.Regions(language.BrazilianPortuguese)
	ordem := collate.New(language.BrazilianPortuguese)

	for i := range paises {
		p := &paises[i]
		p.Codigo = strings.ToUpper(strings.TrimSpace(p.Codigo))
		region, err := language.ParseRegion(p.Codigo)
		if err != nil {
			return nil, fmt.Errorf("catalog: código de país %q: %w", p.Codigo, err)
		}
		if namer != nil {
			if nome := namer.Name(region); nome != "" {
				p.Nome = nome
			}
		}
		if p.Nome == "" {
			p.Nome = p.Codigo
		}
		ordem.SortStrings(p.Estados)
	}
	sort.SliceStable(paises, func(i, j int) bool {
		return ordem.CompareString(paises[i].Nome, paises[j].Nome) < 0
	})

	c := &Catalogo{
		paises:    paises,
		porCodigo: make(map[string]int, len(paises)),
		comparar:  collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.IgnoreDiacritics),
	}
	for i, p := range paises {
		if _, dup := c.porCodigo[p.Codigo]; dup {
			return nil, fmt.Errorf("catalog: país %s repetido", p.Codigo)
		}
		c.porCodigo[p.Codigo] = i
	}
	return c, nil
}

func (c *Catalogo) Paises() []Pais {
	return c.paises
}

// Estados devolve os estados do país (código ISO), ou nil se o país é desconhecido.
func (c *Catalogo) Estados(codigo string) []string {
	if i, ok := c.porCodigo[strings.ToUpper(codigo)]; ok {
		return c.paises[i].Estados
	}
	return nil
}

// Nome devolve o nome de exibição do país; códigos desconhecidos voltam como vieram.
func (c *Catalogo) Nome(codigo string) string {
	if i, ok := c.porCodigo[strings.ToUpper(codigo)]; ok {
		return c.paises[i].Nome
	}
	return codigo
}

// Resolve aceita um código ISO ou um nome de país (sem diferenciar maiúsculas
// nem acentos) e devolve o código.
func (c *Catalogo) Resolve(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if _, ok := c.porCodigo[strings.ToUpper(s)]; ok {
		return strings.ToUpper(s), true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.paises {
		if c.comparar.CompareString(p.Nome, s) == 0 {
			return p.Codigo, true
		}
	}
	return "", false
}

// Normaliza devolve o código do país quando ele é conhecido e o texto original
// caso contrário.
func (c *Catalogo) Normaliza(s string) string {
	if codigo, ok := c.Resolve(s); ok {
		return codigo
	}
	return strings.TrimSpace(s)
}
