// Package query monta as consultas de listagem a partir dos filtros do painel.
//
// Um Spec acumula predicados que só entram na consulta quando o valor foi
// informado; todos são combinados com AND.
package query

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Op string

const (
	OpILike   Op = "ilike"
	OpEq      Op = "eq"
	OpGte     Op = "gte"
	OpLte     Op = "lte"
	OpNotNull Op = "notnull"
)

type Predicate struct {
	Column string
	Op     Op
	Value  any
}

type Spec struct {
	predicates []Predicate
	order      string
	preloads   []string
}

// New cria um Spec com a ordenação fixa da listagem (ex.: "created_at desc").
func New(order string) *Spec {
	return &Spec{order: order}
}

// ILike filtra por substring sem diferenciar maiúsculas.
func (s *Spec) ILike(column, value string) *Spec {
	if value = strings.TrimSpace(value); value != "" {
		s.predicates = append(s.predicates, Predicate{Column: column, Op: OpILike, Value: value})
	}
	return s
}

func (s *Spec) Eq(column string, value any) *Spec {
	return s.add(column, OpEq, value)
}

func (s *Spec) Gte(column string, value any) *Spec {
	return s.add(column, OpGte, value)
}

func (s *Spec) Lte(column string, value any) *Spec {
	return s.add(column, OpLte, value)
}

// NotNull exige a coluna preenchida quando enabled.
func (s *Spec) NotNull(column string, enabled bool) *Spec {
	if enabled {
		s.predicates = append(s.predicates, Predicate{Column: column, Op: OpNotNull})
	}
	return s
}

func (s *Spec) Preload(association string) *Spec {
	s.preloads = append(s.preloads, association)
	return s
}

func (s *Spec) Predicates() []Predicate {
	return s.predicates
}

func (s *Spec) Order() string {
	return s.order
}

func (s *Spec) add(column string, op Op, value any) *Spec {
	if vazio(value) {
		return s
	}
	s.predicates = append(s.predicates, Predicate{Column: column, Op: op, Value: deref(value)})
	return s
}

func vazio(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case *float64:
		return v == nil
	case *int:
		return v == nil
	case *time.Time:
		return v == nil
	case time.Time:
		return v.IsZero()
	}
	return false
}

func deref(value any) any {
	switch v := value.(type) {
	case *string:
		return *v
	case *float64:
		return *v
	case *int:
		return *v
	case *time.Time:
		return *v
	}
	return value
}

// Apply aplica predicados, preloads e ordenação na consulta.
func (s *Spec) Apply(db *gorm.DB) *gorm.DB {
	postgres := db.Dialector != nil && db.Dialector.Name() == "postgres"

	for _, p := range s.predicates {
		col := clause.Column{Name: p.Column}
		switch p.Op {
		case OpILike:
			pattern := "%" + escapeLike(p.Value.(string)) + "%"
			if postgres {
				db = db.Where(clause.Expr{SQL: `? ILIKE ? ESCAPE '\'`, Vars: []any{col, pattern}})
			} else {
				db = db.Where(clause.Expr{SQL: `LOWER(?) LIKE LOWER(?) ESCAPE '\'`, Vars: []any{col, pattern}})
			}
		case OpEq:
			db = db.Where(clause.Eq{Column: col, Value: p.Value})
		case OpGte:
			db = db.Where(clause.Gte{Column: col, Value: p.Value})
		case OpLte:
			db = db.Where(clause.Lte{Column: col, Value: p.Value})
		case OpNotNull:
			db = db.Where(clause.Expr{SQL: "? IS NOT NULL", Vars: []any{col}})
		}
	}

	for _, assoc := range s.preloads {
		db = db.Preload(assoc)
	}
	if s.order != "" {
		db = db.Order(s.order)
	}
	return db
}

// Key identifica o Spec de forma estável, para uso como chave de cache.
func (s *Spec) Key() string {
	var b strings.Builder
	b.WriteString(s.order)
	for _, p := range s.predicates {
		fmt.Fprintf(&b, "|%s:%s:%s", p.Column, p.Op, formatValue(p.Value))
	}
	for _, assoc := range s.preloads {
		b.WriteString("|+" + assoc)
	}

	h := fnv.New64a()
	h.Write([]byte(b.String()))
	return fmt.Sprintf("%016x", h.Sum64())
}

func formatValue(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
