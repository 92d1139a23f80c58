// Package repository é o acesso às tabelas do painel: listar com filtros,
// buscar, inserir, atualizar e excluir por id.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericoliveiras/painel-admin/internal/query"
)

// ErrNotFound indica que nenhum registro tem o id informado.
var ErrNotFound = errors.New("registro não encontrado")

// Error é uma falha do banco. A mensagem é a do banco, sem acréscimos, para
// ser mostrada ao usuário como veio.
type Error struct {
	Op     string
	Tabela string
	Err    error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

type tabler interface {
	TableName() string
}

// Table opera sobre a tabela do modelo T.
type Table[T any] struct {
	db    *gorm.DB
	nome  string
	cache ListCache
	log   *zap.Logger
}

type Option func(*options)

type options struct {
	cache ListCache
	log   *zap.Logger
}

// WithCache guarda as listagens no cache; toda mutação invalida a tabela.
func WithCache(c ListCache) Option {
	return func(o *options) { o.cache = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func NewTable[T any](db *gorm.DB, opts ...Option) *Table[T] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	nome := fmt.Sprintf("%T", zero)
	if t, ok := any(zero).(tabler); ok {
		nome = t.TableName()
	}

	return &Table[T]{db: db, nome: nome, cache: o.cache, log: o.log.With(zap.String("tabela", nome))}
}

func (t *Table[T]) Nome() string {
	return t.nome
}

// Select lista as linhas que atendem ao Spec, na ordem dele.
func (t *Table[T]) Select(ctx context.Context, spec *query.Spec) ([]T, error) {
	// a geração é lida uma vez: uma escrita durante a consulta não pode
	// receber a listagem antiga
	var key string
	if t.cache != nil {
		k, err := t.cache.Key(ctx, t.nome, spec.Key())
		if err != nil {
			t.log.Warn("falha ao ler geração do cache", zap.Error(err))
		} else {
			key = k
			var rows []T
			ok, err := t.cache.Get(ctx, key, &rows)
			if err != nil {
				t.log.Warn("falha ao ler listagem do cache", zap.Error(err))
			} else if ok {
				return rows, nil
			}
		}
	}

	rows := []T{}
	if err := spec.Apply(t.db.WithContext(ctx).Model(new(T))).Find(&rows).Error; err != nil {
		return nil, t.wrap("select", err)
	}

	if key != "" {
		if err := t.cache.Set(ctx, key, rows); err != nil {
			t.log.Warn("falha ao gravar listagem no cache", zap.Error(err))
		}
	}
	return rows, nil
}

// Scan projeta as colunas pedidas em dest, sem passar pelo cache.
func (t *Table[T]) Scan(ctx context.Context, spec *query.Spec, dest any, colunas ...string) error {
	db := spec.Apply(t.db.WithContext(ctx).Model(new(T)))
	if len(colunas) > 0 {
		db = db.Select(colunas)
	}
	if err := db.Scan(dest).Error; err != nil {
		return t.wrap("scan", err)
	}
	return nil
}

// Count conta os registros da tabela, sem filtros.
func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, t.wrap("count", err)
	}
	return n, nil
}

func (t *Table[T]) Get(ctx context.Context, id string, preloads ...string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	db := t.db.WithContext(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}

	var row T
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, t.wrap("get", err)
	}
	return &row, nil
}

func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return t.wrap("insert", err)
	}
	t.invalidate(ctx)
	return nil
}

// Update grava todas as colunas de row no registro id, inclusive as nulas, e
// recarrega row com o estado gravado e as associações em preloads.
func (t *Table[T]) Update(ctx context.Context, id string, row *T, preloads ...string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	res := t.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(row)
	if res.Error != nil {
		return t.wrap("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	t.invalidate(ctx)

	db := t.db.WithContext(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}
	if err := db.Where("id = ?", id).First(row).Error; err != nil {
		return t.wrap("get", err)
	}
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return t.wrap("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	t.invalidate(ctx)
	return nil
}

func (t *Table[T]) invalidate(ctx context.Context) {
	if t.cache == nil {
		return
	}
	// a invalidação não pode depender do cancelamento da requisição
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := t.cache.Invalidate(ctx, t.nome); err != nil {
		t.log.Error("falha ao invalidar listagens em cache", zap.Error(err))
	}
}

func (t *Table[T]) wrap(op string, err error) error {
	return &Error{Op: op, Tabela: t.nome, Err: err}
}
