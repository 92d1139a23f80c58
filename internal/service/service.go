// Package service implementa o fluxo de envio dos formulários do painel:
// validar, converter opcionais vazios em nulos e gravar na tabela.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ericoliveiras/painel-admin/internal/metrics"
	"github.com/ericoliveiras/painel-admin/internal/query"
	"github.com/ericoliveiras/painel-admin/internal/repository"
)

// Filtro é um painel de filtros que sabe montar a consulta da listagem.
type Filtro interface {
	Spec() (*query.Spec, error)
}

// Mapper valida o formulário I e monta o registro T a gravar. Em Alterado,
// atual é o registro como está no banco.
type Mapper[T any, I any] interface {
	Novo(form I) (*T, error)
	Alterado(form I, atual *T) (*T, error)
}

type Service[T any, I any] struct {
	entidade string
	table    *repository.Table[T]
	mapper   Mapper[T, I]
	preloads []string
	log      *zap.Logger
}

func New[T any, I any](entidade string, table *repository.Table[T], mapper Mapper[T, I], log *zap.Logger, preloads ...string) *Service[T, I] {
	return &Service[T, I]{
		entidade: entidade,
		table:    table,
		mapper:   mapper,
		preloads: preloads,
		log:      log.With(zap.String("entidade", entidade)),
	}
}

func (s *Service[T, I]) Entidade() string {
	return s.entidade
}

func (s *Service[T, I]) List(ctx context.Context, f Filtro) ([]T, error) {
	spec, err := f.Spec()
	if err != nil {
		return nil, err
	}
	return s.table.Select(ctx, spec)
}

// Total conta os registros da entidade.
func (s *Service[T, I]) Total(ctx context.Context) (int64, error) {
	return s.table.Count(ctx)
}

func (s *Service[T, I]) Get(ctx context.Context, id string) (*T, error) {
	return s.table.Get(ctx, id, s.preloads...)
}

func (s *Service[T, I]) Create(ctx context.Context, form I) (*T, error) {
	row, err := s.mapper.Novo(form)
	if err != nil {
		return nil, err
	}

	err = s.table.Insert(ctx, row)
	s.registrar("create", identificador(row), err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service[T, I]) Update(ctx context.Context, id string, form I) (*T, error) {
	atual, err := s.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	row, err := s.mapper.Alterado(form, atual)
	if err != nil {
		return nil, err
	}

	err = s.table.Update(ctx, id, row, s.preloads...)
	s.registrar("update", id, err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service[T, I]) Delete(ctx context.Context, id string) error {
	err := s.table.Delete(ctx, id)
	s.registrar("delete", id, err)
	return err
}

func (s *Service[T, I]) registrar(op, id string, err error) {
	metrics.RecordMutation(s.entidade, op, err)

	switch {
	case err == nil:
		s.log.Info("registro gravado", zap.String("operacao", op), zap.String("id", id))
	case errors.Is(err, repository.ErrNotFound):
		s.log.Warn("registro não encontrado", zap.String("operacao", op), zap.String("id", id))
	default:
		s.log.Error("falha ao gravar registro", zap.String("operacao", op), zap.String("id", id), zap.Error(err))
	}
}

func identificador(row any) string {
	if r, ok := row.(interface{ Identificador() string }); ok {
		return r.Identificador()
	}
	return ""
}
