package service

import (
	"context"

	"github.com/healthsim/plataforma/internal/repo"
)

// EstadoRegistryRepo adapta as queries de estado_utilizador ao contrato
// partilhado dos registos de lookup.
type EstadoRegistryRepo struct {
	q *repo.Queries
}

// NewEstadoRegistryRepo cria o adaptador para o registo de estados.
func NewEstadoRegistryRepo(q *repo.Queries) EstadoRegistryRepo {
	return EstadoRegistryRepo{q: q}
}

func (r EstadoRegistryRepo) List(ctx context.Context) ([]Entrada, error) {
	estados, err := r.q.ListEstados(ctx)
	if err != nil {
		return nil, err
	}
	entradas := make([]Entrada, 0, len(estados))
	for _, e := range estados {
		entradas = append(entradas, Entrada{ID: e.ID, Descricao: e.Descricao})
	}
	return entradas, nil
}

func (r EstadoRegistryRepo) GetByID(ctx context.Context, id int64) (Entrada, error) {
	e, err := r.q.GetEstadoByID(ctx, id)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: e.ID, Descricao: e.Descricao}, nil
}

func (r EstadoRegistryRepo) GetByDescricao(ctx context.Context, descricao string) (Entrada, error) {
	e, err := r.q.GetEstadoByDescricao(ctx, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: e.ID, Descricao: e.Descricao}, nil
}

func (r EstadoRegistryRepo) Insert(ctx context.Context, descricao string) (Entrada, error) {
	e, err := r.q.InsertEstado(ctx, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: e.ID, Descricao: e.Descricao}, nil
}

func (r EstadoRegistryRepo) Update(ctx context.Context, id int64, descricao string) (Entrada, error) {
	e, err := r.q.UpdateEstado(ctx, id, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: e.ID, Descricao: e.Descricao}, nil
}

func (r EstadoRegistryRepo) Delete(ctx context.Context, id int64) error {
	return r.q.DeleteEstado(ctx, id)
}

func (r EstadoRegistryRepo) CountUtilizadores(ctx context.Context, id int64) (int64, error) {
	return r.q.CountUtilizadoresComEstado(ctx, id)
}

// TipoRegistryRepo adapta as queries de tipo_utilizador ao mesmo contrato.
type TipoRegistryRepo struct {
	q *repo.Queries
}

// NewTipoRegistryRepo cria o adaptador para o registo de tipos.
func NewTipoRegistryRepo(q *repo.Queries) TipoRegistryRepo {
	return TipoRegistryRepo{q: q}
}

func (r TipoRegistryRepo) List(ctx context.Context) ([]Entrada, error) {
	tipos, err := r.q.ListTipos(ctx)
	if err != nil {
		return nil, err
	}
	entradas := make([]Entrada, 0, len(tipos))
	for _, t := range tipos {
		entradas = append(entradas, Entrada{ID: t.ID, Descricao: t.Descricao})
	}
	return entradas, nil
}

func (r TipoRegistryRepo) GetByID(ctx context.Context, id int64) (Entrada, error) {
	t, err := r.q.GetTipoByID(ctx, id)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: t.ID, Descricao: t.Descricao}, nil
}

func (r TipoRegistryRepo) GetByDescricao(ctx context.Context, descricao string) (Entrada, error) {
	t, err := r.q.GetTipoByDescricao(ctx, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: t.ID, Descricao: t.Descricao}, nil
}

func (r TipoRegistryRepo) Insert(ctx context.Context, descricao string) (Entrada, error) {
	t, err := r.q.InsertTipo(ctx, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: t.ID, Descricao: t.Descricao}, nil
}

func (r TipoRegistryRepo) Update(ctx context.Context, id int64, descricao string) (Entrada, error) {
	t, err := r.q.UpdateTipo(ctx, id, descricao)
	if err != nil {
		return Entrada{}, err
	}
	return Entrada{ID: t.ID, Descricao: t.Descricao}, nil
}

func (r TipoRegistryRepo) Delete(ctx context.Context, id int64) error {
	return r.q.DeleteTipo(ctx, id)
}

func (r TipoRegistryRepo) CountUtilizadores(ctx context.Context, id int64) (int64, error) {
	return r.q.CountUtilizadoresComTipo(ctx, id)
}
