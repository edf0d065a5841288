package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Os dois registos de lookup partilham o mesmo contrato mas nunca se cruzam:
// estados e tipos são tabelas independentes com queries independentes.

// --- estado_utilizador ---

// ListEstados devolve as entradas do registo de estados ordenadas por id.
func (q *Queries) ListEstados(ctx context.Context) ([]EstadoUtilizador, error) {
	const query = `SELECT id, descricao_estado FROM estado_utilizador ORDER BY id`
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estados []EstadoUtilizador
	for rows.Next() {
		var e EstadoUtilizador
		if err := rows.Scan(&e.ID, &e.Descricao); err != nil {
			return nil, err
		}
		estados = append(estados, e)
	}
	return estados, rows.Err()
}

// GetEstadoByID busca uma entrada de estado.
func (q *Queries) GetEstadoByID(ctx context.Context, id int64) (EstadoUtilizador, error) {
	var e EstadoUtilizador
	err := q.db.QueryRow(ctx, `SELECT id, descricao_estado FROM estado_utilizador WHERE id = $1`, id).
		Scan(&e.ID, &e.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EstadoUtilizador{}, ErrNotFound
		}
		return EstadoUtilizador{}, err
	}
	return e, nil
}

// GetEstadoByDescricao busca pela descrição exata (sensível a maiúsculas).
func (q *Queries) GetEstadoByDescricao(ctx context.Context, descricao string) (EstadoUtilizador, error) {
	var e EstadoUtilizador
	err := q.db.QueryRow(ctx, `SELECT id, descricao_estado FROM estado_utilizador WHERE descricao_estado = $1`, descricao).
		Scan(&e.ID, &e.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EstadoUtilizador{}, ErrNotFound
		}
		return EstadoUtilizador{}, err
	}
	return e, nil
}

// InsertEstado cria uma entrada no registo de estados.
func (q *Queries) InsertEstado(ctx context.Context, descricao string) (EstadoUtilizador, error) {
	var e EstadoUtilizador
	err := q.db.QueryRow(ctx, `INSERT INTO estado_utilizador (descricao_estado) VALUES ($1) RETURNING id, descricao_estado`, descricao).
		Scan(&e.ID, &e.Descricao)
	return e, err
}

// UpdateEstado altera a descrição de uma entrada existente.
func (q *Queries) UpdateEstado(ctx context.Context, id int64, descricao string) (EstadoUtilizador, error) {
	var e EstadoUtilizador
	err := q.db.QueryRow(ctx, `UPDATE estado_utilizador SET descricao_estado = $2 WHERE id = $1 RETURNING id, descricao_estado`, id, descricao).
		Scan(&e.ID, &e.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EstadoUtilizador{}, ErrNotFound
		}
		return EstadoUtilizador{}, err
	}
	return e, nil
}

// DeleteEstado remove a entrada do registo de estados.
func (q *Queries) DeleteEstado(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM estado_utilizador WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUtilizadoresComEstado conta quantos utilizadores referenciam o estado.
func (q *Queries) CountUtilizadoresComEstado(ctx context.Context, id int64) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM utilizadores WHERE fk_estado_utilizador_id = $1`, id).Scan(&total)
	return total, err
}

// --- tipo_utilizador ---

// ListTipos devolve as entradas do registo de tipos ordenadas por id.
func (q *Queries) ListTipos(ctx context.Context) ([]TipoUtilizador, error) {
	const query = `SELECT id, descricao_tipo FROM tipo_utilizador ORDER BY id`
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tipos []TipoUtilizador
	for rows.Next() {
		var t TipoUtilizador
		if err := rows.Scan(&t.ID, &t.Descricao); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

// GetTipoByID busca uma entrada de tipo.
func (q *Queries) GetTipoByID(ctx context.Context, id int64) (TipoUtilizador, error) {
	var t TipoUtilizador
	err := q.db.QueryRow(ctx, `SELECT id, descricao_tipo FROM tipo_utilizador WHERE id = $1`, id).
		Scan(&t.ID, &t.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TipoUtilizador{}, ErrNotFound
		}
		return TipoUtilizador{}, err
	}
	return t, nil
}

// GetTipoByDescricao busca pela descrição exata (sensível a maiúsculas).
func (q *Queries) GetTipoByDescricao(ctx context.Context, descricao string) (TipoUtilizador, error) {
	var t TipoUtilizador
	err := q.db.QueryRow(ctx, `SELECT id, descricao_tipo FROM tipo_utilizador WHERE descricao_tipo = $1`, descricao).
		Scan(&t.ID, &t.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TipoUtilizador{}, ErrNotFound
		}
		return TipoUtilizador{}, err
	}
	return t, nil
}

// InsertTipo cria uma entrada no registo de tipos.
func (q *Queries) InsertTipo(ctx context.Context, descricao string) (TipoUtilizador, error) {
	var t TipoUtilizador
	err := q.db.QueryRow(ctx, `INSERT INTO tipo_utilizador (descricao_tipo) VALUES ($1) RETURNING id, descricao_tipo`, descricao).
		Scan(&t.ID, &t.Descricao)
	return t, err
}

// UpdateTipo altera a descrição de uma entrada existente.
func (q *Queries) UpdateTipo(ctx context.Context, id int64, descricao string) (TipoUtilizador, error) {
	var t TipoUtilizador
	err := q.db.QueryRow(ctx, `UPDATE tipo_utilizador SET descricao_tipo = $2 WHERE id = $1 RETURNING id, descricao_tipo`, id, descricao).
		Scan(&t.ID, &t.Descricao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TipoUtilizador{}, ErrNotFound
		}
		return TipoUtilizador{}, err
	}
	return t, nil
}

// DeleteTipo remove a entrada do registo de tipos.
func (q *Queries) DeleteTipo(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM tipo_utilizador WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUtilizadoresComTipo conta quantos utilizadores referenciam o tipo.
func (q *Queries) CountUtilizadoresComTipo(ctx context.Context, id int64) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM utilizadores WHERE fk_tipo_utilizador_id = $1`, id).Scan(&total)
	return total, err
}
