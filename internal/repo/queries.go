package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX é satisfeito por *pgxpool.Pool e por pgx.Tx, permitindo reutilizar as
// mesmas queries dentro e fora de transações.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries concentra o acesso SQL da plataforma.
type Queries struct {
	db DBTX
}

// New cria Queries sobre um pool ou transação.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx devolve Queries ligadas à transação indicada.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// --- utilizadores ---

const utilizadorColumns = `id, nome, email, senha_hash, genero_id, data_nascimento, img_url,
        fk_estado_utilizador_id, fk_tipo_utilizador_id, criado_em, atualizado_em`

func scanUtilizador(row pgx.Row) (Utilizador, error) {
	var u Utilizador
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.GeneroID, &u.DataNascimento,
		&u.ImgURL, &u.EstadoID, &u.TipoID, &u.CriadoEm, &u.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Utilizador{}, ErrNotFound
		}
		return Utilizador{}, err
	}
	return u, nil
}

// GetUtilizadorByEmail busca utilizador pelo email (correspondência exata).
func (q *Queries) GetUtilizadorByEmail(ctx context.Context, email string) (Utilizador, error) {
	const query = `
        SELECT ` + utilizadorColumns + `
        FROM utilizadores
        WHERE email = $1
    `
	return scanUtilizador(q.db.QueryRow(ctx, query, email))
}

// GetUtilizadorByID busca utilizador pelo identificador.
func (q *Queries) GetUtilizadorByID(ctx context.Context, id int64) (Utilizador, error) {
	const query = `
        SELECT ` + utilizadorColumns + `
        FROM utilizadores
        WHERE id = $1
    `
	return scanUtilizador(q.db.QueryRow(ctx, query, id))
}

// GetTipoDescricaoByUtilizador resolve a descrição de tipo do utilizador.
// Devolve nil quando o utilizador não tem tipo associado.
func (q *Queries) GetTipoDescricaoByUtilizador(ctx context.Context, id int64) (*string, error) {
	const query = `
        SELECT t.descricao_tipo
        FROM utilizadores u
        LEFT JOIN tipo_utilizador t ON t.id = u.fk_tipo_utilizador_id
        WHERE u.id = $1
    `
	var descricao *string
	if err := q.db.QueryRow(ctx, query, id).Scan(&descricao); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return descricao, nil
}

// GetUtilizadorResumo devolve o utilizador com tipo e estado resolvidos.
func (q *Queries) GetUtilizadorResumo(ctx context.Context, id int64) (UtilizadorResumo, error) {
	const query = `
        SELECT u.id, u.nome, u.email, t.descricao_tipo, e.descricao_estado
        FROM utilizadores u
        LEFT JOIN tipo_utilizador t ON t.id = u.fk_tipo_utilizador_id
        LEFT JOIN estado_utilizador e ON e.id = u.fk_estado_utilizador_id
        WHERE u.id = $1
    `
	var r UtilizadorResumo
	err := q.db.QueryRow(ctx, query, id).Scan(&r.ID, &r.Nome, &r.Email, &r.Tipo, &r.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UtilizadorResumo{}, ErrNotFound
		}
		return UtilizadorResumo{}, err
	}
	return r, nil
}

// ListUtilizadores devolve todos os utilizadores com lookups resolvidos.
func (q *Queries) ListUtilizadores(ctx context.Context) ([]UtilizadorResumo, error) {
	const query = `
        SELECT u.id, u.nome, u.email, t.descricao_tipo, e.descricao_estado
        FROM utilizadores u
        LEFT JOIN tipo_utilizador t ON t.id = u.fk_tipo_utilizador_id
        LEFT JOIN estado_utilizador e ON e.id = u.fk_estado_utilizador_id
        ORDER BY u.id
    `
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumos []UtilizadorResumo
	for rows.Next() {
		var r UtilizadorResumo
		if err := rows.Scan(&r.ID, &r.Nome, &r.Email, &r.Tipo, &r.Estado); err != nil {
			return nil, err
		}
		resumos = append(resumos, r)
	}
	return resumos, rows.Err()
}

// uniqueViolation é o código SQLSTATE do Postgres para violação de unicidade.
const uniqueViolation = "23505"

// InsertUtilizador cria a conta com estado e tipo já resolvidos. A restrição
// de unicidade do email mapeia para ErrDuplicado, para o chamador decidir o
// conflito mesmo quando a verificação prévia perdeu a corrida.
func (q *Queries) InsertUtilizador(ctx context.Context, nome, email, senhaHash string, estadoID, tipoID int64) (Utilizador, error) {
	const query = `
        INSERT INTO utilizadores (nome, email, senha_hash, fk_estado_utilizador_id, fk_tipo_utilizador_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + utilizadorColumns
	u, err := scanUtilizador(q.db.QueryRow(ctx, query, nome, email, senhaHash, estadoID, tipoID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Utilizador{}, ErrDuplicado
		}
		return Utilizador{}, err
	}
	return u, nil
}

// UpdateUtilizadorCampos aplica num único UPDATE os campos não nulos.
func (q *Queries) UpdateUtilizadorCampos(ctx context.Context, id int64, nome, email *string, tipoID, estadoID *int64) error {
	const query = `
        UPDATE utilizadores
        SET nome = COALESCE($2, nome),
            email = COALESCE($3, email),
            fk_tipo_utilizador_id = COALESCE($4, fk_tipo_utilizador_id),
            fk_estado_utilizador_id = COALESCE($5, fk_estado_utilizador_id),
            atualizado_em = now()
        WHERE id = $1
    `
	tag, err := q.db.Exec(ctx, query, id, nome, email, tipoID, estadoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUtilizador remove definitivamente a conta.
func (q *Queries) DeleteUtilizador(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM utilizadores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUtilizadores conta todas as contas registadas.
func (q *Queries) CountUtilizadores(ctx context.Context) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM utilizadores`).Scan(&total)
	return total, err
}

// CountUtilizadoresAtivos conta por junção com o registo de estados filtrando
// a descrição exata 'Ativo'. Renomear essa entrada zera a contagem; o
// acoplamento à descrição faz parte do contrato da estatística.
func (q *Queries) CountUtilizadoresAtivos(ctx context.Context) (int64, error) {
	const query = `
        SELECT COUNT(*)
        FROM utilizadores u
        JOIN estado_utilizador e ON e.id = u.fk_estado_utilizador_id
        WHERE e.descricao_estado = 'Ativo'
    `
	var total int64
	err := q.db.QueryRow(ctx, query).Scan(&total)
	return total, err
}

// --- simulações ---

// ListSimulacoesByUtilizador devolve as simulações de um utilizador.
func (q *Queries) ListSimulacoesByUtilizador(ctx context.Context, utilizadorID int64) ([]Simulacao, error) {
	const query = `
        SELECT id, fk_utilizador_id, fk_estado_simulacao_id, nome, populacao_total,
               infetados_iniciais, taxa_contagio_beta, taxa_recuperacao_gamma, duracao_t,
               criado_em, atualizado_em
        FROM simulacoes
        WHERE fk_utilizador_id = $1
        ORDER BY id
    `
	rows, err := q.db.Query(ctx, query, utilizadorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var simulacoes []Simulacao
	for rows.Next() {
		var s Simulacao
		if err := rows.Scan(&s.ID, &s.UtilizadorID, &s.EstadoID, &s.Nome, &s.PopulacaoTotal,
			&s.InfetadosIniciais, &s.TaxaContagioBeta, &s.TaxaRecuperacaoGama, &s.DuracaoT,
			&s.CriadoEm, &s.AtualizadoEm); err != nil {
			return nil, err
		}
		simulacoes = append(simulacoes, s)
	}
	return simulacoes, rows.Err()
}

// CountSimulacoes conta todas as simulações da plataforma.
func (q *Queries) CountSimulacoes(ctx context.Context) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM simulacoes`).Scan(&total)
	return total, err
}

// CountSimulacoesByUtilizador conta as simulações de um utilizador.
func (q *Queries) CountSimulacoesByUtilizador(ctx context.Context, utilizadorID int64) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM simulacoes WHERE fk_utilizador_id = $1`, utilizadorID).Scan(&total)
	return total, err
}

// --- testes de doença ---

// InsertTesteDoenca regista um teste para o utilizador indicado.
func (q *Queries) InsertTesteDoenca(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (TesteDoenca, error) {
	const query = `
        INSERT INTO testes_doenca (fk_utilizador_id, nome_doenca, resultado)
        VALUES ($1, $2, $3)
        RETURNING id, fk_utilizador_id, nome_doenca, resultado, criado_em
    `
	var t TesteDoenca
	err := q.db.QueryRow(ctx, query, utilizadorID, nomeDoenca, resultado).
		Scan(&t.ID, &t.UtilizadorID, &t.NomeDoenca, &t.Resultado, &t.CriadoEm)
	return t, err
}

// ListTestesByUtilizador devolve os testes do utilizador, mais recentes primeiro.
func (q *Queries) ListTestesByUtilizador(ctx context.Context, utilizadorID int64) ([]TesteDoenca, error) {
	const query = `
        SELECT id, fk_utilizador_id, nome_doenca, resultado, criado_em
        FROM testes_doenca
        WHERE fk_utilizador_id = $1
        ORDER BY criado_em DESC
    `
	rows, err := q.db.Query(ctx, query, utilizadorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testes []TesteDoenca
	for rows.Next() {
		var t TesteDoenca
		if err := rows.Scan(&t.ID, &t.UtilizadorID, &t.NomeDoenca, &t.Resultado, &t.CriadoEm); err != nil {
			return nil, err
		}
		testes = append(testes, t)
	}
	return testes, rows.Err()
}
