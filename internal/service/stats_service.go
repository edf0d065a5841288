package service

import (
	"context"

	"github.com/healthsim/plataforma/internal/repo"
)

type statsRepository interface {
	CountUtilizadores(ctx context.Context) (int64, error)
	CountUtilizadoresAtivos(ctx context.Context) (int64, error)
	CountSimulacoes(ctx context.Context) (int64, error)
	CountSimulacoesByUtilizador(ctx context.Context, utilizadorID int64) (int64, error)
	GetUtilizadorByID(ctx context.Context, id int64) (repo.Utilizador, error)
}

// StatsService expõe as estatísticas agregadas. Todas as operações são
// somente leitura e seguras sob concorrência.
type StatsService struct {
	repo statsRepository
}

// NewStatsService cria novo serviço.
func NewStatsService(r statsRepository) *StatsService {
	return &StatsService{repo: r}
}

// SimulacoesUtilizador agrega a contagem de simulações de um utilizador.
type SimulacoesUtilizador struct {
	UtilizadorID int64
	Nome         string
	Total        int64
}

// ContagemUtilizadores devolve o total de registados e de ativos. Ativos
// conta por junção com a descrição exata 'Ativo' do registo de estados.
func (s *StatsService) ContagemUtilizadores(ctx context.Context) (repo.ContagemUtilizadores, error) {
	registados, err := s.repo.CountUtilizadores(ctx)
	if err != nil {
		return repo.ContagemUtilizadores{}, err
	}

	ativos, err := s.repo.CountUtilizadoresAtivos(ctx)
	if err != nil {
		return repo.ContagemUtilizadores{}, err
	}

	return repo.ContagemUtilizadores{Registados: registados, Ativos: ativos}, nil
}

// TotalSimulacoes devolve o total de simulações da plataforma.
func (s *StatsService) TotalSimulacoes(ctx context.Context) (int64, error) {
	return s.repo.CountSimulacoes(ctx)
}

// SimulacoesDoUtilizador devolve a contagem de simulações de um utilizador
// concreto. Utilizador inexistente é NotFound.
func (s *StatsService) SimulacoesDoUtilizador(ctx context.Context, id int64) (*SimulacoesUtilizador, error) {
	user, err := s.repo.GetUtilizadorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountSimulacoesByUtilizador(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SimulacoesUtilizador{UtilizadorID: user.ID, Nome: user.Nome, Total: total}, nil
}
