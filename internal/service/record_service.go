package service

import (
	"context"
	"strings"

	"github.com/healthsim/plataforma/internal/repo"
)

// Resultados admitidos num teste de doença.
const (
	ResultadoPositivo = "positivo"
	ResultadoNegativo = "negativo"
)

type recordRepository interface {
	InsertTesteDoenca(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (repo.TesteDoenca, error)
	ListTestesByUtilizador(ctx context.Context, utilizadorID int64) ([]repo.TesteDoenca, error)
	ListSimulacoesByUtilizador(ctx context.Context, utilizadorID int64) ([]repo.Simulacao, error)
}

// RecordService cobre os registos de domínio: testes de doença e leitura de
// simulações. Não existe criação nem mutação de simulações aqui.
type RecordService struct {
	repo recordRepository
}

// NewRecordService cria novo serviço.
func NewRecordService(r recordRepository) *RecordService {
	return &RecordService{repo: r}
}

// CriarTeste regista um teste para o próprio utilizador autenticado.
func (s *RecordService) CriarTeste(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (repo.TesteDoenca, error) {
	nomeDoenca = strings.TrimSpace(nomeDoenca)
	resultado = strings.TrimSpace(resultado)

	if nomeDoenca == "" {
		return repo.TesteDoenca{}, ErrDadosInvalidos
	}
	if resultado != ResultadoPositivo && resultado != ResultadoNegativo {
		return repo.TesteDoenca{}, ErrDadosInvalidos
	}

	return s.repo.InsertTesteDoenca(ctx, utilizadorID, nomeDoenca, resultado)
}

// ListarTestes devolve os testes do utilizador, mais recentes primeiro.
func (s *RecordService) ListarTestes(ctx context.Context, utilizadorID int64) ([]repo.TesteDoenca, error) {
	return s.repo.ListTestesByUtilizador(ctx, utilizadorID)
}

// ListarSimulacoes devolve as simulações do utilizador.
func (s *RecordService) ListarSimulacoes(ctx context.Context, utilizadorID int64) ([]repo.Simulacao, error) {
	return s.repo.ListSimulacoesByUtilizador(ctx, utilizadorID)
}
