package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthsim/plataforma/internal/repo"
)

type stubRecordRepo struct {
	testes     []repo.TesteDoenca
	simulacoes []repo.Simulacao
}

func (s *stubRecordRepo) InsertTesteDoenca(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (repo.TesteDoenca, error) {
	t := repo.TesteDoenca{
		ID:           int64(len(s.testes) + 1),
		UtilizadorID: utilizadorID,
		NomeDoenca:   nomeDoenca,
		Resultado:    resultado,
		CriadoEm:     time.Now(),
	}
	s.testes = append(s.testes, t)
	return t, nil
}

func (s *stubRecordRepo) ListTestesByUtilizador(ctx context.Context, utilizadorID int64) ([]repo.TesteDoenca, error) {
	var out []repo.TesteDoenca
	for _, t := range s.testes {
		if t.UtilizadorID == utilizadorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubRecordRepo) ListSimulacoesByUtilizador(ctx context.Context, utilizadorID int64) ([]repo.Simulacao, error) {
	var out []repo.Simulacao
	for _, sim := range s.simulacoes {
		if sim.UtilizadorID != nil && *sim.UtilizadorID == utilizadorID {
			out = append(out, sim)
		}
	}
	return out, nil
}

func TestCriarTeste(t *testing.T) {
	stub := &stubRecordRepo{}
	svc := NewRecordService(stub)

	teste, err := svc.CriarTeste(context.Background(), 1, "  gripe  ", "positivo")
	require.NoError(t, err)

	assert.Equal(t, "gripe", teste.NomeDoenca)
	assert.Equal(t, "positivo", teste.Resultado)
	assert.Equal(t, int64(1), teste.UtilizadorID)
}

func TestCriarTesteInvalido(t *testing.T) {
	svc := NewRecordService(&stubRecordRepo{})

	casos := []struct {
		nome      string
		doenca    string
		resultado string
	}{
		{"doença vazia", "", "positivo"},
		{"doença só espaços", "   ", "negativo"},
		{"resultado vazio", "gripe", ""},
		{"resultado desconhecido", "gripe", "inconclusivo"},
		{"resultado com maiúsculas", "gripe", "Positivo"},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := svc.CriarTeste(context.Background(), 1, c.doenca, c.resultado)
			assert.ErrorIs(t, err, ErrDadosInvalidos)
		})
	}
}

func TestListarTestes(t *testing.T) {
	stub := &stubRecordRepo{}
	svc := NewRecordService(stub)

	_, err := svc.CriarTeste(context.Background(), 1, "gripe", "negativo")
	require.NoError(t, err)
	_, err = svc.CriarTeste(context.Background(), 2, "sarampo", "positivo")
	require.NoError(t, err)

	testes, err := svc.ListarTestes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, testes, 1)
	assert.Equal(t, "gripe", testes[0].NomeDoenca)
}

func TestListarSimulacoes(t *testing.T) {
	autor := int64(1)
	outro := int64(2)
	nome := "surto urbano"
	stub := &stubRecordRepo{simulacoes: []repo.Simulacao{
		{ID: 1, UtilizadorID: &autor, Nome: &nome},
		{ID: 2, UtilizadorID: &outro},
	}}
	svc := NewRecordService(stub)

	simulacoes, err := svc.ListarSimulacoes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, simulacoes, 1)
	assert.Equal(t, int64(1), simulacoes[0].ID)
}
