package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/repo"
)

type camposAtualizados struct {
	nome     *string
	email    *string
	tipoID   *int64
	estadoID *int64
}

type stubUserRepo struct {
	user       repo.Utilizador
	estados    map[string]repo.EstadoUtilizador
	tipos      map[string]repo.TipoUtilizador
	atualizado *camposAtualizados
	eliminado  bool
}

func (s *stubUserRepo) ListUtilizadores(ctx context.Context) ([]repo.UtilizadorResumo, error) {
	return nil, nil
}

func (s *stubUserRepo) GetUtilizadorResumo(ctx context.Context, id int64) (repo.UtilizadorResumo, error) {
	if id == s.user.ID {
		return repo.UtilizadorResumo{ID: s.user.ID, Nome: s.user.Nome, Email: s.user.Email}, nil
	}
	return repo.UtilizadorResumo{}, repo.ErrNotFound
}

func (s *stubUserRepo) GetUtilizadorByID(ctx context.Context, id int64) (repo.Utilizador, error) {
	if id == s.user.ID {
		return s.user, nil
	}
	return repo.Utilizador{}, repo.ErrNotFound
}

func (s *stubUserRepo) UpdateUtilizadorCampos(ctx context.Context, id int64, nome, email *string, tipoID, estadoID *int64) error {
	s.atualizado = &camposAtualizados{nome: nome, email: email, tipoID: tipoID, estadoID: estadoID}
	return nil
}

func (s *stubUserRepo) DeleteUtilizador(ctx context.Context, id int64) error {
	if id != s.user.ID {
		return repo.ErrNotFound
	}
	s.eliminado = true
	return nil
}

func (s *stubUserRepo) GetEstadoByDescricao(ctx context.Context, descricao string) (repo.EstadoUtilizador, error) {
	if estado, ok := s.estados[descricao]; ok {
		return estado, nil
	}
	return repo.EstadoUtilizador{}, repo.ErrNotFound
}

func (s *stubUserRepo) GetTipoByDescricao(ctx context.Context, descricao string) (repo.TipoUtilizador, error) {
	if tipo, ok := s.tipos[descricao]; ok {
		return tipo, nil
	}
	return repo.TipoUtilizador{}, repo.ErrNotFound
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		user:    repo.Utilizador{ID: 1, Nome: "Ana", Email: "ana@exemplo.pt"},
		estados: map[string]repo.EstadoUtilizador{"Ativo": {ID: 10, Descricao: "Ativo"}, "Inativo": {ID: 11, Descricao: "Inativo"}},
		tipos:   map[string]repo.TipoUtilizador{"cliente": {ID: 20, Descricao: "cliente"}, "gestor": {ID: 21, Descricao: "gestor"}},
	}
}

// emTxUser entrega o próprio stub a fn, sem transação real.
func emTxUser(stub *stubUserRepo) UserTxFunc {
	return func(ctx context.Context, fn func(UserRepo) error) error {
		return fn(stub)
	}
}

func strPtr(s string) *string { return &s }

func TestAtualizarComoDev(t *testing.T) {
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	input := AtualizarUtilizadorInput{
		Nome:   strPtr("Ana Maria"),
		Email:  strPtr("ana.maria@exemplo.pt"),
		Tipo:   strPtr("gestor"),
		Estado: strPtr("Inativo"),
	}
	require.NoError(t, svc.Atualizar(context.Background(), 1, input, rbac.PapelDev))

	require.NotNil(t, stub.atualizado)
	assert.Equal(t, "Ana Maria", *stub.atualizado.nome)
	assert.Equal(t, "ana.maria@exemplo.pt", *stub.atualizado.email)
	assert.Equal(t, int64(21), *stub.atualizado.tipoID)
	assert.Equal(t, int64(11), *stub.atualizado.estadoID)
}

func TestAtualizarGestorIgnoraIdentidade(t *testing.T) {
	// gestor pode mudar tipo e estado mas nome e email são ignorados.
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	input := AtualizarUtilizadorInput{
		Nome:  strPtr("Outro Nome"),
		Email: strPtr("outro@exemplo.pt"),
		Tipo:  strPtr("gestor"),
	}
	require.NoError(t, svc.Atualizar(context.Background(), 1, input, rbac.PapelGestor))

	require.NotNil(t, stub.atualizado)
	assert.Nil(t, stub.atualizado.nome)
	assert.Nil(t, stub.atualizado.email)
	assert.Equal(t, int64(21), *stub.atualizado.tipoID)
}

func TestAtualizarTipoDesconhecidoIgnorado(t *testing.T) {
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	input := AtualizarUtilizadorInput{Tipo: strPtr("astronauta"), Estado: strPtr("Inativo")}
	require.NoError(t, svc.Atualizar(context.Background(), 1, input, rbac.PapelAdmin))

	require.NotNil(t, stub.atualizado)
	assert.Nil(t, stub.atualizado.tipoID)
	assert.Equal(t, int64(11), *stub.atualizado.estadoID)
}

func TestAtualizarSemCamposResolvidos(t *testing.T) {
	// Quando nada sobra após o filtro de papel, não há UPDATE nem erro.
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	input := AtualizarUtilizadorInput{Nome: strPtr("Outro"), Tipo: strPtr("astronauta")}
	require.NoError(t, svc.Atualizar(context.Background(), 1, input, rbac.PapelGestor))
	assert.Nil(t, stub.atualizado)
}

func TestAtualizarUtilizadorInexistente(t *testing.T) {
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	err := svc.Atualizar(context.Background(), 42, AtualizarUtilizadorInput{Nome: strPtr("x")}, rbac.PapelDev)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestEliminarComoDev(t *testing.T) {
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	require.NoError(t, svc.Eliminar(context.Background(), 1, rbac.PapelDev))
	assert.True(t, stub.eliminado)
}

func TestEliminarRecusadoParaGestorEAdmin(t *testing.T) {
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	assert.ErrorIs(t, svc.Eliminar(context.Background(), 1, rbac.PapelGestor), ErrSemPermissao)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 1, rbac.PapelAdmin), ErrSemPermissao)
	assert.False(t, stub.eliminado)
}

func TestEliminarInexistenteENotFoundParaQualquerPapel(t *testing.T) {
	// A existência ganha à permissão: conta inexistente responde NotFound
	// mesmo a papéis que não poderiam eliminar.
	stub := newStubUserRepo()
	svc := NewUserService(stub, emTxUser(stub))

	assert.ErrorIs(t, svc.Eliminar(context.Background(), 42, rbac.PapelGestor), repo.ErrNotFound)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 42, rbac.PapelAdmin), repo.ErrNotFound)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 42, rbac.PapelDev), repo.ErrNotFound)
}
