package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/healthsim/plataforma/internal/config"
	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/service"
	"github.com/healthsim/plataforma/internal/session"
)

type stubSessions struct {
	porToken map[string]session.Identidade
}

func (s *stubSessions) Get(ctx context.Context, token string) (session.Identidade, error) {
	if identidade, ok := s.porToken[token]; ok {
		return identidade, nil
	}
	return session.Identidade{}, session.ErrInvalida
}

type stubAuth struct {
	result     *service.LoginResult
	loginErr   error
	registados []string
	regErr     error
	logouts    []string
}

func (s *stubAuth) Login(ctx context.Context, email, senha string) (*service.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.result, nil
}

func (s *stubAuth) Logout(ctx context.Context, token string) error {
	s.logouts = append(s.logouts, token)
	return nil
}

func (s *stubAuth) Register(ctx context.Context, nome, email, senha, tipo string) error {
	if s.regErr != nil {
		return s.regErr
	}
	s.registados = append(s.registados, email)
	return nil
}

type stubUsers struct {
	resumos    []repo.UtilizadorResumo
	obterErr   error
	atualizado *service.AtualizarUtilizadorInput
	papelVisto rbac.Papel
	elimErr    error
}

func (s *stubUsers) Listar(ctx context.Context) ([]repo.UtilizadorResumo, error) {
	return s.resumos, nil
}

func (s *stubUsers) Obter(ctx context.Context, id int64) (repo.UtilizadorResumo, error) {
	if s.obterErr != nil {
		return repo.UtilizadorResumo{}, s.obterErr
	}
	for _, r := range s.resumos {
		if r.ID == id {
			return r, nil
		}
	}
	return repo.UtilizadorResumo{}, repo.ErrNotFound
}

func (s *stubUsers) Atualizar(ctx context.Context, id int64, input service.AtualizarUtilizadorInput, papel rbac.Papel) error {
	s.atualizado = &input
	s.papelVisto = papel
	return nil
}

func (s *stubUsers) Eliminar(ctx context.Context, id int64, papel rbac.Papel) error {
	s.papelVisto = papel
	return s.elimErr
}

type stubRegistry struct {
	entradas []service.Entrada
	criarErr error
	elimErr  error
}

func (s *stubRegistry) Listar(ctx context.Context) ([]service.Entrada, error) {
	return s.entradas, nil
}

func (s *stubRegistry) Obter(ctx context.Context, id int64) (service.Entrada, error) {
	for _, e := range s.entradas {
		if e.ID == id {
			return e, nil
		}
	}
	return service.Entrada{}, repo.ErrNotFound
}

func (s *stubRegistry) Criar(ctx context.Context, descricao string) (service.Entrada, error) {
	if s.criarErr != nil {
		return service.Entrada{}, s.criarErr
	}
	return service.Entrada{ID: 9, Descricao: descricao}, nil
}

func (s *stubRegistry) Atualizar(ctx context.Context, id int64, descricao string) (service.Entrada, error) {
	for _, e := range s.entradas {
		if e.ID == id {
			return service.Entrada{ID: id, Descricao: descricao}, nil
		}
	}
	return service.Entrada{}, repo.ErrNotFound
}

func (s *stubRegistry) Eliminar(ctx context.Context, id int64) error {
	return s.elimErr
}

type stubRecords struct {
	teste      repo.TesteDoenca
	criarErr   error
	testes     []repo.TesteDoenca
	simulacoes []repo.Simulacao
	pedidos    []int64
}

func (s *stubRecords) CriarTeste(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (repo.TesteDoenca, error) {
	if s.criarErr != nil {
		return repo.TesteDoenca{}, s.criarErr
	}
	return s.teste, nil
}

func (s *stubRecords) ListarTestes(ctx context.Context, utilizadorID int64) ([]repo.TesteDoenca, error) {
	s.pedidos = append(s.pedidos, utilizadorID)
	return s.testes, nil
}

func (s *stubRecords) ListarSimulacoes(ctx context.Context, utilizadorID int64) ([]repo.Simulacao, error) {
	s.pedidos = append(s.pedidos, utilizadorID)
	return s.simulacoes, nil
}

type stubStats struct {
	contagem repo.ContagemUtilizadores
	total    int64
	resumo   *service.SimulacoesUtilizador
	erro     error
}

func (s *stubStats) ContagemUtilizadores(ctx context.Context) (repo.ContagemUtilizadores, error) {
	return s.contagem, s.erro
}

func (s *stubStats) TotalSimulacoes(ctx context.Context) (int64, error) {
	return s.total, s.erro
}

func (s *stubStats) SimulacoesDoUtilizador(ctx context.Context, id int64) (*service.SimulacoesUtilizador, error) {
	if s.erro != nil {
		return nil, s.erro
	}
	if s.resumo == nil || s.resumo.UtilizadorID != id {
		return nil, repo.ErrNotFound
	}
	return s.resumo, nil
}

type testEnv struct {
	handler  http.Handler
	auth     *stubAuth
	users    *stubUsers
	estados  *stubRegistry
	tipos    *stubRegistry
	records  *stubRecords
	stats    *stubStats
	sessions *stubSessions
}

func newTestEnv() *testEnv {
	env := &testEnv{
		auth:    &stubAuth{},
		users:   &stubUsers{},
		estados: &stubRegistry{},
		tipos:   &stubRegistry{},
		records: &stubRecords{},
		stats:   &stubStats{},
		sessions: &stubSessions{porToken: map[string]session.Identidade{
			"tok-cliente": {ID: 1, Nome: "Carla", Papel: "cliente"},
			"tok-gestor":  {ID: 2, Nome: "Gil", Papel: "gestor"},
			"tok-dev":     {ID: 3, Nome: "Duarte", Papel: "dev"},
			"tok-admin":   {ID: 4, Nome: "Alda", Papel: "admin"},
			"tok-outro":   {ID: 5, Nome: "Olga", Papel: "investigador"},
		}},
	}

	cfg := &config.Config{
		Port:            8080,
		AllowOrigins:    []string{"http://localhost:5173"},
		RateLimitPublic: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		RateLimitAuth:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	h := NewHandler(cfg, nil, nil, Services{
		Auth:    env.auth,
		Users:   env.users,
		Estados: env.estados,
		Tipos:   env.tipos,
		Records: env.records,
		Stats:   env.stats,
	})
	env.handler = h.Routes(env.sessions)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sessao", Value: token})
	}

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("resposta não é JSON válido: %v (%s)", err, rec.Body.String())
	}
}

func wantErro(t *testing.T, rec *httptest.ResponseRecorder, status int, mensagem string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, esperado %d (%s)", rec.Code, status, rec.Body.String())
	}
	var body map[string]string
	decodeJSON(t, rec, &body)
	if body["erro"] != mensagem {
		t.Errorf("erro = %q, esperado %q", body["erro"], mensagem)
	}
}

func TestLoginFluxo(t *testing.T) {
	env := newTestEnv()
	env.auth.result = &service.LoginResult{
		Identidade: session.Identidade{ID: 2, Nome: "Gil", Papel: "gestor"},
		Token:      "tok-gestor",
	}

	rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "gil@exemplo.pt", "password": "segredo123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["success"] != true || body["type"] != "gestor" {
		t.Errorf("body inesperado: %v", body)
	}

	cookies := rec.Result().Cookies()
	var achou bool
	for _, c := range cookies {
		if c.Name == "sessao" && c.Value == "tok-gestor" && c.HttpOnly {
			achou = true
		}
	}
	if !achou {
		t.Error("cookie de sessão não definido")
	}
}

func TestLoginCredenciaisInvalidas(t *testing.T) {
	env := newTestEnv()
	env.auth.loginErr = service.ErrCredenciaisInvalidas

	rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "gil@exemplo.pt", "password": "errada",
	})
	wantErro(t, rec, http.StatusUnauthorized, "Credenciais inválidas")
}

func TestSessionSemAutenticacao(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/session", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", rec.Code)
	}
	if rec.Body.String() != "{}\n" {
		t.Errorf("body = %q, esperado objeto vazio", rec.Body.String())
	}
}

func TestSessionAutenticada(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/session", "tok-dev", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["id"] != float64(3) || body["name"] != "Duarte" || body["type"] != "dev" {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestLogoutRevogaToken(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/logout", "tok-cliente", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(env.auth.logouts) != 1 || env.auth.logouts[0] != "tok-cliente" {
		t.Errorf("logouts = %v", env.auth.logouts)
	}
}

func TestRegister(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Rui", "email": "rui@exemplo.pt", "password": "segredo123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(env.auth.registados) != 1 {
		t.Errorf("registados = %v", env.auth.registados)
	}
}

func TestRegisterCamposEmFalta(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Rui",
	})
	wantErro(t, rec, http.StatusBadRequest, "Campos obrigatórios em falta")
}

func TestRegisterEmailDuplicado(t *testing.T) {
	env := newTestEnv()
	env.auth.regErr = service.ErrEmailEmUso

	rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Rui", "email": "rui@exemplo.pt", "password": "segredo123",
	})
	wantErro(t, rec, http.StatusConflict, "Email já registado")
}

func TestStatsUtilizadores(t *testing.T) {
	env := newTestEnv()
	env.stats.contagem = repo.ContagemUtilizadores{Registados: 12, Ativos: 9}

	rec := env.do(t, http.MethodGet, "/api/stats/utilizadores", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]int64
	decodeJSON(t, rec, &body)
	if body["total_registados"] != 12 || body["total_ativos"] != 9 {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestStatsTotalSimulacoes(t *testing.T) {
	env := newTestEnv()
	env.stats.total = 37

	rec := env.do(t, http.MethodGet, "/api/stats/simulacoes/total", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]int64
	decodeJSON(t, rec, &body)
	if body["total_simulacoes"] != 37 {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestStatsSimulacoesUtilizador(t *testing.T) {
	env := newTestEnv()
	env.stats.resumo = &service.SimulacoesUtilizador{UtilizadorID: 5, Nome: "Olga", Total: 4}

	rec := env.do(t, http.MethodGet, "/api/stats/simulacoes/utilizador/5", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["id_utilizador"] != float64(5) || body["nome"] != "Olga" || body["total_simulacoes"] != float64(4) {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestStatsSimulacoesUtilizadorInexistente(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/stats/simulacoes/utilizador/42", "", nil)
	wantErro(t, rec, http.StatusNotFound, "Utilizador não encontrado")
}

func TestUserInfoPublico(t *testing.T) {
	env := newTestEnv()
	tipo := "cliente"
	env.users.resumos = []repo.UtilizadorResumo{{ID: 1, Nome: "Carla", Email: "carla@exemplo.pt", Tipo: &tipo}}

	rec := env.do(t, http.MethodGet, "/api/user-info/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["tipo"] != "cliente" || body["estado"] != nil {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestListUsersExigePapel(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/users", "", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")

	rec = env.do(t, http.MethodGet, "/api/users", "tok-cliente", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")

	rec = env.do(t, http.MethodGet, "/api/users", "tok-gestor", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("gestor deveria listar utilizadores, status = %d", rec.Code)
	}
}

func TestPapelDesconhecidoNuncaPassa(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/users", "tok-outro", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")
}

func TestUpdateUserPassaPapelDoChamador(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPut, "/api/user/1", "tok-gestor", map[string]string{
		"nome": "Novo Nome", "tipo": "gestor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if env.users.papelVisto != rbac.PapelGestor {
		t.Errorf("papel visto = %q", env.users.papelVisto)
	}
	if env.users.atualizado == nil || env.users.atualizado.Nome == nil || *env.users.atualizado.Nome != "Novo Nome" {
		t.Errorf("input inesperado: %+v", env.users.atualizado)
	}
}

func TestDeleteUserApenasDev(t *testing.T) {
	env := newTestEnv()
	env.users.elimErr = service.ErrSemPermissao

	rec := env.do(t, http.MethodDelete, "/api/user/1", "tok-gestor", nil)
	wantErro(t, rec, http.StatusForbidden, "Apenas dev pode apagar utilizadores")

	env.users.elimErr = nil
	rec = env.do(t, http.MethodDelete, "/api/user/1", "tok-dev", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dev deveria eliminar, status = %d", rec.Code)
	}
}

func TestCriarEstado(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/estado-utilizador", "tok-gestor", map[string]string{
		"descricao_estado": "Suspenso",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["descricao_estado"] != "Suspenso" {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestCriarEstadoDuplicado(t *testing.T) {
	env := newTestEnv()
	env.estados.criarErr = service.ErrDescricaoExiste

	rec := env.do(t, http.MethodPost, "/api/estado-utilizador", "tok-dev", map[string]string{
		"descricao_estado": "Ativo",
	})
	wantErro(t, rec, http.StatusConflict, "Estado já existe")
}

func TestCriarEstadoSemDescricao(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/estado-utilizador", "tok-admin", map[string]string{})
	wantErro(t, rec, http.StatusBadRequest, "Descrição obrigatória")
}

func TestAtualizarEstadoSemCampoDevolveAtual(t *testing.T) {
	env := newTestEnv()
	env.estados.entradas = []service.Entrada{{ID: 1, Descricao: "Ativo"}}

	rec := env.do(t, http.MethodPut, "/api/estado-utilizador/1", "tok-dev", map[string]string{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["descricao_estado"] != "Ativo" {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestEliminarEstadoEmUso(t *testing.T) {
	env := newTestEnv()
	env.estados.elimErr = &service.EmUsoError{Entidade: "Estado", Total: 3}

	rec := env.do(t, http.MethodDelete, "/api/estado-utilizador/1", "tok-gestor", nil)
	wantErro(t, rec, http.StatusConflict, "Estado ainda está em uso por 3 utilizador(es)")
}

func TestEliminarTipoRestritoADev(t *testing.T) {
	env := newTestEnv()

	// gestor não gere tipos de todo; admin gere mas não elimina.
	rec := env.do(t, http.MethodDelete, "/api/tipo-utilizador/1", "tok-gestor", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")

	rec = env.do(t, http.MethodDelete, "/api/tipo-utilizador/1", "tok-admin", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")

	rec = env.do(t, http.MethodDelete, "/api/tipo-utilizador/1", "tok-dev", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dev deveria eliminar tipo, status = %d", rec.Code)
	}
}

func TestCriarTipoComoGestorRecusado(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/tipo-utilizador", "tok-gestor", map[string]string{
		"descricao_tipo": "consultor",
	})
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")
}

func TestListarRegistosPublico(t *testing.T) {
	env := newTestEnv()
	env.tipos.entradas = []service.Entrada{{ID: 1, Descricao: "cliente"}}

	rec := env.do(t, http.MethodGet, "/api/tipo-utilizadores", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body []map[string]any
	decodeJSON(t, rec, &body)
	if len(body) != 1 || body[0]["descricao_tipo"] != "cliente" {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestCriarTesteDoenca(t *testing.T) {
	env := newTestEnv()
	criado := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	env.records.teste = repo.TesteDoenca{ID: 7, UtilizadorID: 1, NomeDoenca: "gripe", Resultado: "positivo", CriadoEm: criado}

	rec := env.do(t, http.MethodPost, "/api/teste-denca", "tok-cliente", map[string]string{
		"nome_doenca": "gripe", "resultado": "positivo",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeJSON(t, rec, &body)
	if body["criado_em"] != "14/03/2026 15:09:26" {
		t.Errorf("criado_em = %v, esperado formato dd/mm/aaaa", body["criado_em"])
	}
}

func TestCriarTesteSemSessao(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/teste-denca", "", map[string]string{
		"nome_doenca": "gripe", "resultado": "positivo",
	})
	wantErro(t, rec, http.StatusUnauthorized, "Não autenticado")
}

func TestCriarTesteInvalido(t *testing.T) {
	env := newTestEnv()
	env.records.criarErr = service.ErrDadosInvalidos

	rec := env.do(t, http.MethodPost, "/api/teste-denca", "tok-cliente", map[string]string{
		"nome_doenca": "", "resultado": "talvez",
	})
	wantErro(t, rec, http.StatusBadRequest, "Dados inválidos")
}

func TestListarTestesProprios(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/testes-denca", "tok-cliente", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(env.records.pedidos) != 1 || env.records.pedidos[0] != 1 {
		t.Errorf("pedidos = %v, esperado [1]", env.records.pedidos)
	}
}

func TestListarTestesDeOutroExigePapel(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/testes-denca/2", "tok-cliente", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")

	rec = env.do(t, http.MethodGet, "/api/testes-denca/2", "tok-admin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin deveria ver testes de outros, status = %d", rec.Code)
	}
}

func TestSimulacoesDeOutroRecusadoParaCliente(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/simulacoes-user/2", "tok-cliente", nil)
	wantErro(t, rec, http.StatusForbidden, "Sem permissão")
}

func TestSimulacoesDeOutroComoGestor(t *testing.T) {
	env := newTestEnv()
	autor := int64(2)
	nome := "surto urbano"
	env.records.simulacoes = []repo.Simulacao{{ID: 11, UtilizadorID: &autor, Nome: &nome}}

	rec := env.do(t, http.MethodGet, "/api/simulacoes-user/2", "tok-gestor", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body []map[string]any
	decodeJSON(t, rec, &body)
	if len(body) != 1 || body[0]["nome"] != "surto urbano" || body[0]["autor_id"] != float64(2) {
		t.Errorf("body inesperado: %v", body)
	}
}

func TestTokenViaBearer(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer tok-dev")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
