package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/healthsim/plataforma/internal/config"
	"github.com/healthsim/plataforma/internal/db"
	httpmiddleware "github.com/healthsim/plataforma/internal/http/middleware"
	"github.com/healthsim/plataforma/internal/observability/metrics"
	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/service"
	"github.com/healthsim/plataforma/internal/session"
)

// Contratos consumidos pelos handlers; as implementações vivem em
// internal/service e os testes usam stubs.

type AuthService interface {
	Login(ctx context.Context, email, senha string) (*service.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, nome, email, senha, tipo string) error
}

type UserService interface {
	Listar(ctx context.Context) ([]repo.UtilizadorResumo, error)
	Obter(ctx context.Context, id int64) (repo.UtilizadorResumo, error)
	Atualizar(ctx context.Context, id int64, input service.AtualizarUtilizadorInput, papel rbac.Papel) error
	Eliminar(ctx context.Context, id int64, papel rbac.Papel) error
}

type RegistryService interface {
	Listar(ctx context.Context) ([]service.Entrada, error)
	Obter(ctx context.Context, id int64) (service.Entrada, error)
	Criar(ctx context.Context, descricao string) (service.Entrada, error)
	Atualizar(ctx context.Context, id int64, descricao string) (service.Entrada, error)
	Eliminar(ctx context.Context, id int64) error
}

type RecordService interface {
	CriarTeste(ctx context.Context, utilizadorID int64, nomeDoenca, resultado string) (repo.TesteDoenca, error)
	ListarTestes(ctx context.Context, utilizadorID int64) ([]repo.TesteDoenca, error)
	ListarSimulacoes(ctx context.Context, utilizadorID int64) ([]repo.Simulacao, error)
}

type StatsService interface {
	ContagemUtilizadores(ctx context.Context) (repo.ContagemUtilizadores, error)
	TotalSimulacoes(ctx context.Context) (int64, error)
	SimulacoesDoUtilizador(ctx context.Context, id int64) (*service.SimulacoesUtilizador, error)
}

// SessionResolver resolve tokens opacos para identidades de sessão.
type SessionResolver interface {
	Get(ctx context.Context, token string) (session.Identidade, error)
}

// Services agrega as dependências do Handler.
type Services struct {
	Auth    AuthService
	Users   UserService
	Estados RegistryService
	Tipos   RegistryService
	Records RecordService
	Stats   StatsService
}

// Handler expõe os endpoints REST da plataforma.
type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	auth          AuthService
	users         UserService
	estados       RegistryService
	tipos         RegistryService
	records       RecordService
	stats         StatsService
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
	devCookies    bool
}

// NewHandler cria o handler com as dependências fornecidas.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, svcs Services) *Handler {
	devCookies := false
	for _, origin := range cfg.AllowOrigins {
		if strings.Contains(origin, "localhost") {
			devCookies = true
			break
		}
	}

	return &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		auth:          svcs.Auth,
		users:         svcs.Users,
		estados:       svcs.Estados,
		tipos:         svcs.Tipos,
		records:       svcs.Records,
		stats:         svcs.Stats,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
		devCookies:    devCookies,
	}
}

// NewRouter devolve roteador configurado com todos os serviços reais.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) (http.Handler, error) {
	queries := repo.New(pool)
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	authTx := func(ctx context.Context, fn func(service.AuthRepo) error) error {
		return db.WithTx(ctx, pool, func(pctx context.Context, tx pgx.Tx) error {
			return fn(queries.WithTx(tx))
		})
	}
	userTx := func(ctx context.Context, fn func(service.UserRepo) error) error {
		return db.WithTx(ctx, pool, func(pctx context.Context, tx pgx.Tx) error {
			return fn(queries.WithTx(tx))
		})
	}
	estadoTx := func(ctx context.Context, fn func(service.RegistryRepo) error) error {
		return db.WithTx(ctx, pool, func(pctx context.Context, tx pgx.Tx) error {
			return fn(service.NewEstadoRegistryRepo(queries.WithTx(tx)))
		})
	}
	tipoTx := func(ctx context.Context, fn func(service.RegistryRepo) error) error {
		return db.WithTx(ctx, pool, func(pctx context.Context, tx pgx.Tx) error {
			return fn(service.NewTipoRegistryRepo(queries.WithTx(tx)))
		})
	}

	svcs := Services{
		Auth:    service.NewAuthService(queries, sessions, authTx),
		Users:   service.NewUserService(queries, userTx),
		Estados: service.NewRegistryService(service.NewEstadoRegistryRepo(queries), "Estado", estadoTx),
		Tipos:   service.NewRegistryService(service.NewTipoRegistryRepo(queries), "Tipo", tipoTx),
		Records: service.NewRecordService(queries),
		Stats:   service.NewStatsService(queries),
	}

	h := NewHandler(cfg, pool, redisClient, svcs)
	return h.Routes(sessions), nil
}

// Routes monta o roteador chi sobre o resolvedor de sessões indicado.
func (h *Handler) Routes(sessions SessionResolver) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(httpmiddleware.CORS(h.cfg.AllowOrigins))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(httpmiddleware.LoadSession(sessions))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

			public.Get("/stats/utilizadores", h.StatsUtilizadores)
			public.Get("/stats/simulacoes/total", h.StatsTotalSimulacoes)
			public.Get("/stats/simulacoes/utilizador/{userID}", h.StatsSimulacoesUtilizador)

			public.Post("/register", h.Register)
			public.Post("/login", h.Login)
			public.Post("/logout", h.Logout)
			public.Get("/session", h.Session)

			public.Get("/estado-utilizadores", h.ListEstados)
			public.Get("/tipo-utilizadores", h.ListTipos)
			public.Get("/user-info/{id}", h.UserInfo)
		})

		api.Group(func(private chi.Router) {
			private.Use(httpmiddleware.SessionRateLimit(h.authLimiter))

			private.With(httpmiddleware.RequirePapel(rbac.VerRegistosDeOutros...)).
				Get("/users", h.ListUsers)
			private.With(httpmiddleware.RequirePapel(rbac.GerirUtilizadores...)).
				Put("/user/{id}", h.UpdateUser)
			private.With(httpmiddleware.RequirePapel(rbac.GerirUtilizadores...)).
				Delete("/user/{id}", h.DeleteUser)

			private.Group(func(estados chi.Router) {
				estados.Use(httpmiddleware.RequirePapel(rbac.GerirEstados...))
				estados.Post("/estado-utilizador", h.CreateEstado)
				estados.Put("/estado-utilizador/{id}", h.UpdateEstado)
				estados.Delete("/estado-utilizador/{id}", h.DeleteEstado)
			})

			private.With(httpmiddleware.RequirePapel(rbac.GerirTipos...)).
				Post("/tipo-utilizador", h.CreateTipo)
			private.With(httpmiddleware.RequirePapel(rbac.GerirTipos...)).
				Put("/tipo-utilizador/{id}", h.UpdateTipo)
			// A assimetria é intencional: eliminar tipos é dev-only,
			// eliminar estados aceita dev/gestor/admin.
			private.With(httpmiddleware.RequirePapel(rbac.EliminarTipos...)).
				Delete("/tipo-utilizador/{id}", h.DeleteTipo)

			private.With(httpmiddleware.RequireSession).
				Post("/teste-denca", h.CreateTesteDoenca)
			private.With(httpmiddleware.RequireSession).
				Get("/testes-denca", h.ListTestesProprios)
			private.With(httpmiddleware.RequirePapel(rbac.VerRegistosDeOutros...)).
				Get("/testes-denca/{userID}", h.ListTestesUtilizador)
			private.With(httpmiddleware.RequirePapel(rbac.VerRegistosDeOutros...)).
				Get("/simulacoes-user/{userID}", h.ListSimulacoesUtilizador)
		})
	})

	return r
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		WriteErro(w, http.StatusServiceUnavailable, "base de dados indisponível")
		return
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		WriteErro(w, http.StatusServiceUnavailable, "redis indisponível")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}
