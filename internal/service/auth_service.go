package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/healthsim/plataforma/internal/auth"
	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/session"
)

// EstadoAtivo é a descrição de estado atribuída a contas novas. O registo
// tem de conter esta linha para o registo de contas funcionar.
const EstadoAtivo = "Ativo"

// TipoPadrao é o tipo atribuído quando o registo não indica nenhum.
const TipoPadrao = "cliente"

// AuthRepo é o contrato de dados do registo de contas e do login.
type AuthRepo interface {
	GetUtilizadorByEmail(ctx context.Context, email string) (repo.Utilizador, error)
	GetTipoDescricaoByUtilizador(ctx context.Context, id int64) (*string, error)
	GetEstadoByDescricao(ctx context.Context, descricao string) (repo.EstadoUtilizador, error)
	GetTipoByDescricao(ctx context.Context, descricao string) (repo.TipoUtilizador, error)
	InsertUtilizador(ctx context.Context, nome, email, senhaHash string, estadoID, tipoID int64) (repo.Utilizador, error)
}

// AuthTxFunc executa fn com um AuthRepo ligado a uma transação. O registo de
// contas corre inteiro numa transação: verificação de email, lookups e insert.
type AuthTxFunc func(ctx context.Context, fn func(AuthRepo) error) error

type sessionStore interface {
	Create(ctx context.Context, identidade session.Identidade) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthService concentra registo de contas e ciclo de vida de sessões.
type AuthService struct {
	repo     AuthRepo
	sessions sessionStore
	emTx     AuthTxFunc
}

// NewAuthService cria novo serviço.
func NewAuthService(r AuthRepo, sessions sessionStore, emTx AuthTxFunc) *AuthService {
	return &AuthService{repo: r, sessions: sessions, emTx: emTx}
}

// LoginResult agrega a identidade estabelecida e o token da sessão.
type LoginResult struct {
	Identidade session.Identidade
	Token      string
}

// Login autentica por email (correspondência exata) e senha. O papel da
// sessão é a descrição de tipo do utilizador neste momento; alterações
// posteriores não afetam a sessão criada.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	user, err := s.repo.GetUtilizadorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Warn().Msg("login: utilizador não encontrado")
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	ok, err := auth.Verify(senha, user.SenhaHash)
	if err != nil {
		log.Warn().Err(err).Msg("login: verificação de senha falhou")
		return nil, ErrCredenciaisInvalidas
	}
	if !ok {
		log.Warn().Msg("login: senha inválida")
		return nil, ErrCredenciaisInvalidas
	}

	tipo, err := s.repo.GetTipoDescricaoByUtilizador(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	identidade := session.Identidade{ID: user.ID, Nome: user.Nome}
	if tipo != nil {
		identidade.Papel = *tipo
	}

	token, err := s.sessions.Create(ctx, identidade)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Identidade: identidade, Token: token}, nil
}

// Logout termina a sessão associada ao token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Register cria a conta com estado forçado a 'Ativo' e o tipo indicado.
// Corre numa transação; a corrida entre a verificação de email e o insert é
// fechada pela restrição de unicidade, que chega aqui como ErrDuplicado.
func (s *AuthService) Register(ctx context.Context, nome, email, senha, tipo string) error {
	senhaHash, err := auth.Hash(senha)
	if err != nil {
		return err
	}

	return s.emTx(ctx, func(r AuthRepo) error {
		if _, err := r.GetUtilizadorByEmail(ctx, email); err == nil {
			return ErrEmailEmUso
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		estado, err := r.GetEstadoByDescricao(ctx, EstadoAtivo)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrLookupAusente
			}
			return err
		}

		tipoEntrada, err := r.GetTipoByDescricao(ctx, tipo)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrLookupAusente
			}
			return err
		}

		if _, err := r.InsertUtilizador(ctx, nome, email, senhaHash, estado.ID, tipoEntrada.ID); err != nil {
			if errors.Is(err, repo.ErrDuplicado) {
				return ErrEmailEmUso
			}
			return err
		}

		log.Info().Str("email", email).Str("tipo", tipoEntrada.Descricao).Msg("utilizador registado")
		return nil
	})
}
