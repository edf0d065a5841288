package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/repo"
)

// UserRepo é o contrato de dados das operações administrativas sobre contas.
type UserRepo interface {
	ListUtilizadores(ctx context.Context) ([]repo.UtilizadorResumo, error)
	GetUtilizadorResumo(ctx context.Context, id int64) (repo.UtilizadorResumo, error)
	GetUtilizadorByID(ctx context.Context, id int64) (repo.Utilizador, error)
	UpdateUtilizadorCampos(ctx context.Context, id int64, nome, email *string, tipoID, estadoID *int64) error
	DeleteUtilizador(ctx context.Context, id int64) error
	GetEstadoByDescricao(ctx context.Context, descricao string) (repo.EstadoUtilizador, error)
	GetTipoByDescricao(ctx context.Context, descricao string) (repo.TipoUtilizador, error)
}

// UserTxFunc executa fn com um UserRepo ligado a uma transação. A atualização
// resolve os lookups de tipo e estado e aplica o UPDATE na mesma transação.
type UserTxFunc func(ctx context.Context, fn func(UserRepo) error) error

// UserService gere as operações administrativas sobre contas.
type UserService struct {
	repo UserRepo
	emTx UserTxFunc
}

// NewUserService cria novo serviço.
func NewUserService(r UserRepo, emTx UserTxFunc) *UserService {
	return &UserService{repo: r, emTx: emTx}
}

// AtualizarUtilizadorInput carrega os campos presentes no pedido. Campos nil
// não foram submetidos.
type AtualizarUtilizadorInput struct {
	Nome   *string
	Email  *string
	Tipo   *string
	Estado *string
}

// Listar devolve todos os utilizadores com tipo e estado resolvidos.
func (s *UserService) Listar(ctx context.Context) ([]repo.UtilizadorResumo, error) {
	return s.repo.ListUtilizadores(ctx)
}

// Obter devolve um utilizador com tipo e estado resolvidos.
func (s *UserService) Obter(ctx context.Context, id int64) (repo.UtilizadorResumo, error) {
	return s.repo.GetUtilizadorResumo(ctx, id)
}

// Atualizar aplica os campos permitidos ao papel do chamador. Campos fora do
// conjunto permitido são ignorados em silêncio, tal como descrições de tipo
// ou estado que não existam no registo; nenhum destes casos é erro.
func (s *UserService) Atualizar(ctx context.Context, id int64, input AtualizarUtilizadorInput, papel rbac.Papel) error {
	return s.emTx(ctx, func(r UserRepo) error {
		if _, err := r.GetUtilizadorByID(ctx, id); err != nil {
			return err
		}

		var nome, email *string
		if papel.In(rbac.EditarIdentidade...) {
			nome = input.Nome
			email = input.Email
		}

		var tipoID, estadoID *int64
		if papel.In(rbac.GerirUtilizadores...) {
			if input.Tipo != nil {
				if tipo, err := r.GetTipoByDescricao(ctx, *input.Tipo); err == nil {
					tipoID = &tipo.ID
				} else if !errors.Is(err, repo.ErrNotFound) {
					return err
				}
			}
			if input.Estado != nil {
				if estado, err := r.GetEstadoByDescricao(ctx, *input.Estado); err == nil {
					estadoID = &estado.ID
				} else if !errors.Is(err, repo.ErrNotFound) {
					return err
				}
			}
		}

		if nome == nil && email == nil && tipoID == nil && estadoID == nil {
			return nil
		}

		return r.UpdateUtilizadorCampos(ctx, id, nome, email, tipoID, estadoID)
	})
}

// Eliminar remove a conta. Apenas dev tem este direito; gestor e admin
// passam o portão do endpoint mas não este. A existência do utilizador é
// verificada primeiro: conta inexistente é NotFound para qualquer papel.
func (s *UserService) Eliminar(ctx context.Context, id int64, papel rbac.Papel) error {
	if _, err := s.repo.GetUtilizadorByID(ctx, id); err != nil {
		return err
	}

	if !papel.In(rbac.EliminarUtilizadores...) {
		return ErrSemPermissao
	}

	if err := s.repo.DeleteUtilizador(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("utilizador_id", id).Msg("utilizador eliminado")
	return nil
}
