package service

import (
	"context"
	"errors"
	"strings"

	"github.com/healthsim/plataforma/internal/repo"
)

// Entrada é uma linha de um registo de lookup (id, descrição).
type Entrada struct {
	ID        int64
	Descricao string
}

// RegistryRepo é o contrato partilhado pelos dois registos de lookup.
// Estados e tipos têm implementações independentes; nunca se cruzam.
type RegistryRepo interface {
	List(ctx context.Context) ([]Entrada, error)
	GetByID(ctx context.Context, id int64) (Entrada, error)
	GetByDescricao(ctx context.Context, descricao string) (Entrada, error)
	Insert(ctx context.Context, descricao string) (Entrada, error)
	Update(ctx context.Context, id int64, descricao string) (Entrada, error)
	Delete(ctx context.Context, id int64) error
	CountUtilizadores(ctx context.Context, id int64) (int64, error)
}

// TxFunc executa fn com um RegistryRepo ligado a uma transação. A contagem
// de referências e a eliminação correm juntas para fechar a corrida entre
// contar e apagar.
type TxFunc func(ctx context.Context, fn func(RegistryRepo) error) error

// RegistryService gere um registo de lookup (estados ou tipos).
type RegistryService struct {
	repo     RegistryRepo
	entidade string
	emTx     TxFunc
}

// NewRegistryService cria o serviço para um registo concreto. entidade é o
// nome visível nas mensagens de conflito ("Estado" ou "Tipo").
func NewRegistryService(r RegistryRepo, entidade string, emTx TxFunc) *RegistryService {
	return &RegistryService{repo: r, entidade: entidade, emTx: emTx}
}

// Listar devolve as entradas ordenadas.
func (s *RegistryService) Listar(ctx context.Context) ([]Entrada, error) {
	return s.repo.List(ctx)
}

// Obter devolve uma entrada pelo id.
func (s *RegistryService) Obter(ctx context.Context, id int64) (Entrada, error) {
	return s.repo.GetByID(ctx, id)
}

// Criar insere uma descrição nova. Descrições duplicadas (correspondência
// exata) são recusadas ao nível da aplicação.
func (s *RegistryService) Criar(ctx context.Context, descricao string) (Entrada, error) {
	if strings.TrimSpace(descricao) == "" {
		return Entrada{}, ErrDadosInvalidos
	}

	if _, err := s.repo.GetByDescricao(ctx, descricao); err == nil {
		return Entrada{}, ErrDescricaoExiste
	} else if !errors.Is(err, repo.ErrNotFound) {
		return Entrada{}, err
	}

	return s.repo.Insert(ctx, descricao)
}

// Atualizar altera a descrição de uma entrada existente.
func (s *RegistryService) Atualizar(ctx context.Context, id int64, descricao string) (Entrada, error) {
	return s.repo.Update(ctx, id, descricao)
}

// Eliminar remove uma entrada se nenhum utilizador a referenciar. A
// verificação e a remoção correm na mesma transação; o conflito devolve a
// contagem exata de referências.
func (s *RegistryService) Eliminar(ctx context.Context, id int64) error {
	return s.emTx(ctx, func(r RegistryRepo) error {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}

		total, err := r.CountUtilizadores(ctx, id)
		if err != nil {
			return err
		}
		if total > 0 {
			return &EmUsoError{Entidade: s.entidade, Total: total}
		}

		return r.Delete(ctx, id)
	})
}
