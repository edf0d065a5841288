package service

import (
	"errors"
	"fmt"
)

var (
	// ErrCredenciaisInvalidas indica falha na autenticação.
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	// ErrEmailEmUso indica tentativa de registo com email já existente.
	ErrEmailEmUso = errors.New("email já registado")
	// ErrLookupAusente indica que as linhas de lookup obrigatórias (estado
	// 'Ativo' ou o tipo pedido) não existem. Falha de bootstrap, não 4xx.
	ErrLookupAusente = errors.New("dados de lookup em falta")
	// ErrSemPermissao indica papel sem direito à operação.
	ErrSemPermissao = errors.New("sem permissão")
	// ErrDadosInvalidos indica entrada malformada.
	ErrDadosInvalidos = errors.New("dados inválidos")
	// ErrDescricaoExiste indica descrição duplicada num registo de lookup.
	ErrDescricaoExiste = errors.New("descrição já existe")
)

// EmUsoError sinaliza a recusa de eliminar uma entrada de lookup ainda
// referenciada, com a contagem exata de utilizadores que a usam.
type EmUsoError struct {
	Entidade string
	Total    int64
}

func (e *EmUsoError) Error() string {
	return fmt.Sprintf("%s ainda está em uso por %d utilizador(es)", e.Entidade, e.Total)
}
