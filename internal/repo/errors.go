package repo

import "errors"

var (
	// ErrNotFound é retornado quando nenhum registo é encontrado.
	ErrNotFound = errors.New("registo não encontrado")
	// ErrDuplicado é retornado quando um INSERT viola uma restrição de
	// unicidade (Postgres 23505).
	ErrDuplicado = errors.New("registo duplicado")
)
