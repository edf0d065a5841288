package repo

import "time"

// EstadoUtilizador é uma entrada do registo de estados (ex.: Ativo, Inativo).
type EstadoUtilizador struct {
	ID        int64
	Descricao string
}

// TipoUtilizador é uma entrada do registo de tipos (cliente, gestor, dev, admin).
type TipoUtilizador struct {
	ID        int64
	Descricao string
}

// EstadoSimulacao é o registo de estados de simulação. Nenhum endpoint o
// consome hoje; a tabela existe para as chaves estrangeiras de simulacoes.
type EstadoSimulacao struct {
	ID        int64
	Descricao string
}

// Utilizador representa uma conta da plataforma. Estado e tipo resolvem por
// chave estrangeira para as tabelas de lookup, nunca por texto embutido.
type Utilizador struct {
	ID             int64
	Nome           string
	Email          string
	SenhaHash      string
	GeneroID       *int64
	DataNascimento *time.Time
	ImgURL         *string
	EstadoID       *int64
	TipoID         *int64
	CriadoEm       time.Time
	AtualizadoEm   time.Time
}

// UtilizadorResumo agrega o utilizador com as descrições de lookup já
// resolvidas, no formato devolvido pelas listagens.
type UtilizadorResumo struct {
	ID     int64
	Nome   string
	Email  string
	Tipo   *string
	Estado *string
}

// Simulacao guarda os parâmetros SIR de uma simulação epidémica. Os campos
// são registados, nunca calculados aqui.
type Simulacao struct {
	ID                  int64
	UtilizadorID        *int64
	EstadoID            *int64
	Nome                *string
	PopulacaoTotal      *int64
	InfetadosIniciais   *int64
	TaxaContagioBeta    *string
	TaxaRecuperacaoGama *string
	DuracaoT            *int64
	CriadoEm            time.Time
	AtualizadoEm        time.Time
}

// TesteDoenca é um teste de doença registado pelo próprio utilizador.
type TesteDoenca struct {
	ID           int64
	UtilizadorID int64
	NomeDoenca   string
	Resultado    string
	CriadoEm     time.Time
}

// ContagemUtilizadores agrega os totais de utilizadores.
type ContagemUtilizadores struct {
	Registados int64
	Ativos     int64
}
