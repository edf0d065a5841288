package rbac

// Papel é o tipo fechado de papéis da plataforma. O valor corresponde à
// descrição armazenada na tabela tipo_utilizador.
type Papel string

const (
	PapelCliente Papel = "cliente"
	PapelGestor  Papel = "gestor"
	PapelDev     Papel = "dev"
	PapelAdmin   Papel = "admin"
)

// Parse converte a descrição de tipo em Papel. Papéis desconhecidos (tipos
// criados dinamicamente no registo) não dão acesso a nenhuma operação gerida.
func Parse(descricao string) (Papel, bool) {
	switch Papel(descricao) {
	case PapelCliente, PapelGestor, PapelDev, PapelAdmin:
		return Papel(descricao), true
	}
	return "", false
}

func (p Papel) String() string { return string(p) }

// In informa se o papel pertence ao conjunto indicado.
func (p Papel) In(papeis ...Papel) bool {
	for _, candidato := range papeis {
		if p == candidato {
			return true
		}
	}
	return false
}

// Conjuntos de papéis por operação. A assimetria entre eliminar estados e
// eliminar tipos replica a regra de negócio original.
var (
	// GerirEstados cobre criar, editar e eliminar estados de utilizador.
	GerirEstados = []Papel{PapelDev, PapelGestor, PapelAdmin}
	// GerirTipos cobre criar e editar tipos de utilizador.
	GerirTipos = []Papel{PapelDev, PapelAdmin}
	// EliminarTipos é restrito a dev.
	EliminarTipos = []Papel{PapelDev}
	// GerirUtilizadores guarda o acesso a PUT/DELETE /api/user/{id}.
	GerirUtilizadores = []Papel{PapelDev, PapelGestor, PapelAdmin}
	// EditarIdentidade permite alterar nome e email de outro utilizador.
	EditarIdentidade = []Papel{PapelDev}
	// EliminarUtilizadores é restrito a dev.
	EliminarUtilizadores = []Papel{PapelDev}
	// VerRegistosDeOutros cobre testes de doença e simulações de terceiros,
	// e a listagem completa de utilizadores.
	VerRegistosDeOutros = []Papel{PapelDev, PapelGestor, PapelAdmin}
)
