package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/service"
)

// Os dois registos de lookup partilham os mesmos handlers genéricos; muda o
// serviço, o nome da entidade nas mensagens e a chave JSON da descrição.

func entradaJSON(e service.Entrada, key string) map[string]any {
	return map[string]any{"id": e.ID, key: e.Descricao}
}

func (h *Handler) listRegistry(w http.ResponseWriter, r *http.Request, svc RegistryService, key string) {
	entradas, err := svc.Listar(r.Context())
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]any, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, entradaJSON(e, key))
	}
	WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) createRegistry(w http.ResponseWriter, r *http.Request, svc RegistryService, entidade, key string) {
	payload := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	descricao := payload[key]
	if descricao == "" {
		WriteErro(w, http.StatusBadRequest, "Descrição obrigatória")
		return
	}

	entrada, err := svc.Criar(r.Context(), descricao)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDescricaoExiste):
			WriteErro(w, http.StatusConflict, entidade+" já existe")
		case errors.Is(err, service.ErrDadosInvalidos):
			WriteErro(w, http.StatusBadRequest, "Descrição obrigatória")
		default:
			WriteErro(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	WriteJSON(w, http.StatusCreated, entradaJSON(entrada, key))
}

func (h *Handler) updateRegistry(w http.ResponseWriter, r *http.Request, svc RegistryService, entidade, key string) {
	id, err := idParam(r, "id")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	payload := map[string]*string{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	var entrada service.Entrada
	if descricao, ok := payload[key]; ok && descricao != nil {
		entrada, err = svc.Atualizar(r.Context(), id, *descricao)
	} else {
		// Pedido sem o campo da descrição devolve a entrada como está.
		entrada, err = svc.Obter(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteErro(w, http.StatusNotFound, entidade+" não encontrado")
			return
		}
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, entradaJSON(entrada, key))
}

func (h *Handler) deleteRegistry(w http.ResponseWriter, r *http.Request, svc RegistryService, entidade string) {
	id, err := idParam(r, "id")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := svc.Eliminar(r.Context(), id); err != nil {
		var emUso *service.EmUsoError
		switch {
		case errors.As(err, &emUso):
			WriteErro(w, http.StatusConflict, emUso.Error())
		case errors.Is(err, repo.ErrNotFound):
			WriteErro(w, http.StatusNotFound, entidade+" não encontrado")
		default:
			WriteErro(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- estados ---

func (h *Handler) ListEstados(w http.ResponseWriter, r *http.Request) {
	h.listRegistry(w, r, h.estados, "descricao_estado")
}

func (h *Handler) CreateEstado(w http.ResponseWriter, r *http.Request) {
	h.createRegistry(w, r, h.estados, "Estado", "descricao_estado")
}

func (h *Handler) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	h.updateRegistry(w, r, h.estados, "Estado", "descricao_estado")
}

func (h *Handler) DeleteEstado(w http.ResponseWriter, r *http.Request) {
	h.deleteRegistry(w, r, h.estados, "Estado")
}

// --- tipos ---

func (h *Handler) ListTipos(w http.ResponseWriter, r *http.Request) {
	h.listRegistry(w, r, h.tipos, "descricao_tipo")
}

func (h *Handler) CreateTipo(w http.ResponseWriter, r *http.Request) {
	h.createRegistry(w, r, h.tipos, "Tipo", "descricao_tipo")
}

func (h *Handler) UpdateTipo(w http.ResponseWriter, r *http.Request) {
	h.updateRegistry(w, r, h.tipos, "Tipo", "descricao_tipo")
}

func (h *Handler) DeleteTipo(w http.ResponseWriter, r *http.Request) {
	h.deleteRegistry(w, r, h.tipos, "Tipo")
}
