package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpmiddleware "github.com/healthsim/plataforma/internal/http/middleware"
	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/service"
)

func utilizadorResumoJSON(r repo.UtilizadorResumo) map[string]any {
	return map[string]any{
		"id":     r.ID,
		"nome":   r.Nome,
		"email":  r.Email,
		"tipo":   r.Tipo,
		"estado": r.Estado,
	}
}

// ListUsers devolve todos os utilizadores com tipo e estado resolvidos.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resumos, err := h.users.Listar(r.Context())
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]any, 0, len(resumos))
	for _, resumo := range resumos {
		out = append(out, utilizadorResumoJSON(resumo))
	}
	WriteJSON(w, http.StatusOK, out)
}

// UserInfo devolve tipo e estado de um utilizador concreto.
func (h *Handler) UserInfo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	resumo, err := h.users.Obter(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteErro(w, http.StatusNotFound, "Utilizador não encontrado")
			return
		}
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, utilizadorResumoJSON(resumo))
}

// UpdateUser aplica os campos permitidos ao papel do chamador. Campos fora
// do conjunto permitido, e descrições desconhecidas, são ignorados em
// silêncio.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	var payload struct {
		Nome   *string `json:"nome"`
		Email  *string `json:"email"`
		Tipo   *string `json:"tipo"`
		Estado *string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	input := service.AtualizarUtilizadorInput{
		Nome:   payload.Nome,
		Email:  payload.Email,
		Tipo:   payload.Tipo,
		Estado: payload.Estado,
	}

	if err := h.users.Atualizar(r.Context(), id, input, callerPapel(r)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteErro(w, http.StatusNotFound, "Utilizador não encontrado")
			return
		}
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteUser remove a conta; apenas dev.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := h.users.Eliminar(r.Context(), id, callerPapel(r)); err != nil {
		switch {
		case errors.Is(err, service.ErrSemPermissao):
			WriteErro(w, http.StatusForbidden, "Apenas dev pode apagar utilizadores")
		case errors.Is(err, repo.ErrNotFound):
			WriteErro(w, http.StatusNotFound, "Utilizador não encontrado")
		default:
			WriteErro(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func callerPapel(r *http.Request) rbac.Papel {
	identidade, ok := httpmiddleware.GetIdentidade(r.Context())
	if !ok {
		return ""
	}
	papel, _ := rbac.Parse(identidade.Papel)
	return papel
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
