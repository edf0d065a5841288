package http

import (
	"errors"
	"net/http"

	"github.com/healthsim/plataforma/internal/repo"
)

// StatsUtilizadores devolve os totais de utilizadores registados e ativos.
func (h *Handler) StatsUtilizadores(w http.ResponseWriter, r *http.Request) {
	contagem, err := h.stats.ContagemUtilizadores(r.Context())
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, "Erro na BD: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int64{
		"total_registados": contagem.Registados,
		"total_ativos":     contagem.Ativos,
	})
}

// StatsTotalSimulacoes devolve o total global de simulações guardadas.
func (h *Handler) StatsTotalSimulacoes(w http.ResponseWriter, r *http.Request) {
	total, err := h.stats.TotalSimulacoes(r.Context())
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, "Erro na BD: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int64{"total_simulacoes": total})
}

// StatsSimulacoesUtilizador devolve o total de simulações de um utilizador.
func (h *Handler) StatsSimulacoesUtilizador(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userID")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	resumo, err := h.stats.SimulacoesDoUtilizador(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteErro(w, http.StatusNotFound, "Utilizador não encontrado")
			return
		}
		WriteErro(w, http.StatusInternalServerError, "Erro na BD: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"id_utilizador":    resumo.UtilizadorID,
		"nome":             resumo.Nome,
		"total_simulacoes": resumo.Total,
	})
}
