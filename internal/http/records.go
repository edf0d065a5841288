package http

import (
	"encoding/json"
	"errors"
	"net/http"

	httpmiddleware "github.com/healthsim/plataforma/internal/http/middleware"
	"github.com/healthsim/plataforma/internal/observability/metrics"
	"github.com/healthsim/plataforma/internal/repo"
	"github.com/healthsim/plataforma/internal/service"
)

// Formato de data usado pelo frontend nos registos de testes.
const formatoDataTeste = "02/01/2006 15:04:05"

func testeJSON(t repo.TesteDoenca) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"nome_doenca": t.NomeDoenca,
		"resultado":   t.Resultado,
		"criado_em":   t.CriadoEm.Format(formatoDataTeste),
	}
}

func simulacaoJSON(s repo.Simulacao) map[string]any {
	return map[string]any{
		"id":       s.ID,
		"nome":     s.Nome,
		"autor_id": s.UtilizadorID,
	}
}

// CreateTesteDoenca regista um teste de doença para o utilizador autenticado.
func (h *Handler) CreateTesteDoenca(w http.ResponseWriter, r *http.Request) {
	identidade, ok := httpmiddleware.GetIdentidade(r.Context())
	if !ok {
		WriteErro(w, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var payload struct {
		NomeDoenca string `json:"nome_doenca"`
		Resultado  string `json:"resultado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "Dados inválidos")
		return
	}

	teste, err := h.records.CriarTeste(r.Context(), identidade.ID, payload.NomeDoenca, payload.Resultado)
	if err != nil {
		if errors.Is(err, service.ErrDadosInvalidos) {
			WriteErro(w, http.StatusBadRequest, "Dados inválidos")
			return
		}
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.ObserveTesteDoenca(teste.Resultado)
	WriteJSON(w, http.StatusCreated, testeJSON(teste))
}

// ListTestesProprios devolve os testes do utilizador autenticado.
func (h *Handler) ListTestesProprios(w http.ResponseWriter, r *http.Request) {
	identidade, ok := httpmiddleware.GetIdentidade(r.Context())
	if !ok {
		WriteErro(w, http.StatusUnauthorized, "Não autenticado")
		return
	}
	h.writeTestes(w, r, identidade.ID)
}

// ListTestesUtilizador devolve os testes de um utilizador arbitrário.
func (h *Handler) ListTestesUtilizador(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userID")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	h.writeTestes(w, r, id)
}

func (h *Handler) writeTestes(w http.ResponseWriter, r *http.Request, utilizadorID int64) {
	testes, err := h.records.ListarTestes(r.Context(), utilizadorID)
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]any, 0, len(testes))
	for _, t := range testes {
		out = append(out, testeJSON(t))
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListSimulacoesUtilizador devolve as simulações guardadas por um utilizador.
func (h *Handler) ListSimulacoesUtilizador(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userID")
	if err != nil {
		WriteErro(w, http.StatusBadRequest, "id inválido")
		return
	}

	simulacoes, err := h.records.ListarSimulacoes(r.Context(), id)
	if err != nil {
		WriteErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]any, 0, len(simulacoes))
	for _, s := range simulacoes {
		out = append(out, simulacaoJSON(s))
	}
	WriteJSON(w, http.StatusOK, out)
}
