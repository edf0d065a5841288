package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	httpmiddleware "github.com/healthsim/plataforma/internal/http/middleware"
	"github.com/healthsim/plataforma/internal/observability/metrics"
	"github.com/healthsim/plataforma/internal/service"
	"github.com/healthsim/plataforma/internal/util"
)

// Register cria uma conta nova. O tipo por omissão é cliente; o estado é
// sempre forçado a Ativo.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Type     string `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if util.RequireString(payload.Name, "nome") != nil ||
		util.RequireString(payload.Email, "email") != nil ||
		util.RequireString(payload.Password, "senha") != nil {
		WriteErro(w, http.StatusBadRequest, "Campos obrigatórios em falta")
		return
	}
	if err := util.ValidateEmail(payload.Email); err != nil {
		WriteErro(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidatePassword(payload.Password); err != nil {
		WriteErro(w, http.StatusBadRequest, err.Error())
		return
	}

	tipo := strings.TrimSpace(payload.Type)
	if tipo == "" {
		tipo = service.TipoPadrao
	}

	if err := h.auth.Register(r.Context(), payload.Name, payload.Email, payload.Password, tipo); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailEmUso):
			WriteErro(w, http.StatusConflict, "Email já registado")
		case errors.Is(err, service.ErrLookupAusente):
			WriteErro(w, http.StatusInternalServerError, "Dados de lookup em falta")
		default:
			WriteErro(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// Login autentica e estabelece a sessão via cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	result, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			metrics.ObserveLogin("failed")
			WriteErro(w, http.StatusUnauthorized, "Credenciais inválidas")
			return
		}
		WriteErro(w, http.StatusInternalServerError, "erro ao autenticar")
		return
	}

	metrics.ObserveLogin("ok")
	h.setSessionCookie(w, result.Token)

	var tipo any
	if result.Identidade.Papel != "" {
		tipo = result.Identidade.Papel
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "type": tipo})
}

// Logout termina a sessão atual, se existir.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := httpmiddleware.GetToken(r.Context()); token != "" {
		_ = h.auth.Logout(r.Context(), token)
	}

	h.clearSessionCookie(w)
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session devolve a identidade da sessão atual.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	identidade, ok := httpmiddleware.GetIdentidade(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, map[string]any{})
		return
	}

	var tipo any
	if identidade.Papel != "" {
		tipo = identidade.Papel
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"id":   identidade.ID,
		"name": identidade.Nome,
		"type": tipo,
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	secure := !h.devCookies
	sameSite := http.SameSiteNoneMode
	if h.devCookies {
		sameSite = http.SameSiteLaxMode
	}
	cookie := &http.Cookie{
		Name:     httpmiddleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
	if h.cfg.SessionTTL > 0 {
		cookie.Expires = time.Now().Add(h.cfg.SessionTTL)
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	secure := !h.devCookies
	sameSite := http.SameSiteNoneMode
	if h.devCookies {
		sameSite = http.SameSiteLaxMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     httpmiddleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}
