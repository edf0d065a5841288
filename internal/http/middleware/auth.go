package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/healthsim/plataforma/internal/rbac"
	"github.com/healthsim/plataforma/internal/session"
)

type contextKey string

const (
	// ContextKeyIdentidade guarda a identidade resolvida da sessão.
	ContextKeyIdentidade contextKey = "identidade"
	// ContextKeyToken guarda o token bruto, para o logout o poder revogar.
	ContextKeyToken contextKey = "token"
)

// SessionCookie é o nome do cookie que transporta o token de sessão.
const SessionCookie = "sessao"

type sessionResolver interface {
	Get(ctx context.Context, token string) (session.Identidade, error)
}

// LoadSession resolve o token de sessão (cookie ou Bearer) para a identidade
// e injeta-a no contexto. Nunca rejeita por si: os portões ficam a cargo de
// RequireSession e RequirePapel.
func LoadSession(store sessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identidade, err := store.Get(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentidade, identidade)
			ctx = context.WithValue(ctx, ContextKeyToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentidade recupera a identidade do contexto.
func GetIdentidade(ctx context.Context) (session.Identidade, bool) {
	identidade, ok := ctx.Value(ContextKeyIdentidade).(session.Identidade)
	return identidade, ok
}

// GetToken recupera o token de sessão do contexto.
func GetToken(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeyToken).(string)
	return val
}

// RequireSession exige chamador autenticado; ausência de sessão é 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentidade(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePapel exige que o papel da sessão pertença ao conjunto indicado.
// Sessão ausente ou papel fora do conjunto respondem ambos 403; papéis
// desconhecidos (tipos criados dinamicamente) nunca passam.
func RequirePapel(papeis ...rbac.Papel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identidade, ok := GetIdentidade(r.Context())
			if !ok {
				writeError(w, http.StatusForbidden, "Sem permissão")
				return
			}

			papel, ok := rbac.Parse(identidade.Papel)
			if !ok || !papel.In(papeis...) {
				writeError(w, http.StatusForbidden, "Sem permissão")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": message})
}
