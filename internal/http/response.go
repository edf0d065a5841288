package http

import (
	"encoding/json"
	"net/http"
)

// WriteJSON escreve o corpo JSON tal como fornecido. Os corpos desta API
// seguem o formato histórico dos clientes: sem envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteErro escreve o corpo {"erro": mensagem} usado em todas as falhas.
func WriteErro(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"erro": message})
}
