package util

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// TamanhoMinimoSenha é o mínimo aceite no registo de contas.
const TamanhoMinimoSenha = 8

// ValidateEmail recusa emails vazios ou sem formato RFC 5322.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email obrigatório")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("email inválido")
	}
	return nil
}

// ValidatePassword verifica o comprimento mínimo da senha. Não impõe
// classes de caracteres.
func ValidatePassword(password string) error {
	if len(password) < TamanhoMinimoSenha {
		return fmt.Errorf("senha deve ter pelo menos %d caracteres", TamanhoMinimoSenha)
	}
	return nil
}

// RequireString garante campo textual preenchido.
func RequireString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(field + " obrigatório")
	}
	return nil
}
