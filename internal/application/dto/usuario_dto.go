package dto

import (
	"strings"
	"unicode/utf8"
)

// SignupRequest entrada de registro (password en claro, se hashea en el use case).
type SignupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"omitempty,oneof=investigador explorador admin"`
}

// Validar valida el registro. Devuelve la lista de errores por campo.
func (r SignupRequest) Validar() []FieldError {
	var errs []FieldError
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		errs = append(errs, FieldError{Campo: "email", Mensaje: "email requerido y válido"})
	}
	if n := utf8.RuneCountInString(r.Username); n < 3 || n > 40 {
		errs = append(errs, FieldError{Campo: "username", Mensaje: "username entre 3 y 40 caracteres"})
	}
	if utf8.RuneCountInString(r.Password) < 8 {
		errs = append(errs, FieldError{Campo: "password", Mensaje: "password debe tener al menos 8 caracteres"})
	}
	return errs
}

// SignupResponse salida del registro.
type SignupResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

// SigninRequest entrada para iniciar sesión.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida pública de un usuario (sin password).
type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// SigninResponse salida con el token de sesión firmado.
type SigninResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
