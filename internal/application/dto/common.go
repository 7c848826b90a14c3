package dto

// PageRequest paginación de listados públicos (por número de página).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Clamp normaliza la página y el tamaño: page mínimo 1, limit en [1,50],
// con 10 por defecto. Valores fuera de rango se ajustan, no se rechazan.
func (p *PageRequest) Clamp() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 50 {
		p.Limit = 50
	}
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FieldError error de validación de un campo concreto.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ErrorResponse cuerpo de error HTTP. Errors solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
