package dto

// ErrorResponse cuerpo de error HTTP.
// Available solo se llena en errores de stock insuficiente, para que el
// cliente pueda ofrecer la cantidad máxima vendible.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
}
