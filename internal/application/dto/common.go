package dto

// ErrorResponse cuerpo de error HTTP.
// Code es estable (INVALID_WINDOW, SOURCE_UNAVAILABLE, ...); Message es para humanos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
