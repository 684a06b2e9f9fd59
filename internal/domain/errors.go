package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidWindow     = errors.New("ventana de tiempo inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")
	ErrSuperseded        = errors.New("carga reemplazada por una más reciente")
)
