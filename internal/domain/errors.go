package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidAmount = errors.New("cantidad fuera de rango")
	ErrForbidden     = errors.New("acceso denegado")
	ErrDuplicate     = errors.New("recurso duplicado")
)
