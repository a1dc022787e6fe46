package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrNotFound cubre a propósito los dos casos "no existe" y "sin permiso":
// las consultas con filtro de autorización en el WHERE no distinguen entre
// ambos y la API tampoco debe hacerlo.
var (
	ErrNotFound     = errors.New("recurso no encontrado o sin permisos")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
