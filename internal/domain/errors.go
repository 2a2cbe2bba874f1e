package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrPasswordTooShort   = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrInvalidCredentials = errors.New("credenciales inválidas o email sin verificar")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfDeletion       = errors.New("no puedes eliminar tu propia cuenta")
	ErrNoItems            = errors.New("la solicitud debe incluir al menos un ítem")
	ErrRequestClosed      = errors.New("la solicitud ya fue resuelta")
)
