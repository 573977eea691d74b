package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todas las operaciones del
// cliente normalizan sus fallos a uno de estos centinelas, envuelto con el
// mensaje legible que se muestra al usuario.
var (
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrNotFoundLocally  = errors.New("no encontrado en la página cargada")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrMissingRole      = errors.New("respuesta sin información de rol")
	ErrOrderLocked      = errors.New("los ítems del pedido ya no son editables")
	ErrServer           = errors.New("error del servidor")
	ErrNetwork          = errors.New("error de red")
	ErrSessionNotReady  = errors.New("la sesión aún se está inicializando")
)
