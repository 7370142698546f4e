package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrForbidden    = errors.New("acceso denegado")

	// Recibos: impresión y canales de envío.
	ErrPrinterUnavailable = errors.New("impresora no disponible")
	ErrStorageDisabled    = errors.New("almacenamiento de documentos no configurado")
	ErrMailerDisabled     = errors.New("envío de correo no configurado")
	ErrNoRecipient        = errors.New("el cliente no tiene correo registrado")
)
