package dto

// PrintReceiptRequest body para POST /api/receipts/:id/print.
// Width 0 usa el ancho configurado; PrinterAddr vacío usa la impresora por defecto.
type PrintReceiptRequest struct {
	Width       int    `json:"width,omitempty"`
	PrinterAddr string `json:"printer_addr,omitempty"`
}

// PrintReceiptResponse resultado de la impresión.
type PrintReceiptResponse struct {
	Status    string `json:"status"`
	ReceiptID string `json:"receipt_id"`
}

// ShareReceiptResponse enlace temporal al PDF del recibo.
type ShareReceiptResponse struct {
	URL              string `json:"url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// EmailReceiptRequest body para POST /api/receipts/:id/email.
// To vacío envía al correo registrado del abonado.
type EmailReceiptRequest struct {
	To string `json:"to,omitempty"`
}

// EmailReceiptResponse destinatario final del correo.
type EmailReceiptResponse struct {
	Status string `json:"status"`
	To     string `json:"to"`
}
