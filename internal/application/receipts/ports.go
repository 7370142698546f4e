package receipts

import (
	"context"
	"time"

	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// PrintJob trabajo de impresión ya formateado.
type PrintJob struct {
	Addr              string // host:puerto de la impresora
	Payload           string // texto etiquetado [L]/[C]/[R] + <b>
	CharactersPerLine int
}

// ReceiptPrinter envía el ticket a una impresora térmica.
type ReceiptPrinter interface {
	Print(ctx context.Context, job PrintJob) error
}

// ReceiptPDFGenerator genera la versión PDF del recibo para compartir o descargar.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data receipt.Data) ([]byte, error)
}

// DocumentStorage guarda documentos y entrega enlaces temporales de descarga.
type DocumentStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ReceiptEmail mensaje de correo con el recibo en texto plano.
type ReceiptEmail struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// ReceiptMailer envía el recibo por correo.
type ReceiptMailer interface {
	SendReceipt(ctx context.Context, msg ReceiptEmail) error
}

// ReportWriter genera el archivo del reporte de cobros.
type ReportWriter interface {
	WriteCollections(ctx context.Context, report CollectionReport) ([]byte, error)
}
