// Package receipts arma el recibo de un pago y lo entrega por los distintos
// canales: texto para impresora térmica, PDF, enlace compartible y correo.
package receipts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
	"github.com/jhoicas/isp-cobros/pkg/logger"
)

// Límites de ancho aceptados (papel de 58 mm a 80 mm con fuente condensada).
const (
	MinWidth = 24
	MaxWidth = 64
)

// Config parámetros del caso de uso.
type Config struct {
	DefaultWidth int
	Locale       string        // formato de moneda si el ISP no define uno
	PrinterAddr  string        // impresora por defecto
	PresignTTL   time.Duration // vigencia de los enlaces compartidos
}

// Deps dependencias del caso de uso. Storage y Mailer pueden ser nil:
// el canal correspondiente responde con su error de "no configurado".
type Deps struct {
	Payments     repository.PaymentRepository
	Customers    repository.CustomerRepository
	Invoices     repository.InvoiceRepository
	ISPs         repository.ISPRepository
	Collections  repository.CollectionRepository
	Printer      ReceiptPrinter
	PDFGenerator ReceiptPDFGenerator
	Storage      DocumentStorage
	Mailer       ReceiptMailer
	Reports      ReportWriter
	Logger       *logger.Logger
	Clock        receipt.Clock
}

// UseCase casos de uso del recibo de pago.
type UseCase struct {
	deps Deps
	cfg  Config
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(deps Deps, cfg Config) *UseCase {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = receipt.DefaultLineWidth
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 15 * time.Minute
	}
	return &UseCase{deps: deps, cfg: cfg}
}

// ── Carga ─────────────────────────────────────────────────────────────────────

// Load reúne pago, abonado, facturas e ISP en el view-model del recibo.
//
// Retorna:
//   - domain.ErrNotFound  si el pago o el ISP no existen.
//   - domain.ErrForbidden si el pago o el abonado pertenecen a otro ISP.
func (uc *UseCase) Load(ctx context.Context, ispID, receiptID string) (*receipt.Data, error) {
	data, _, err := uc.load(ctx, ispID, receiptID)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *UseCase) load(ctx context.Context, ispID, receiptID string) (*receipt.Data, *entity.ISP, error) {
	if strings.TrimSpace(receiptID) == "" {
		return nil, nil, fmt.Errorf("%w: id de recibo requerido", domain.ErrInvalidInput)
	}

	// ── 1. Pago ───────────────────────────────────────────────────────────────
	payment, err := uc.deps.Payments.GetByID(ctx, receiptID)
	if err != nil {
		return nil, nil, fmt.Errorf("recibo: obtener pago: %w", err)
	}
	if payment == nil {
		return nil, nil, domain.ErrNotFound
	}
	if payment.ISPID != ispID {
		return nil, nil, domain.ErrForbidden
	}

	// ── 2. ISP ────────────────────────────────────────────────────────────────
	isp, err := uc.deps.ISPs.GetByID(ctx, ispID)
	if err != nil {
		return nil, nil, fmt.Errorf("recibo: obtener ISP: %w", err)
	}
	if isp == nil {
		return nil, nil, fmt.Errorf("recibo: ISP %s: %w", ispID, domain.ErrNotFound)
	}

	// ── 3. Abonado (si no existe se imprime con marcadores) ───────────────────
	customer, err := uc.deps.Customers.GetByID(ctx, payment.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("recibo: obtener abonado: %w", err)
	}
	if customer != nil && customer.ISPID != ispID {
		return nil, nil, domain.ErrForbidden
	}

	// ── 4. Facturas a las que se aplicó el pago ───────────────────────────────
	apps, err := uc.deps.Payments.ListApplications(ctx, payment.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("recibo: obtener aplicaciones: %w", err)
	}
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.InvoiceID)
	}
	var invoices []*entity.Invoice
	if len(ids) > 0 {
		invoices, err = uc.deps.Invoices.GetByIDs(ctx, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("recibo: obtener facturas: %w", err)
		}
	}

	// ── 5. View-model (el total pendiente se calcula aquí, una sola vez) ─────
	data := receipt.NewData(
		toReceipt(payment),
		toCustomer(payment.CustomerID, customer),
		toInvoices(invoices),
		receipt.ISP{Name: isp.Name, Phone: isp.Phone, Address: isp.Address, Locale: uc.localeTag(isp)},
	)
	return &data, isp, nil
}

// ── Texto e impresión ─────────────────────────────────────────────────────────

// RenderText devuelve el ticket etiquetado listo para la impresora.
// width <= 0 usa el ancho configurado.
func (uc *UseCase) RenderText(ctx context.Context, ispID, receiptID string, width int) (string, error) {
	width, err := uc.resolveWidth(width)
	if err != nil {
		return "", err
	}
	data, isp, err := uc.load(ctx, ispID, receiptID)
	if err != nil {
		return "", err
	}
	return uc.formatter(isp).Format(*data, width), nil
}

// Print formatea y envía el ticket a la impresora indicada (o la configurada).
// Los fallos de conexión se reportan como domain.ErrPrinterUnavailable.
func (uc *UseCase) Print(ctx context.Context, ispID, receiptID string, width int, printerAddr string) error {
	addr := strings.TrimSpace(printerAddr)
	if addr == "" {
		addr = uc.cfg.PrinterAddr
	}
	if addr == "" {
		return fmt.Errorf("%w: impresora no indicada", domain.ErrInvalidInput)
	}
	width, err := uc.resolveWidth(width)
	if err != nil {
		return err
	}
	payload, err := uc.RenderText(ctx, ispID, receiptID, width)
	if err != nil {
		return err
	}

	job := PrintJob{Addr: addr, Payload: payload, CharactersPerLine: width}
	if err := uc.deps.Printer.Print(ctx, job); err != nil {
		uc.deps.Logger.Error().Err(err).
			Str("receipt_id", receiptID).
			Str("isp_id", ispID).
			Str("printer", addr).
			Msg("impresión de recibo fallida")
		return fmt.Errorf("%w: %v", domain.ErrPrinterUnavailable, err)
	}
	uc.deps.Logger.Info().
		Str("receipt_id", receiptID).
		Str("isp_id", ispID).
		Str("printer", addr).
		Int("width", width).
		Msg("recibo impreso")
	return nil
}

// ── PDF, enlace compartido y correo ───────────────────────────────────────────

// PDF genera el recibo en PDF y su nombre de archivo.
func (uc *UseCase) PDF(ctx context.Context, ispID, receiptID string) (pdfBytes []byte, filename string, err error) {
	data, err := uc.Load(ctx, ispID, receiptID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.deps.PDFGenerator.GenerateReceiptPDF(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación de PDF fallida: %w", err)
	}
	return pdfBytes, receiptFilename(data.Receipt.ID), nil
}

// Share sube el PDF al almacenamiento y devuelve un enlace temporal.
func (uc *UseCase) Share(ctx context.Context, ispID, receiptID string) (string, error) {
	if uc.deps.Storage == nil {
		return "", domain.ErrStorageDisabled
	}
	pdfBytes, filename, err := uc.PDF(ctx, ispID, receiptID)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("recibos/%s/%s", ispID, filename)
	if err := uc.deps.Storage.Upload(ctx, key, pdfBytes, "application/pdf"); err != nil {
		return "", fmt.Errorf("recibo: subir PDF: %w", err)
	}
	url, err := uc.deps.Storage.PresignGet(ctx, key, uc.cfg.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("recibo: firmar enlace: %w", err)
	}
	uc.deps.Logger.Info().Str("receipt_id", receiptID).Str("isp_id", ispID).Str("key", key).Msg("recibo compartido")
	return url, nil
}

// PresignTTL vigencia de los enlaces que devuelve Share.
func (uc *UseCase) PresignTTL() time.Duration { return uc.cfg.PresignTTL }

// Email envía el recibo en texto plano. Si to está vacío se usa el correo del abonado.
func (uc *UseCase) Email(ctx context.Context, ispID, receiptID, to string) (string, error) {
	if uc.deps.Mailer == nil {
		return "", domain.ErrMailerDisabled
	}
	data, isp, err := uc.load(ctx, ispID, receiptID)
	if err != nil {
		return "", err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		to = strings.TrimSpace(data.Customer.Email)
	}
	if to == "" {
		return "", domain.ErrNoRecipient
	}

	width := uc.cfg.DefaultWidth
	body := receipt.PlainText(uc.formatter(isp).Format(*data, width), width)
	msg := ReceiptEmail{
		To:      to,
		ToName:  data.Customer.FullName(),
		Subject: receipt.Sanitize(fmt.Sprintf("Recibo de pago No. %s - %s", data.Receipt.ID, isp.Name)),
		Body:    body,
	}
	if err := uc.deps.Mailer.SendReceipt(ctx, msg); err != nil {
		return "", fmt.Errorf("recibo: enviar correo: %w", err)
	}
	uc.deps.Logger.Info().Str("receipt_id", receiptID).Str("isp_id", ispID).Str("to", to).Msg("recibo enviado por correo")
	return to, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (uc *UseCase) resolveWidth(width int) (int, error) {
	if width <= 0 {
		return uc.cfg.DefaultWidth, nil
	}
	if width < MinWidth || width > MaxWidth {
		return 0, fmt.Errorf("%w: ancho %d fuera de rango (%d-%d)", domain.ErrInvalidInput, width, MinWidth, MaxWidth)
	}
	return width, nil
}

func (uc *UseCase) localeTag(isp *entity.ISP) string {
	if isp != nil && isp.Locale != "" {
		return isp.Locale
	}
	return uc.cfg.Locale
}

func (uc *UseCase) formatter(isp *entity.ISP) *receipt.Formatter {
	return receipt.NewFormatter(
		receipt.WithLocale(receipt.LocaleFor(uc.localeTag(isp))),
		receipt.WithClock(uc.deps.Clock),
	)
}

func receiptFilename(number string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, number)
	return "recibo_" + safe + ".pdf"
}
