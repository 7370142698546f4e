package receipts_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePayments struct {
	payments map[string]*entity.Payment
	apps     map[string][]entity.PaymentApplication
}

func (f *fakePayments) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePayments) ListApplications(_ context.Context, paymentID string) ([]entity.PaymentApplication, error) {
	return f.apps[paymentID], nil
}

type fakeCustomers map[string]*entity.Customer

func (f fakeCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f[id], nil
}

type fakeInvoices map[string]*entity.Invoice

func (f fakeInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f[id], nil
}

func (f fakeInvoices) GetByIDs(_ context.Context, ids []string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, id := range ids {
		if inv, ok := f[id]; ok {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeISPs map[string]*entity.ISP

func (f fakeISPs) GetByID(_ context.Context, id string) (*entity.ISP, error) {
	return f[id], nil
}

type fakeCollections struct {
	rows     []repository.CollectionRow
	from, to time.Time
}

func (f *fakeCollections) ListCollections(_ context.Context, _ string, from, to time.Time) ([]repository.CollectionRow, error) {
	f.from, f.to = from, to
	return f.rows, nil
}

type fakePrinter struct {
	jobs []receipts.PrintJob
	err  error
}

func (f *fakePrinter) Print(_ context.Context, job receipts.PrintJob) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type fakePDF struct{ got []receipt.Data }

func (f *fakePDF) GenerateReceiptPDF(_ context.Context, data receipt.Data) ([]byte, error) {
	f.got = append(f.got, data)
	return []byte("%PDF-1.3 fake"), nil
}

type fakeStorage struct {
	uploads map[string][]byte
	ttl     time.Duration
}

func (f *fakeStorage) Upload(_ context.Context, key string, body []byte, _ string) error {
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[key] = body
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	f.ttl = ttl
	return "https://s3.local/" + key + "?firma=1", nil
}

type fakeMailer struct{ sent []receipts.ReceiptEmail }

func (f *fakeMailer) SendReceipt(_ context.Context, msg receipts.ReceiptEmail) error {
	f.sent = append(f.sent, msg)
	return nil
}

type fakeReports struct{ got receipts.CollectionReport }

func (f *fakeReports) WriteCollections(_ context.Context, r receipts.CollectionReport) ([]byte, error) {
	f.got = r
	return []byte("xlsx"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	ispID     = "isp-1"
	otherISP  = "isp-2"
	paymentID = "pay-1"
)

var now = time.Date(2026, time.October, 19, 15, 4, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type env struct {
	uc          *receipts.UseCase
	payments    *fakePayments
	customers   fakeCustomers
	isps        fakeISPs
	collections *fakeCollections
	printer     *fakePrinter
	pdf         *fakePDF
	storage     *fakeStorage
	mailer      *fakeMailer
	reports     *fakeReports
}

func newEnv(t *testing.T, withChannels bool) *env {
	t.Helper()
	marchStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	e := &env{
		payments: &fakePayments{
			payments: map[string]*entity.Payment{
				paymentID: {
					ID: paymentID, ISPID: ispID, CustomerID: "cus-1", Number: "R-2031",
					PaidAt: time.Date(2025, 3, 7, 14, 5, 0, 0, time.UTC),
					Amount: dec("400.00"), Method: entity.PaymentMethodTransfer, CashierName: "María Peña",
					Bank: "Banco Popular", Reference: "TRX-998877",
				},
				"pay-foreign": {ID: "pay-foreign", ISPID: ispID, CustomerID: "cus-foreign", Number: "R-9"},
				"pay-orphan":  {ID: "pay-orphan", ISPID: ispID, CustomerID: "cus-borrado", Number: "R-10", Amount: dec("50")},
			},
			apps: map[string][]entity.PaymentApplication{
				paymentID: {
					{PaymentID: paymentID, InvoiceID: "inv-1", Amount: dec("400")},
					{PaymentID: paymentID, InvoiceID: "inv-2", Amount: dec("0")},
				},
			},
		},
		customers: fakeCustomers{
			"cus-1": {
				ID: "cus-1", ISPID: ispID, Code: "C-77", FirstNames: "José", LastNames: "Núñez",
				Phone: "809-555-0101", Address: "Calle Duarte #45", Email: "jose@example.com",
			},
			"cus-foreign": {ID: "cus-foreign", ISPID: otherISP},
		},
		isps: fakeISPs{
			ispID: {ID: ispID, Name: "FibraNet", Phone: "809-555-0000", Status: entity.ISPStatusActive},
		},
		collections: &fakeCollections{},
		printer:     &fakePrinter{},
		pdf:         &fakePDF{},
		reports:     &fakeReports{},
	}
	invoices := fakeInvoices{
		"inv-1": {
			ID: "inv-1", ISPID: ispID, Number: "10452", Description: "Internet Fibra 50 Mbps",
			PeriodStart: &marchStart, PeriodEnd: &marchEnd,
			GrandTotal: dec("1000.00"), Paid: dec("400.00"),
		},
		"inv-2": {
			ID: "inv-2", ISPID: ispID, Number: "10453", Description: "Instalación",
			GrandTotal: dec("500.00"), Paid: dec("500.00"),
		},
	}

	deps := receipts.Deps{
		Payments:     e.payments,
		Customers:    e.customers,
		Invoices:     invoices,
		ISPs:         e.isps,
		Collections:  e.collections,
		Printer:      e.printer,
		PDFGenerator: e.pdf,
		Reports:      e.reports,
		Clock:        func() time.Time { return now },
	}
	if withChannels {
		e.storage = &fakeStorage{}
		e.mailer = &fakeMailer{}
		deps.Storage = e.storage
		deps.Mailer = e.mailer
	}
	e.uc = receipts.NewUseCase(deps, receipts.Config{
		DefaultWidth: 48,
		Locale:       "es-DO",
		PrinterAddr:  "10.0.0.20:9100",
		PresignTTL:   10 * time.Minute,
	})
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ArmaElViewModel(t *testing.T) {
	e := newEnv(t, false)

	data, err := e.uc.Load(context.Background(), ispID, paymentID)
	require.NoError(t, err)

	assert.Equal(t, "600.00", data.TotalPending.StringFixed(2))
	assert.Equal(t, "R-2031", data.Receipt.ID)
	assert.Equal(t, "2025-03-07", data.Receipt.Date)
	assert.Equal(t, "14:05", data.Receipt.Time)
	assert.Equal(t, "Transferencia", data.Receipt.PaymentMethod)
	require.NotNil(t, data.Receipt.Detail)
	assert.Equal(t, "Banco Popular", data.Receipt.Detail.Bank)

	assert.Equal(t, "C-77", data.Customer.ID)
	assert.Equal(t, "FibraNet", data.ISP.Name)
	assert.Equal(t, "es-DO", data.ISP.Locale, "sin locale propio se usa el configurado")

	require.Len(t, data.Invoices, 2)
	assert.Equal(t, "10452", data.Invoices[0].ID, "se conserva el orden de aplicación")
	start, end, ok := receipt.ResolvePeriod(data.Invoices[0])
	require.True(t, ok)
	assert.Equal(t, "01/03/2025", start)
	assert.Equal(t, "31/03/2025", end)
}

func TestLoad_Errores(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	_, err := e.uc.Load(ctx, ispID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.Load(ctx, otherISP, paymentID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un pago de otro ISP no se expone")

	_, err = e.uc.Load(ctx, ispID, "pay-foreign")
	assert.ErrorIs(t, err, domain.ErrForbidden, "el abonado pertenece a otro ISP")

	_, err = e.uc.Load(ctx, ispID, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_AbonadoInexistenteUsaMarcadores(t *testing.T) {
	e := newEnv(t, false)

	data, err := e.uc.Load(context.Background(), ispID, "pay-orphan")
	require.NoError(t, err)
	assert.Equal(t, "cus-borrado", data.Customer.ID)
	assert.Empty(t, data.Invoices)
	assert.True(t, data.TotalPending.IsZero())
	assert.Nil(t, data.Receipt.Detail, "sin datos de detalle no se crea el bloque")
}

// ──────────────────────────────────────────────────────────────────────────────
// RenderText / Print
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderText_AnchoPorDefectoYValidacion(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	out, err := e.uc.RenderText(ctx, ispID, paymentID, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "[L]"+strings.Repeat("=", 48)+"\n")
	assert.Contains(t, out, "RD$600.00")
	assert.Contains(t, out, "Generado: 19/10/2026 3:04 PM")

	out, err = e.uc.RenderText(ctx, ispID, paymentID, 32)
	require.NoError(t, err)
	assert.Contains(t, out, "[L]"+strings.Repeat("=", 32)+"\n")

	for _, w := range []int{10, 23, 65} {
		_, err = e.uc.RenderText(ctx, ispID, paymentID, w)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ancho %d", w)
	}
}

func TestRenderText_LocalidadDelISP(t *testing.T) {
	e := newEnv(t, false)
	e.isps[ispID].Locale = "es-CO"

	out, err := e.uc.RenderText(context.Background(), ispID, paymentID, 48)
	require.NoError(t, err)
	assert.Contains(t, out, "$ 600,00")
	assert.NotContains(t, out, "RD$")
}

func TestPrint_UsaImpresoraConfigurada(t *testing.T) {
	e := newEnv(t, false)

	require.NoError(t, e.uc.Print(context.Background(), ispID, paymentID, 32, ""))
	require.Len(t, e.printer.jobs, 1)

	job := e.printer.jobs[0]
	assert.Equal(t, "10.0.0.20:9100", job.Addr)
	assert.Equal(t, 32, job.CharactersPerLine)
	assert.True(t, strings.HasPrefix(job.Payload, "[C]<b>FibraNet</b>"))
}

func TestPrint_ImpresoraExplicitaYFallos(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	require.NoError(t, e.uc.Print(ctx, ispID, paymentID, 0, "192.168.1.9:9100"))
	assert.Equal(t, "192.168.1.9:9100", e.printer.jobs[0].Addr)
	assert.Equal(t, 48, e.printer.jobs[0].CharactersPerLine)

	e.printer.err = errors.New("connection refused")
	err := e.uc.Print(ctx, ispID, paymentID, 0, "")
	assert.ErrorIs(t, err, domain.ErrPrinterUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPrint_SinImpresora(t *testing.T) {
	e := newEnv(t, false)
	uc := receipts.NewUseCase(receipts.Deps{
		Payments: e.payments, Customers: e.customers, ISPs: e.isps, Printer: e.printer,
	}, receipts.Config{})

	err := uc.Print(context.Background(), ispID, paymentID, 0, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.printer.jobs)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF / Share / Email
// ──────────────────────────────────────────────────────────────────────────────

func TestPDF_NombreDeArchivo(t *testing.T) {
	e := newEnv(t, false)

	b, name, err := e.uc.PDF(context.Background(), ispID, paymentID)
	require.NoError(t, err)
	assert.Equal(t, "recibo_R-2031.pdf", name)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
	require.Len(t, e.pdf.got, 1)
	assert.Equal(t, "600.00", e.pdf.got[0].TotalPending.StringFixed(2))
}

func TestShare(t *testing.T) {
	t.Run("sin almacenamiento", func(t *testing.T) {
		e := newEnv(t, false)
		_, err := e.uc.Share(context.Background(), ispID, paymentID)
		assert.ErrorIs(t, err, domain.ErrStorageDisabled)
	})

	t.Run("sube y firma el enlace", func(t *testing.T) {
		e := newEnv(t, true)
		url, err := e.uc.Share(context.Background(), ispID, paymentID)
		require.NoError(t, err)

		key := "recibos/isp-1/recibo_R-2031.pdf"
		assert.Contains(t, e.storage.uploads, key)
		assert.Equal(t, "https://s3.local/"+key+"?firma=1", url)
		assert.Equal(t, 10*time.Minute, e.storage.ttl)
	})
}

func TestEmail(t *testing.T) {
	t.Run("sin correo configurado", func(t *testing.T) {
		e := newEnv(t, false)
		_, err := e.uc.Email(context.Background(), ispID, paymentID, "")
		assert.ErrorIs(t, err, domain.ErrMailerDisabled)
	})

	t.Run("usa el correo del abonado", func(t *testing.T) {
		e := newEnv(t, true)
		to, err := e.uc.Email(context.Background(), ispID, paymentID, "")
		require.NoError(t, err)
		assert.Equal(t, "jose@example.com", to)

		require.Len(t, e.mailer.sent, 1)
		msg := e.mailer.sent[0]
		assert.Equal(t, "Recibo de pago No. R-2031 - FibraNet", msg.Subject)
		assert.Equal(t, "Jose Nunez", receipt.Sanitize(msg.ToName))
		assert.NotContains(t, msg.Body, "[L]")
		assert.NotContains(t, msg.Body, "<b>")
		assert.Contains(t, msg.Body, "RECIBO DE PAGO")
	})

	t.Run("destinatario explícito", func(t *testing.T) {
		e := newEnv(t, true)
		to, err := e.uc.Email(context.Background(), ispID, paymentID, " caja@fibranet.do ")
		require.NoError(t, err)
		assert.Equal(t, "caja@fibranet.do", to)
	})

	t.Run("abonado sin correo", func(t *testing.T) {
		e := newEnv(t, true)
		e.customers["cus-1"].Email = ""
		_, err := e.uc.Email(context.Background(), ispID, paymentID, "")
		assert.ErrorIs(t, err, domain.ErrNoRecipient)
		assert.Empty(t, e.mailer.sent)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de cobros
// ──────────────────────────────────────────────────────────────────────────────

func TestCollectionReport(t *testing.T) {
	e := newEnv(t, false)
	e.collections.rows = []repository.CollectionRow{
		{Number: "R-1", Method: entity.PaymentMethodCash, Amount: dec("1000")},
		{Number: "R-2", Method: entity.PaymentMethodTransfer, Amount: dec("400.50")},
		{Number: "R-3", Method: entity.PaymentMethodCash, Amount: dec("250")},
	}
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	b, name, err := e.uc.CollectionReport(context.Background(), ispID, from, to)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), b)
	assert.Equal(t, "cobros_20250301_20250331.xlsx", name)

	assert.Equal(t, from, e.collections.from)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC), e.collections.to,
		"el último día se incluye completo")

	got := e.reports.got
	assert.Equal(t, "FibraNet", got.ISPName)
	assert.Equal(t, "1650.50", got.Total.StringFixed(2))
	require.Len(t, got.ByMethod, 2)
	assert.Equal(t, "Efectivo", got.ByMethod[0].Method)
	assert.Equal(t, 2, got.ByMethod[0].Count)
	assert.Equal(t, "1250.00", got.ByMethod[0].Amount.StringFixed(2))
	assert.Equal(t, "Transferencia", got.ByMethod[1].Method)
}

func TestCollectionReport_RangoInvalido(t *testing.T) {
	e := newEnv(t, false)
	from := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := e.uc.CollectionReport(context.Background(), ispID, from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
