package receipt

import (
	"strings"
	"time"
)

// Etiquetas de alineación que interpreta el driver de la impresora.
const (
	TagLeft   = "[L]"
	TagCenter = "[C]"
	TagRight  = "[R]"
	BoldOpen  = "<b>"
	BoldClose = "</b>"
)

// Anchos habituales: 58 mm → 32, 80 mm → 42 o 48.
const (
	Width58mm          = 32
	Width80mm          = 42
	Width80mmCondensed = 48
	DefaultLineWidth   = Width80mmCondensed
)

// Textos fijos del ticket.
const (
	titleLabel     = "RECIBO DE PAGO"
	customerLabel  = "Información del cliente"
	thanksLine     = "¡Gracias por su pago!"
	validityLine   = "Este recibo es su comprobante de pago."
	signatureLine  = "Sistema de Gestión ISP"
	invoiceIDWidth = 6
)

// Formatter convierte un Data en el texto del ticket.
// Es seguro para uso concurrente: no guarda estado entre llamadas.
type Formatter struct {
	locale Locale
	now    Clock
}

// Option configura el Formatter.
type Option func(*Formatter)

// WithLocale fija el formato de moneda.
func WithLocale(l Locale) Option {
	return func(f *Formatter) {
		if l != nil {
			f.locale = l
		}
	}
}

// WithClock fija el reloj usado en la línea "Generado" y como respaldo de la hora.
func WithClock(c Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.now = c
		}
	}
}

// NewFormatter construye el formateador (por defecto es-DO y reloj del sistema).
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{locale: LocaleDO, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format atajo con la configuración por defecto.
func Format(data Data, lineWidth int) string {
	return NewFormatter().Format(data, lineWidth)
}

// Format arma el ticket completo y aplica Sanitize al final, de modo que las
// columnas se calculan sobre el texto original.
func (f *Formatter) Format(data Data, lineWidth int) string {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	t := &ticket{width: lineWidth}

	f.header(t, data.ISP)
	f.title(t, data.Receipt)
	f.customer(t, data.Customer)
	f.metadata(t, data.Receipt)
	for _, inv := range data.Invoices {
		f.invoice(t, inv)
	}
	f.totals(t, data)
	f.footer(t)

	return Sanitize(t.String())
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (f *Formatter) header(t *ticket, isp ISP) {
	if name := clean(isp.Name); name != "" {
		t.centerBold(name)
	}
	if phone := clean(isp.Phone); phone != "" {
		t.center("Tel: " + phone)
	}
	if addr := clean(isp.Address); addr != "" {
		t.center(addr)
	}
	t.separator('=')
}

func (f *Formatter) title(t *ticket, r Receipt) {
	t.centerBold(titleLabel)
	t.center("No. " + orPlaceholder(r.ID))
	t.blank()
}

func (f *Formatter) customer(t *ticket, c Customer) {
	t.leftBold(customerLabel)
	t.wrapped("Código: " + orPlaceholder(c.ID))
	t.wrapped("Nombre: " + orPlaceholder(c.FullName()))
	if phone := clean(c.Phone); phone != "" {
		t.wrapped("Teléfono: " + phone)
	}
	if addr := clean(c.Address); addr != "" {
		t.wrapped("Dirección: " + addr)
	}
	t.blank()
}

func (f *Formatter) metadata(t *ticket, r Receipt) {
	date := NormalizeDate(r.Date)
	if date == "" {
		date = Placeholder
	}
	t.twoColumns("Fecha: "+date, "Hora: "+NormalizeTimeAt(r.Time, f.now), false)
	t.twoColumns("Cajero: "+orPlaceholder(r.Cashier), "Método de pago: "+orPlaceholder(r.PaymentMethod), false)

	if d := r.Detail; d != nil {
		detailLine(t, "Banco", d.Bank)
		detailLine(t, "Referencia", d.Reference)
		detailLine(t, "Cuenta destino", d.DestinationAccount)
		detailLine(t, "Titular", d.HolderName)
		detailLine(t, "Fecha cheque", NormalizeDate(d.CheckDate))
		detailLine(t, "Nota", d.Note)
	}
	t.separator('-')
}

func detailLine(t *ticket, label, value string) {
	if v := clean(value); v != "" {
		t.wrapped(label + ": " + v)
	}
}

func (f *Formatter) invoice(t *ticket, inv Invoice) {
	id := padLeft(truncate(orPlaceholder(inv.ID), invoiceIDWidth), invoiceIDWidth)
	desc := truncate(orPlaceholder(inv.Description), t.width-invoiceIDWidth-1)
	t.left(id + " " + desc)

	if start, end, ok := ResolvePeriod(inv); ok {
		t.wrapped("Período: " + orPlaceholder(start) + " - " + orPlaceholder(end))
	}

	f.amountColumns(t,
		f.locale.FormatMoney(inv.Total),
		f.locale.FormatMoney(inv.Paid),
		f.locale.FormatMoney(inv.Pending()),
	)
	t.separator('-')
}

// amountColumns imprime Monto | Pagado | Saldo en tres columnas (etiquetas
// arriba, montos abajo). Si algún monto no cabe en su columna se imprime
// cada par etiqueta/monto en su propia línea.
func (f *Formatter) amountColumns(t *ticket, amount, paid, balance string) {
	c1, c2, c3 := ColumnLayout(t.width)
	labels := [3]string{"Monto", "Pagado", "Saldo"}
	values := [3]string{amount, paid, balance}

	fits := c1 > 0 && c2 > 0 && c3 > 0
	for i, w := range [3]int{c1 - 1, c2 - 1, c3} {
		if runeLen(labels[i]) > w || runeLen(values[i]) > w {
			fits = false
		}
	}
	if !fits {
		for i := range labels {
			t.twoColumns(labels[i], values[i], false)
		}
		return
	}
	t.left(padRight(labels[0], c1) + padRight(labels[1], c2) + padLeft(labels[2], c3))
	t.left(padRight(values[0], c1) + padRight(values[1], c2) + padLeft(values[2], c3))
}

// ColumnLayout anchos de las columnas Monto, Pagado y Saldo.
// 32 → 10/10/12, 42 → 14/14/14, 48 → 16/16/16; otros anchos usan la misma
// regla: cada columna izquierda mide width/3 y la derecha el resto.
// En 32 columnas un monto desde RD$1,000.00 ya no cabe y amountColumns
// imprime cada par etiqueta/monto en su propia línea.
func ColumnLayout(width int) (left, middle, right int) {
	switch width {
	case Width58mm:
		return 10, 10, 12
	case Width80mm:
		return 14, 14, 14
	case Width80mmCondensed:
		return 16, 16, 16
	}
	col := width / 3
	return col, col, width - 2*col
}

func (f *Formatter) totals(t *ticket, data Data) {
	t.separator('=')
	t.twoColumns("Total recibido", f.locale.FormatMoney(data.Receipt.Total), true)
	t.twoColumns("Total pendiente", f.locale.FormatMoney(data.TotalPending), false)
	t.separator('=')
}

func (f *Formatter) footer(t *ticket) {
	now := f.now()
	t.center(thanksLine)
	t.center(validityLine)
	t.center("Generado: " + now.Format(dateLayout) + " " + now.Format(time12Layout))
	t.center(signatureLine)
	t.blank()
	t.blank()
}

// ── ticket ────────────────────────────────────────────────────────────────────

// ticket acumula líneas ya etiquetadas. Ninguna línea supera width salvo
// por las etiquetas de alineación y negrita.
type ticket struct {
	b     strings.Builder
	width int
}

func (t *ticket) String() string { return t.b.String() }

func (t *ticket) line(tag, text string) {
	t.b.WriteString(tag)
	t.b.WriteString(text)
	t.b.WriteByte('\n')
}

func (t *ticket) left(s string) { t.line(TagLeft, truncate(s, t.width)) }

func (t *ticket) blank() { t.line(TagLeft, "") }

func (t *ticket) separator(ch byte) {
	t.line(TagLeft, strings.Repeat(string(ch), t.width))
}

func (t *ticket) wrapped(s string) {
	for _, l := range WordWrap(s, t.width) {
		t.line(TagLeft, l)
	}
}

func (t *ticket) leftBold(s string) {
	for _, l := range WordWrap(s, t.width) {
		t.line(TagLeft, BoldOpen+l+BoldClose)
	}
}

func (t *ticket) center(s string) {
	for _, l := range WordWrap(s, t.width) {
		t.line(TagCenter, l)
	}
}

func (t *ticket) centerBold(s string) {
	for _, l := range WordWrap(s, t.width) {
		t.line(TagCenter, BoldOpen+l+BoldClose)
	}
}

// twoColumns etiqueta a la izquierda y valor alineado a la derecha en la
// misma línea; si no caben juntos, el valor baja a sus propias líneas,
// ajustado por palabras y alineado a la derecha.
func (t *ticket) twoColumns(left, right string, boldLeft bool) {
	decorate := func(s string) string {
		if boldLeft {
			return BoldOpen + s + BoldClose
		}
		return s
	}
	lw, rw := runeLen(left), runeLen(right)
	if rw == 0 {
		for _, l := range WordWrap(left, t.width) {
			t.line(TagLeft, decorate(l))
		}
		return
	}
	if lw+1+rw <= t.width {
		t.line(TagLeft, decorate(left)+strings.Repeat(" ", t.width-lw-rw)+right)
		return
	}
	for _, l := range WordWrap(left, t.width) {
		t.line(TagLeft, decorate(l))
	}
	for _, l := range WordWrap(right, t.width) {
		t.line(TagLeft, padLeft(l, t.width))
	}
}
