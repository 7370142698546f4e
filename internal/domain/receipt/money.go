package receipt

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Locale formatea montos según la moneda del ISP. El formateador solo
// depende de esta interfaz.
type Locale interface {
	FormatMoney(amount decimal.Decimal) string
}

// NumberLocale formato de moneda con símbolo, separador de miles y
// separador decimal fijos, siempre con 2 decimales.
type NumberLocale struct {
	Symbol    string
	Separator string // entre símbolo y cifra ("" o espacio)
	Thousands string
	Decimal   string
}

// Locales soportados.
var (
	LocaleDO = NumberLocale{Symbol: "RD$", Thousands: ",", Decimal: "."}
	// es-CO: la convención regional separa el símbolo con espacio duro.
	LocaleCO = NumberLocale{Symbol: "$", Separator: "\u00a0", Thousands: ".", Decimal: ","}
	LocaleUS = NumberLocale{Symbol: "$", Thousands: ",", Decimal: "."}
)

// FormatMoney implementa Locale. Los espacios duros se convierten en
// espacios normales para que el relleno por conteo de caracteres no se desfase.
func (l NumberLocale) FormatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(l.Symbol)
	b.WriteString(l.Separator)
	b.WriteString(groupThousands(intPart, l.Thousands))
	b.WriteString(l.Decimal)
	b.WriteString(frac)
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(b.String())
}

// groupThousands inserta sep cada tres dígitos desde la derecha.
// Ej: "1000000" → "1,000,000".
func groupThousands(digits, sep string) string {
	n := len(digits)
	if n <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	for i, c := range []byte(digits) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(c)
	}
	return b.String()
}

var (
	supportedTags = []language.Tag{
		language.MustParse("es-DO"),
		language.MustParse("es-CO"),
		language.AmericanEnglish,
	}
	supportedLocales = []Locale{LocaleDO, LocaleCO, LocaleUS}
	localeMatcher    = language.NewMatcher(supportedTags)
)

// LocaleFor resuelve una etiqueta BCP 47 ("es-DO", "es-CO", "en-US") al
// formato de moneda más cercano. Por defecto devuelve LocaleDO.
func LocaleFor(tag string) Locale {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return LocaleDO
	}
	_, idx, conf := localeMatcher.Match(t)
	if conf == language.No || idx < 0 || idx >= len(supportedLocales) {
		return LocaleDO
	}
	return supportedLocales[idx]
}

// PendingAmount saldo de una factura: max(0, total − pagado).
func PendingAmount(total, paid decimal.Decimal) decimal.Decimal {
	pending := total.Sub(paid)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// TotalPending suma el saldo de cada factura.
func TotalPending(invoices []Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		sum = sum.Add(inv.Pending())
	}
	return sum
}
