package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock proveedor de la hora actual; se inyecta para poder fijarla en tests.
type Clock func() time.Time

const (
	dateLayout   = "02/01/2006"
	time12Layout = "3:04 PM"
)

var (
	reTime      = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(?::\d{2}(?:\.\d+)?)?\s*(?:([ap])\.?\s*m\.?)?$`)
	reISODate   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	reLatinDate = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	reYearMonth = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

// NormalizeTime convierte una hora a "H:MM AM|PM" usando el reloj del sistema
// como respaldo. Ver NormalizeTimeAt.
func NormalizeTime(s string) string {
	return NormalizeTimeAt(s, time.Now)
}

// NormalizeTimeAt acepta horas de 12 h con marcador en sus variantes
// ("9:30 am", "9:30 a. m.", "09:30PM") o de 24 h ("14:05", "14:05:33").
// Sin marcador, el período se infiere de la hora (>= 12 es PM).
// Si el texto está vacío o no se reconoce, devuelve la hora de now.
func NormalizeTimeAt(s string, now Clock) string {
	s = strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(clean(s))
	m := reTime.FindStringSubmatch(s)
	if m == nil {
		return now().Format(time12Layout)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return now().Format(time12Layout)
	}

	marker := strings.ToUpper(m[3])
	var period string
	switch {
	case marker == "A" && hour <= 12:
		period = "AM"
	case marker == "P" && hour <= 12:
		period = "PM"
	case hour >= 12:
		period = "PM"
	default:
		period = "AM"
	}

	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, period)
}

// NormalizeDate lleva una fecha a DD/MM/YYYY. Acepta YYYY-MM-DD (también con
// hora ISO), DD-MM-YYYY, DD/MM/YYYY y YYYY-MM (primer día del mes).
// Cualquier otro texto se devuelve recortado y sin cambios; vacío si no hay dato.
func NormalizeDate(s string) string {
	s = clean(s)
	if d, ok := parseDate(s); ok {
		return d
	}
	return s
}

// parseDate reconoce las formas de NormalizeDate; ok es false si el texto no
// es una fecha de calendario válida.
func parseDate(s string) (string, bool) {
	datePart := clean(s)
	if datePart == "" {
		return "", false
	}
	if i := strings.IndexAny(datePart, "T "); i > 0 {
		datePart = datePart[:i]
	}

	if m := reISODate.FindStringSubmatch(datePart); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := reLatinDate.FindStringSubmatch(datePart); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	if m := reYearMonth.FindStringSubmatch(datePart); m != nil {
		return buildDate(m[1], m[2], "1")
	}
	return "", false
}

// buildDate descarta días que el mes no tiene (31/02, 31/04).
func buildDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 {
		return "", false
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != mo {
		return "", false
	}
	return t.Format(dateLayout), true
}

var monthNames = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"setiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
}

// parseMonth acepta el nombre del mes en español (con o sin mayúsculas o
// tildes) o su número.
func parseMonth(s string) (time.Month, bool) {
	s = strings.ToLower(Sanitize(clean(s)))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}
	if m, ok := monthNames[s]; ok {
		return m, true
	}
	// abreviaturas: "mar", "sept."
	s = strings.TrimSuffix(s, ".")
	if len(s) >= 3 {
		for name, m := range monthNames {
			if strings.HasPrefix(name, s) {
				return m, true
			}
		}
	}
	return 0, false
}

// monthRange primer y último día del mes en DD/MM/YYYY.
func monthRange(month time.Month, year int) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}
