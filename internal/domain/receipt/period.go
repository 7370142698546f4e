package receipt

import (
	"regexp"
	"strconv"
	"strings"
)

// periodAccessor devuelve (inicio, fin) crudos de una variante del período.
type periodAccessor func(inv Invoice) (start, end string)

// periodAccessors en orden de prioridad; gana el primero que devuelva algo.
var periodAccessors = []periodAccessor{
	datePair(func(i Invoice) (string, string) { return i.PeriodStart.String(), i.PeriodEnd.String() }),
	datePair(func(i Invoice) (string, string) { return i.Desde.String(), i.Hasta.String() }),
	datePair(func(i Invoice) (string, string) { return i.FechaDesde.String(), i.FechaHasta.String() }),
	datePair(func(i Invoice) (string, string) { return i.PeriodoInicio.String(), i.PeriodoFin.String() }),
	datePair(func(i Invoice) (string, string) { return i.Periodo.Start, i.Periodo.End }),
	monthYear,
	periodText,
}

// ResolvePeriod obtiene el inicio y fin del período facturado probando las
// variantes conocidas. ok es false si ninguna trae dato; nunca falla.
func ResolvePeriod(inv Invoice) (start, end string, ok bool) {
	for _, acc := range periodAccessors {
		s, e := acc(inv)
		s, e = clean(s), clean(e)
		if s != "" || e != "" {
			return s, e, true
		}
	}
	return "", "", false
}

func datePair(get periodAccessor) periodAccessor {
	return func(inv Invoice) (string, string) {
		s, e := get(inv)
		return NormalizeDate(s), NormalizeDate(e)
	}
}

func monthYear(inv Invoice) (string, string) {
	month, ok := parseMonth(inv.Mes.String())
	if !ok {
		return "", ""
	}
	year, err := strconv.Atoi(clean(inv.Anio.String()))
	if err != nil || year < 1900 {
		return "", ""
	}
	return monthRange(month, year)
}

var (
	rePeriodSplit = regexp.MustCompile(`(?i)\s+(?:-|–|—|al|a|hasta)\s+`)
	reMonthYear   = regexp.MustCompile(`^(\p{L}+\.?)\s+(?:de\s+|del\s+)?(\d{4})$`)
)

// periodText interpreta el texto libre: "2025-03-01 al 2025-03-31",
// "Marzo 2025" o cualquier otro texto, que se usa tal cual como inicio.
// Solo se parte en dos si ambos extremos son fechas.
func periodText(inv Invoice) (string, string) {
	text := clean(inv.Periodo.Text)
	if text == "" {
		return "", ""
	}
	if parts := rePeriodSplit.Split(text, 2); len(parts) == 2 {
		start, okStart := parseDate(parts[0])
		end, okEnd := parseDate(parts[1])
		if okStart && okEnd {
			return start, end
		}
	}
	if m := reMonthYear.FindStringSubmatch(strings.ToLower(text)); m != nil {
		if month, ok := parseMonth(m[1]); ok {
			year, _ := strconv.Atoi(m[2])
			return monthRange(month, year)
		}
	}
	return NormalizeDate(text), ""
}
