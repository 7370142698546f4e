// Package receipt arma el texto imprimible de un recibo de pago para
// impresoras térmicas de 58 mm y 80 mm (32, 42 o 48 caracteres por línea).
//
// El formateador es una función pura: no hace I/O, no guarda estado y solo
// lee el reloj inyectado para la línea de auditoría "Generado".
package receipt

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Data agrupa todo lo que necesita el formateador para un recibo.
// TotalPending se calcula una sola vez al cargar los datos (ver NewData).
type Data struct {
	Receipt      Receipt         `json:"receipt"`
	Customer     Customer        `json:"customer"`
	Invoices     []Invoice       `json:"invoices"`
	ISP          ISP             `json:"isp"`
	TotalPending decimal.Decimal `json:"total_pending"`
}

// NewData construye el view-model del recibo y fija el total pendiente
// sumando el saldo de cada factura.
func NewData(rcpt Receipt, customer Customer, invoices []Invoice, isp ISP) Data {
	return Data{
		Receipt:      rcpt,
		Customer:     customer,
		Invoices:     invoices,
		ISP:          isp,
		TotalPending: TotalPending(invoices),
	}
}

// Receipt cabecera del pago recibido.
type Receipt struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Cashier       string          `json:"cashier,omitempty"`
	Detail        *PaymentDetail  `json:"detail,omitempty"`
}

// PaymentDetail datos opcionales de transferencias, depósitos y cheques.
type PaymentDetail struct {
	Bank               string `json:"bank,omitempty"`
	Reference          string `json:"reference,omitempty"`
	DestinationAccount string `json:"destination_account,omitempty"`
	HolderName         string `json:"holder_name,omitempty"`
	CheckDate          string `json:"check_date,omitempty"`
	Note               string `json:"note,omitempty"`
}

// Customer cliente del ISP.
type Customer struct {
	ID         string `json:"id"`
	FirstNames string `json:"first_names"`
	LastNames  string `json:"last_names"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Email      string `json:"email,omitempty"`
}

// FullName nombres y apellidos sin valores centinela.
func (c Customer) FullName() string {
	return strings.TrimSpace(clean(c.FirstNames) + " " + clean(c.LastNames))
}

// ISP empresa emisora del recibo.
type ISP struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Locale  string `json:"locale,omitempty"` // etiqueta BCP 47 del formato de moneda
}

// Invoice factura a la que se aplicó el pago.
//
// Los campos de período llegan con nombres distintos según el origen
// (backend, app móvil, exportaciones); PeriodFields los acepta todos y
// ResolvePeriod elige el primero que tenga valor.
type Invoice struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	PeriodFields
}

// Pending saldo de la factura, nunca negativo.
func (i Invoice) Pending() decimal.Decimal {
	return PendingAmount(i.Total, i.Paid)
}

// PeriodFields variantes conocidas del período facturado.
type PeriodFields struct {
	PeriodStart   FlexString  `json:"period_start,omitempty"`
	PeriodEnd     FlexString  `json:"period_end,omitempty"`
	Desde         FlexString  `json:"desde,omitempty"`
	Hasta         FlexString  `json:"hasta,omitempty"`
	FechaDesde    FlexString  `json:"fecha_desde,omitempty"`
	FechaHasta    FlexString  `json:"fecha_hasta,omitempty"`
	PeriodoInicio FlexString  `json:"periodo_inicio,omitempty"`
	PeriodoFin    FlexString  `json:"periodo_fin,omitempty"`
	Mes           FlexString  `json:"mes,omitempty"`
	Anio          FlexString  `json:"anio,omitempty"`
	Periodo       PeriodValue `json:"periodo"`
}

// FlexString acepta string, número, booleano o null en JSON.
// Los valores que no son texto ni número quedan vacíos.
type FlexString string

// UnmarshalJSON implementa json.Unmarshaler sin fallar por el tipo.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

func (f FlexString) String() string { return string(f) }

// PeriodValue el campo "periodo" puede ser texto libre ("Marzo 2025",
// "2025-03-01 al 2025-03-31") o un objeto con desde/hasta.
type PeriodValue struct {
	Text  string
	Start string
	End   string
}

type periodObject struct {
	Desde  FlexString `json:"desde,omitempty"`
	Hasta  FlexString `json:"hasta,omitempty"`
	Inicio FlexString `json:"inicio,omitempty"`
	Fin    FlexString `json:"fin,omitempty"`
}

// UnmarshalJSON acepta texto, objeto o null; cualquier otra forma se ignora.
func (p *PeriodValue) UnmarshalJSON(b []byte) error {
	*p = PeriodValue{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			p.Text = s
		}
	case '{':
		var obj periodObject
		if err := json.Unmarshal(b, &obj); err == nil {
			p.Start = firstNonEmpty(obj.Desde.String(), obj.Inicio.String())
			p.End = firstNonEmpty(obj.Hasta.String(), obj.Fin.String())
		}
	}
	return nil
}

// MarshalJSON devuelve texto, objeto desde/hasta o null.
func (p PeriodValue) MarshalJSON() ([]byte, error) {
	switch {
	case p.Start != "" || p.End != "":
		return json.Marshal(periodObject{Desde: FlexString(p.Start), Hasta: FlexString(p.End)})
	case p.Text != "":
		return json.Marshal(p.Text)
	default:
		return []byte("null"), nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if c := clean(v); c != "" {
			return c
		}
	}
	return ""
}
