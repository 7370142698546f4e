package entity

import "time"

// Estados del ISP (tenant).
const (
	ISPStatusActive    = "active"
	ISPStatusSuspended = "suspended"
)

// ISP representa al proveedor de internet que emite los recibos (multi-tenant).
type ISP struct {
	ID        string
	Name      string
	TaxID     string // RNC / NIT
	Address   string
	Phone     string
	Email     string
	Locale    string // etiqueta BCP 47 del formato de moneda: es-DO, es-CO, en-US
	Status    string // ver constantes ISPStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el ISP puede operar.
func (i *ISP) IsActive() bool {
	return i.Status == "" || i.Status == ISPStatusActive
}
