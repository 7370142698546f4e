package entity

import "time"

// Customer representa un abonado del ISP.
type Customer struct {
	ID         string
	ISPID      string
	Code       string // código de abonado visible en el recibo
	FirstNames string
	LastNames  string
	Phone      string
	Address    string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
