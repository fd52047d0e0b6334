package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money received from a client. It is not allocated to invoices.
type Payment struct {
	ID        string          `json:"id"`
	Date      Date            `json:"date"`
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Mode      PaymentMode     `json:"mode"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
