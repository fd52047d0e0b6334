package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

type PaymentMode string

const (
	ModeCash  PaymentMode = "Cash"
	ModeBank  PaymentMode = "Bank"
	ModeOther PaymentMode = "Other"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case ModeCash, ModeBank, ModeOther:
		return true
	}
	return false
}

type GSTPayer string

const (
	GSTPayerConsignor   GSTPayer = "Consignor"
	GSTPayerConsignee   GSTPayer = "Consignee"
	GSTPayerTransporter GSTPayer = "Transporter"
)

func (p GSTPayer) Valid() bool {
	switch p {
	case GSTPayerConsignor, GSTPayerConsignee, GSTPayerTransporter:
		return true
	}
	return false
}

type BankDetails struct {
	AccountHolderName string `json:"account_holder_name"`
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
}

// LrDetail is an invoice line. When LRID is set it is a snapshot of that LR
// taken at billing time and is never refreshed from it.
type LrDetail struct {
	ID              string          `json:"id"`
	LRID            string          `json:"lr_id,omitempty"`
	LRNumber        string          `json:"lr_number"`
	Date            Date            `json:"date"`
	TruckNumber     string          `json:"truck_number"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	MaterialDetails string          `json:"material_details"`
	Articles        int             `json:"articles"`
	TotalWeight     decimal.Decimal `json:"total_weight"`
	FreightAmount   decimal.Decimal `json:"freight_amount"`
	HaltingCharge   decimal.Decimal `json:"halting_charge"`
	ExtraCharge     decimal.Decimal `json:"extra_charge"`
	Advance         decimal.Decimal `json:"advance"`
}

type Invoice struct {
	ID        string     `json:"id"`
	Date      Date       `json:"date"`
	ClientID  string     `json:"client_id"`
	LrDetails []LrDetail `json:"lr_details"`

	Discount           decimal.Decimal `json:"discount"`
	GSTRate            decimal.Decimal `json:"gst_rate"`
	TDSRate            decimal.Decimal `json:"tds_rate"`
	TDSAmount          decimal.Decimal `json:"tds_amount"`
	AdvanceReceived    decimal.Decimal `json:"advance_received"`
	AdvanceReceivedVia PaymentMode     `json:"advance_received_via"`
	RoundOff           decimal.Decimal `json:"round_off"`

	HSNCode      string       `json:"hsn_code"`
	Remarks      string       `json:"remarks,omitempty"`
	BankDetails  *BankDetails `json:"bank_details,omitempty"`
	GSTPayableBy GSTPayer     `json:"gst_payable_by"`

	SubTotal        decimal.Decimal `json:"sub_total"`
	TotalTripAmount decimal.Decimal `json:"total_trip_amount"`
	TDSDeduction    decimal.Decimal `json:"tds_deduction"`
	GSTAmount       decimal.Decimal `json:"gst_amount"`
	InvoiceValue    decimal.Decimal `json:"invoice_value"`
	NetPayable      decimal.Decimal `json:"net_payable"`

	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// LRIDs returns the source LR ids of the line items, in line order.
func (inv *Invoice) LRIDs() []string {
	ids := make([]string, 0, len(inv.LrDetails))
	for _, line := range inv.LrDetails {
		if line.LRID != "" {
			ids = append(ids, line.LRID)
		}
	}
	return ids
}
