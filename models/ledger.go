package models

import "github.com/shopspring/decimal"

type LedgerEntryType string

const (
	LedgerInvoice LedgerEntryType = "invoice"
	LedgerPayment LedgerEntryType = "payment"
)

type LedgerTransaction struct {
	Type        LedgerEntryType `json:"type"`
	ReferenceID string          `json:"reference_id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

type LedgerTotals struct {
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalReceived decimal.Decimal `json:"total_received"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

type Ledger struct {
	ClientID      string              `json:"client_id"`
	FinancialYear string              `json:"financial_year"`
	Transactions  []LedgerTransaction `json:"transactions"`
	Totals        LedgerTotals        `json:"totals"`
}

type DocumentSummary struct {
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type ClientOutstanding struct {
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
}

type MonthlyFinancials struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

type Dashboard struct {
	FinancialYear string              `json:"financial_year"`
	Documents     []DocumentSummary   `json:"documents"`
	Outstanding   []ClientOutstanding `json:"outstanding"`
	Monthly       []MonthlyFinancials `json:"monthly"`
}
