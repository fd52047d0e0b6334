package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

// BuildLedger lists a client's invoices (debits) and payments (credits) for
// one financial year in date order with a running balance. Entries on the
// same day keep invoices ahead of payments, then input order.
func BuildLedger(clientID string, fy FinancialYear, invoices []*models.Invoice, payments []*models.Payment) *models.Ledger {
	var rows []models.LedgerTransaction
	for _, inv := range invoices {
		if inv.ClientID != clientID || !fy.Contains(inv.Date) {
			continue
		}
		rows = append(rows, models.LedgerTransaction{
			Type:        models.LedgerInvoice,
			ReferenceID: inv.ID,
			Date:        inv.Date,
			Description: "Invoice " + inv.ID,
			Debit:       inv.InvoiceValue,
			Credit:      decimal.Zero,
		})
	}
	for _, p := range payments {
		if p.ClientID != clientID || !fy.Contains(p.Date) {
			continue
		}
		desc := fmt.Sprintf("Payment received (%s)", p.Mode)
		if p.Notes != "" {
			desc += " - " + p.Notes
		}
		rows = append(rows, models.LedgerTransaction{
			Type:        models.LedgerPayment,
			ReferenceID: p.ID,
			Date:        p.Date,
			Description: desc,
			Debit:       decimal.Zero,
			Credit:      p.Amount,
		})
	}

	// invoices were appended first, so a stable sort gives the tie-break
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date.Time)
	})

	totals := models.LedgerTotals{TotalBilled: decimal.Zero, TotalReceived: decimal.Zero}
	balance := decimal.Zero
	for i := range rows {
		balance = balance.Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].Balance = balance
		totals.TotalBilled = totals.TotalBilled.Add(rows[i].Debit)
		totals.TotalReceived = totals.TotalReceived.Add(rows[i].Credit)
	}
	totals.Outstanding = totals.TotalBilled.Sub(totals.TotalReceived)

	if rows == nil {
		rows = []models.LedgerTransaction{}
	}
	return &models.Ledger{
		ClientID:      clientID,
		FinancialYear: fy.String(),
		Transactions:  rows,
		Totals:        totals,
	}
}

// LedgerService reads what the ledger and dashboard reports need.
type LedgerService struct {
	clients  repository.ClientRepository
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	expenses repository.ExpenseRepository
	lrs      repository.LorryReceiptRepository

	now func() time.Time
}

func NewLedgerService(
	clients repository.ClientRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	expenses repository.ExpenseRepository,
	lrs repository.LorryReceiptRepository,
) *LedgerService {
	return &LedgerService{
		clients:  clients,
		invoices: invoices,
		payments: payments,
		expenses: expenses,
		lrs:      lrs,
		now:      utcNow,
	}
}

// Build returns the ledger of clientID for fy. An empty fy means the current
// financial year.
func (s *LedgerService) Build(ctx context.Context, clientID, fy string) (*models.Ledger, error) {
	if blank(clientID) {
		return nil, apperr.Validation("client_id", "client is required")
	}
	year, err := s.financialYear(fy)
	if err != nil {
		return nil, err
	}
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	invoices, err := s.invoices.List(ctx, repository.InvoiceFilter{ClientID: clientID})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx, repository.PaymentFilter{ClientID: clientID})
	if err != nil {
		return nil, err
	}
	// same-day entries keep the order they were recorded in
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].CreatedAt.Before(invoices[j].CreatedAt) })
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].CreatedAt.Before(payments[j].CreatedAt) })

	return BuildLedger(clientID, year, invoices, payments), nil
}

func (s *LedgerService) financialYear(fy string) (FinancialYear, error) {
	if fy == "" {
		return FinancialYearOf(s.now()), nil
	}
	return ParseFinancialYear(fy)
}
