package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"freightdesk/models"
	"freightdesk/repository"
)

// Dashboard summarises one financial year: document counts and amounts,
// clients that still owe money, and revenue against expenses per month.
func (s *LedgerService) Dashboard(ctx context.Context, fy string) (*models.Dashboard, error) {
	year, err := s.financialYear(fy)
	if err != nil {
		return nil, err
	}

	lrs, err := s.lrs.List(ctx, repository.LRFilter{})
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.List(ctx, repository.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx, repository.PaymentFilter{})
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	return buildDashboard(year, lrs, invoices, payments, expenses, clients), nil
}

func buildDashboard(
	fy FinancialYear,
	lrs []*models.LorryReceipt,
	invoices []*models.Invoice,
	payments []*models.Payment,
	expenses []*models.Expense,
	clients []*models.Client,
) *models.Dashboard {
	months := make([]models.MonthlyFinancials, 12)
	for i := range months {
		start := fy.Start().AddDate(0, i, 0)
		months[i] = models.MonthlyFinancials{
			Month:    start.Format("Jan 2006"),
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
		}
	}
	monthIndex := func(d models.Date) int {
		return (int(d.Month()) - int(time.April) + 12) % 12
	}

	lrDoc := models.DocumentSummary{Name: "Lorry Receipts", Amount: decimal.Zero}
	for _, lr := range lrs {
		if fy.Contains(lr.Date) {
			lrDoc.Count++
			lrDoc.Amount = lrDoc.Amount.Add(lr.Freight.BasicFreight)
		}
	}

	billed := map[string]decimal.Decimal{}
	invDoc := models.DocumentSummary{Name: "Invoices", Amount: decimal.Zero}
	for _, inv := range invoices {
		if !fy.Contains(inv.Date) {
			continue
		}
		invDoc.Count++
		invDoc.Amount = invDoc.Amount.Add(inv.InvoiceValue)
		billed[inv.ClientID] = billed[inv.ClientID].Add(inv.InvoiceValue)
		m := &months[monthIndex(inv.Date)]
		m.Revenue = m.Revenue.Add(inv.InvoiceValue)
	}

	payDoc := models.DocumentSummary{Name: "Payments", Amount: decimal.Zero}
	for _, p := range payments {
		if !fy.Contains(p.Date) {
			continue
		}
		payDoc.Count++
		payDoc.Amount = payDoc.Amount.Add(p.Amount)
		billed[p.ClientID] = billed[p.ClientID].Sub(p.Amount)
	}

	expDoc := models.DocumentSummary{Name: "Expenses", Amount: decimal.Zero}
	for _, e := range expenses {
		if !fy.Contains(e.Date) {
			continue
		}
		expDoc.Count++
		expDoc.Amount = expDoc.Amount.Add(e.Amount)
		m := &months[monthIndex(e.Date)]
		m.Expenses = m.Expenses.Add(e.Amount)
	}

	outstanding := []models.ClientOutstanding{}
	for _, c := range clients {
		if amount := billed[c.ID]; amount.IsPositive() {
			outstanding = append(outstanding, models.ClientOutstanding{ClientID: c.ID, Name: c.Name, Amount: amount})
		}
	}
	sort.SliceStable(outstanding, func(i, j int) bool {
		return outstanding[i].Amount.GreaterThan(outstanding[j].Amount)
	})

	return &models.Dashboard{
		FinancialYear: fy.String(),
		Documents:     []models.DocumentSummary{lrDoc, invDoc, payDoc, expDoc},
		Outstanding:   outstanding,
		Monthly:       months,
	}
}
