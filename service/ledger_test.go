package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/apperr"
	"freightdesk/models"
)

func TestBuildLedgerWorkedExample(t *testing.T) {
	invoices := []*models.Invoice{
		{ID: "INV-001", ClientID: "c1", Date: models.NewDate(2025, 8, 26), InvoiceValue: dec("54075")},
	}
	payments := []*models.Payment{
		{ID: "p1", ClientID: "c1", Date: models.NewDate(2025, 9, 1), Amount: dec("43045"), Mode: models.ModeBank},
	}

	ledger := BuildLedger("c1", FinancialYear{StartYear: 2025}, invoices, payments)

	require.Len(t, ledger.Transactions, 2)
	assert.Equal(t, "FY 2025-26", ledger.FinancialYear)
	assert.Equal(t, models.LedgerInvoice, ledger.Transactions[0].Type)
	assert.True(t, dec("54075").Equal(ledger.Transactions[0].Balance))
	assert.True(t, dec("11030").Equal(ledger.Transactions[1].Balance))
	assert.True(t, dec("54075").Equal(ledger.Totals.TotalBilled))
	assert.True(t, dec("43045").Equal(ledger.Totals.TotalReceived))
	assert.True(t, dec("11030").Equal(ledger.Totals.Outstanding))
}

func TestBuildLedgerFiltersClientAndYear(t *testing.T) {
	invoices := []*models.Invoice{
		{ID: "INV-001", ClientID: "c1", Date: models.NewDate(2025, 3, 31), InvoiceValue: dec("100")},
		{ID: "INV-002", ClientID: "c1", Date: models.NewDate(2025, 4, 1), InvoiceValue: dec("200")},
		{ID: "INV-003", ClientID: "c2", Date: models.NewDate(2025, 5, 1), InvoiceValue: dec("400")},
		{ID: "INV-004", ClientID: "c1", Date: models.NewDate(2026, 3, 31), InvoiceValue: dec("800")},
		{ID: "INV-005", ClientID: "c1", Date: models.NewDate(2026, 4, 1), InvoiceValue: dec("1600")},
	}

	ledger := BuildLedger("c1", FinancialYear{StartYear: 2025}, invoices, nil)

	var refs []string
	for _, tx := range ledger.Transactions {
		refs = append(refs, tx.ReferenceID)
	}
	assert.Equal(t, []string{"INV-002", "INV-004"}, refs)
	assert.True(t, dec("1000").Equal(ledger.Totals.Outstanding))
}

func TestBuildLedgerSameDayOrdering(t *testing.T) {
	day := models.NewDate(2025, 6, 10)
	invoices := []*models.Invoice{
		{ID: "INV-002", ClientID: "c1", Date: day, InvoiceValue: dec("10")},
		{ID: "INV-001", ClientID: "c1", Date: models.NewDate(2025, 6, 1), InvoiceValue: dec("5")},
		{ID: "INV-003", ClientID: "c1", Date: day, InvoiceValue: dec("20")},
	}
	payments := []*models.Payment{
		{ID: "p1", ClientID: "c1", Date: day, Amount: dec("1")},
		{ID: "p2", ClientID: "c1", Date: models.NewDate(2025, 6, 1), Amount: dec("2")},
	}

	ledger := BuildLedger("c1", FinancialYear{StartYear: 2025}, invoices, payments)

	var refs []string
	for _, tx := range ledger.Transactions {
		refs = append(refs, tx.ReferenceID)
	}
	assert.Equal(t, []string{"INV-001", "p2", "INV-002", "INV-003", "p1"}, refs)
	assert.True(t, dec("32").Equal(ledger.Transactions[4].Balance))
}

func TestBuildLedgerEmpty(t *testing.T) {
	ledger := BuildLedger("c1", FinancialYear{StartYear: 2025}, nil, nil)
	assert.NotNil(t, ledger.Transactions)
	assert.Empty(t, ledger.Transactions)
	assert.True(t, ledger.Totals.Outstanding.IsZero())
}

func TestLedgerServiceBuild(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "c1", "Acme Traders")
	ctx := context.Background()
	lr := f.bookLR(t, "c1", "c1", freight("50000", "1000", "500"))
	_, err := f.binder.Generate(ctx, InvoiceRequest{
		LRIDs: []string{lr.ID},
		Rates: InvoiceRates{GSTRate: dec("5"), TDSRate: dec("2"), AdvanceReceived: decPtr("10000")},
	})
	require.NoError(t, err)
	require.NoError(t, f.payments.Create(ctx, &models.Payment{
		ID: "p1", ClientID: "c1", Date: models.NewDate(2025, 9, 1), Amount: dec("43045"), Mode: models.ModeBank,
	}))

	ledger, err := f.ledger.Build(ctx, "c1", "FY 2025-26")
	require.NoError(t, err)
	assert.True(t, dec("11030").Equal(ledger.Totals.Outstanding))

	current, err := f.ledger.Build(ctx, "c1", "")
	require.NoError(t, err)
	assert.Equal(t, "FY 2025-26", current.FinancialYear)

	_, err = f.ledger.Build(ctx, "c1", "last year")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = f.ledger.Build(ctx, "", "FY 2025-26")
	assert.Equal(t, "client_id", apperr.FieldOf(err))
	_, err = f.ledger.Build(ctx, "ghost", "FY 2025-26")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
