package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
)

func TestBuildDashboard(t *testing.T) {
	fy := FinancialYear{StartYear: 2025}
	clients := []*models.Client{{ID: "c1", Name: "Acme"}, {ID: "c2", Name: "Bharat"}, {ID: "c3", Name: "Chola"}}
	lrs := []*models.LorryReceipt{
		{ID: "l1", Date: models.NewDate(2025, 4, 2), Freight: models.FreightDetails{BasicFreight: dec("1000")}},
		{ID: "l2", Date: models.NewDate(2025, 2, 2), Freight: models.FreightDetails{BasicFreight: dec("9999")}},
	}
	invoices := []*models.Invoice{
		{ID: "INV-001", ClientID: "c1", Date: models.NewDate(2025, 4, 10), InvoiceValue: dec("5000")},
		{ID: "INV-002", ClientID: "c2", Date: models.NewDate(2026, 1, 15), InvoiceValue: dec("3000")},
		{ID: "INV-003", ClientID: "c3", Date: models.NewDate(2025, 5, 1), InvoiceValue: dec("700")},
	}
	payments := []*models.Payment{
		{ID: "p1", ClientID: "c1", Date: models.NewDate(2025, 6, 1), Amount: dec("1000")},
		{ID: "p2", ClientID: "c3", Date: models.NewDate(2025, 6, 1), Amount: dec("700")},
	}
	expenses := []*models.Expense{
		{ID: "e1", Date: models.NewDate(2025, 4, 30), Amount: dec("250"), Category: models.ExpenseFuel},
		{ID: "e2", Date: models.NewDate(2026, 3, 31), Amount: dec("100"), Category: models.ExpenseToll},
	}

	d := buildDashboard(fy, lrs, invoices, payments, expenses, clients)

	require.Len(t, d.Documents, 4)
	assert.Equal(t, 1, d.Documents[0].Count)
	assert.True(t, dec("1000").Equal(d.Documents[0].Amount))
	assert.Equal(t, 3, d.Documents[1].Count)
	assert.True(t, dec("8700").Equal(d.Documents[1].Amount))
	assert.True(t, dec("1700").Equal(d.Documents[2].Amount))
	assert.True(t, dec("350").Equal(d.Documents[3].Amount))

	require.Len(t, d.Outstanding, 2)
	assert.Equal(t, "c1", d.Outstanding[0].ClientID)
	assert.True(t, dec("4000").Equal(d.Outstanding[0].Amount))
	assert.Equal(t, "c2", d.Outstanding[1].ClientID)

	require.Len(t, d.Monthly, 12)
	assert.Equal(t, "Apr 2025", d.Monthly[0].Month)
	assert.True(t, dec("5000").Equal(d.Monthly[0].Revenue))
	assert.True(t, dec("250").Equal(d.Monthly[0].Expenses))
	assert.Equal(t, "Jan 2026", d.Monthly[9].Month)
	assert.True(t, dec("3000").Equal(d.Monthly[9].Revenue))
	assert.Equal(t, "Mar 2026", d.Monthly[11].Month)
	assert.True(t, dec("100").Equal(d.Monthly[11].Expenses))
}
