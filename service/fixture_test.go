package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
	"freightdesk/repository/memrepo"
)

var testNow = time.Date(2025, time.August, 26, 10, 0, 0, 0, time.UTC)

type fixture struct {
	lrRepo   *memrepo.LorryReceipts
	invoices *memrepo.Invoices
	clients  *memrepo.Clients
	payments *memrepo.Payments
	expenses *memrepo.Expenses
	settings *memrepo.Settings

	store  *LorryReceiptStore
	binder *InvoiceBinder
	ledger *LedgerService

	now time.Time
	seq int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		lrRepo:   memrepo.NewLorryReceipts(),
		invoices: memrepo.NewInvoices(),
		clients:  memrepo.NewClients(),
		payments: memrepo.NewPayments(),
		expenses: memrepo.NewExpenses(),
		settings: memrepo.NewSettings(),
		now:      testNow,
	}
	log := zerolog.Nop()

	f.store = NewLorryReceiptStore(f.lrRepo, f.clients, log)
	f.store.now, f.store.newID = f.clock, f.nextID

	f.binder = NewInvoiceBinder(f.invoices, f.clients, f.settings, f.store, log)
	f.binder.now, f.binder.newID = f.clock, f.nextID

	f.ledger = NewLedgerService(f.clients, f.invoices, f.payments, f.expenses, f.lrRepo)
	f.ledger.now = f.clock
	return f
}

func (f *fixture) clock() time.Time {
	return f.now
}

func (f *fixture) nextID() string {
	f.seq++
	return fmt.Sprintf("id-%03d", f.seq)
}

func (f *fixture) addClient(t *testing.T, id, name string) *models.Client {
	t.Helper()
	c := &models.Client{ID: id, Name: name, GSTIN: "33ABCDE1234F1Z5", CreatedAt: f.now}
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

func (f *fixture) bookLR(t *testing.T, consignorID, consigneeID string, freight models.FreightDetails) *models.LorryReceipt {
	t.Helper()
	lr, err := f.store.Create(context.Background(), &models.LorryReceipt{
		Date:        models.NewDate(2025, time.August, 20),
		From:        "Chennai",
		To:          "Bengaluru",
		ConsignorID: consignorID,
		ConsigneeID: consigneeID,
		Goods: []models.GoodsItem{
			{ProductName: "Steel Rods", Packages: 10, ChargeWeight: dec("1200")},
			{ProductName: "Cement", Packages: 5, ChargeWeight: dec("800")},
		},
		Freight: freight,
	})
	require.NoError(t, err)
	return lr
}

func (f *fixture) lr(t *testing.T, id string) *models.LorryReceipt {
	t.Helper()
	lr, err := f.lrRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return lr
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func freight(basic, halting, extra string) models.FreightDetails {
	return models.FreightDetails{BasicFreight: dec(basic), HaltingCharge: dec(halting), ExtraCharge: dec(extra)}
}
