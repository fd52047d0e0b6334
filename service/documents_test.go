package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/storage"
)

type fakeRenderer struct {
	lr      models.LorryReceiptPDFData
	invoice models.InvoicePDFData
	ledger  models.LedgerPDFData
}

func (r *fakeRenderer) LorryReceiptHTML(d models.LorryReceiptPDFData) (string, error) {
	r.lr = d
	return "<lr>", nil
}

func (r *fakeRenderer) InvoiceHTML(d models.InvoicePDFData) (string, error) {
	r.invoice = d
	return "<invoice>", nil
}

func (r *fakeRenderer) LedgerHTML(d models.LedgerPDFData) (string, error) {
	r.ledger = d
	return "<ledger>", nil
}

func (r *fakeRenderer) Print(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF " + html), nil
}

type brokenArchive struct{}

func (brokenArchive) Put(context.Context, string, []byte) (string, error) {
	return "", errors.New("bucket unreachable")
}

func (brokenArchive) Remove(context.Context, string) error { return nil }

func newDocuments(f *fixture, r Renderer, a storage.Archive) *DocumentService {
	s := NewDocumentService(r, a, f.store, f.binder, f.ledger, f.clients, f.settings, zerolog.Nop())
	s.now = f.clock
	return s
}

func TestLorryReceiptPDFRecordsLocation(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "c1", "Acme Traders")
	f.addClient(t, "c2", "Bharat Steels")
	lr := f.bookLR(t, "c1", "c2", models.FreightDetails{
		BasicFreight: dec("10000"), PackingCharge: dec("1000"),
		SGSTPercent: dec("2.5"), CGSTPercent: dec("2.5"), AdvancePaid: dec("5000"),
	})
	r := &fakeRenderer{}
	s := newDocuments(f, r, storage.NewLocalArchive(t.TempDir()))

	doc, err := s.LorryReceiptPDF(context.Background(), lr.ID)
	require.NoError(t, err)

	assert.Equal(t, "lr_1_1756202400.pdf", doc.Name)
	assert.FileExists(t, doc.Location)
	assert.Equal(t, "%PDF <lr>", string(doc.Content))
	assert.Equal(t, 15, r.lr.Packages)
	assert.Equal(t, "20-Aug-2025", r.lr.Date)
	assert.True(t, dec("11550").Equal(r.lr.Freight.TotalFreight))
	assert.Equal(t, "Bharat Steels", r.lr.Consignee.Name)
	assert.NotNil(t, r.lr.Company)

	stored := f.lr(t, lr.ID)
	assert.Equal(t, doc.Location, stored.PDFPath)
	require.NotNil(t, stored.PDFCreatedAt)
	assert.Equal(t, filepath.Base(doc.Location), doc.Name)
}

func TestInvoiceAndLedgerPDF(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "c1", "Acme Traders")
	require.NoError(t, f.settings.SaveProfile(context.Background(), &models.CompanyProfile{
		CompanyName: "Sri Murugan Roadways",
		Mobile:      []models.MobileEntry{{Number: "9840012345", Label: "Office"}},
	}))
	lr := f.bookLR(t, "c1", "c1", freight("50000", "1000", "500"))
	res, err := f.binder.Generate(context.Background(), InvoiceRequest{
		LRIDs: []string{lr.ID},
		Rates: InvoiceRates{GSTRate: dec("5")},
	})
	require.NoError(t, err)
	r := &fakeRenderer{}
	s := newDocuments(f, r, storage.NewLocalArchive(t.TempDir()))

	doc, err := s.InvoicePDF(context.Background(), res.Invoice.ID)
	require.NoError(t, err)
	assert.Contains(t, doc.Name, "invoice_INV-001_")
	assert.Equal(t, "Fifty Four Thousand Seventy Five Rupees Only", r.invoice.TotalWords)
	assert.Equal(t, "9840012345(Office)", r.invoice.Contacts)

	_, err = s.LedgerPDF(context.Background(), "c1", "FY 2025-26")
	require.NoError(t, err)
	assert.Len(t, r.ledger.Ledger.Transactions, 1)
	assert.Equal(t, "Acme Traders", r.ledger.Client.Name)

	_, err = s.InvoicePDF(context.Background(), "INV-404")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestArchiveFailureIsIO(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "c1", "Acme Traders")
	lr := f.bookLR(t, "c1", "c1", freight("100", "0", "0"))
	s := newDocuments(f, &fakeRenderer{}, brokenArchive{})

	_, err := s.LorryReceiptPDF(context.Background(), lr.ID)
	assert.ErrorIs(t, err, apperr.ErrIO)
	assert.Empty(t, f.lr(t, lr.ID).PDFPath)
}
