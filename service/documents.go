package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/money"
	"freightdesk/repository"
	"freightdesk/storage"
	"freightdesk/utils"
)

// Renderer turns document data into HTML and HTML into PDF bytes.
type Renderer interface {
	LorryReceiptHTML(models.LorryReceiptPDFData) (string, error)
	InvoiceHTML(models.InvoicePDFData) (string, error)
	LedgerHTML(models.LedgerPDFData) (string, error)
	Print(ctx context.Context, html string) ([]byte, error)
}

// Document is a rendered PDF and where it was archived.
type Document struct {
	Name     string `json:"file"`
	Location string `json:"location"`
	Content  []byte `json:"-"`
}

// DocumentService renders LRs, invoices and ledgers to PDF and archives them.
type DocumentService struct {
	renderer Renderer
	archive  storage.Archive
	lrs      *LorryReceiptStore
	binder   *InvoiceBinder
	ledger   *LedgerService
	clients  repository.ClientRepository
	settings repository.SettingsRepository
	log      zerolog.Logger

	now func() time.Time
}

func NewDocumentService(
	renderer Renderer,
	archive storage.Archive,
	lrs *LorryReceiptStore,
	binder *InvoiceBinder,
	ledger *LedgerService,
	clients repository.ClientRepository,
	settings repository.SettingsRepository,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		renderer: renderer,
		archive:  archive,
		lrs:      lrs,
		binder:   binder,
		ledger:   ledger,
		clients:  clients,
		settings: settings,
		log:      log.With().Str("component", "documents").Logger(),
		now:      utcNow,
	}
}

func (s *DocumentService) LorryReceiptPDF(ctx context.Context, id string) (*Document, error) {
	lr, err := s.lrs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	company, err := profileOrBlank(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	consignor, err := s.clients.GetByID(ctx, lr.ConsignorID)
	if err != nil {
		return nil, err
	}
	consignee, err := s.clients.GetByID(ctx, lr.ConsigneeID)
	if err != nil {
		return nil, err
	}

	breakdown := money.ComputeFreightBreakdown(lr.Freight)
	packages := 0
	for _, g := range lr.Goods {
		packages += g.Packages
	}
	html, err := s.renderer.LorryReceiptHTML(models.LorryReceiptPDFData{
		Company:    company,
		LR:         lr,
		Consignor:  consignor,
		Consignee:  consignee,
		Freight:    breakdown,
		Contacts:   utils.ContactLine(company.Mobile),
		Date:       displayDate(lr.Date),
		TotalWords: utils.NumberToCurrencyWords(breakdown.TotalFreight),
		Packages:   packages,
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.publish(ctx, fmt.Sprintf("lr_%s_%d.pdf", lr.LRNumber, s.now().Unix()), html)
	if err != nil {
		return nil, err
	}
	// recording the location is best effort
	if _, err := s.lrs.RecordPDF(ctx, lr.ID, doc.Location); err != nil {
		s.log.Warn().Err(err).Str("lr_id", lr.ID).Msg("failed to record pdf location")
	}
	return doc, nil
}

func (s *DocumentService) InvoicePDF(ctx context.Context, id string) (*Document, error) {
	inv, err := s.binder.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	company, err := profileOrBlank(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.InvoiceHTML(models.InvoicePDFData{
		Company:    company,
		Invoice:    inv,
		Client:     client,
		Contacts:   utils.ContactLine(company.Mobile),
		Date:       displayDate(inv.Date),
		TotalWords: utils.NumberToCurrencyWords(inv.InvoiceValue),
	})
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, fmt.Sprintf("invoice_%s_%d.pdf", inv.ID, s.now().Unix()), html)
}

func (s *DocumentService) LedgerPDF(ctx context.Context, clientID, fy string) (*Document, error) {
	ledger, err := s.ledger.Build(ctx, clientID, fy)
	if err != nil {
		return nil, err
	}
	company, err := profileOrBlank(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.LedgerHTML(models.LedgerPDFData{
		Company:  company,
		Client:   client,
		Ledger:   ledger,
		Contacts: utils.ContactLine(company.Mobile),
	})
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, fmt.Sprintf("ledger_%s_%d.pdf", clientID, s.now().Unix()), html)
}

func (s *DocumentService) publish(ctx context.Context, name, html string) (*Document, error) {
	content, err := s.renderer.Print(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	location, err := s.archive.Put(ctx, name, content)
	if err != nil {
		return nil, apperr.IO("archive "+name, err)
	}
	s.log.Info().Str("file", name).Str("location", location).Msg("document archived")
	return &Document{Name: name, Location: location, Content: content}, nil
}

func displayDate(d models.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("02-Jan-2006")
}
