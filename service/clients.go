package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

type ClientService struct {
	repo     repository.ClientRepository
	lrs      repository.LorryReceiptRepository
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewClientService(
	repo repository.ClientRepository,
	lrs repository.LorryReceiptRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	log zerolog.Logger,
) *ClientService {
	return &ClientService{
		repo:     repo,
		lrs:      lrs,
		invoices: invoices,
		payments: payments,
		log:      log.With().Str("component", "clients").Logger(),
		now:      utcNow,
		newID:    newID,
	}
}

func (s *ClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	normalizeClient(c)
	if err := validateClient(c); err != nil {
		return nil, err
	}
	c.ID = s.newID()
	c.CreatedAt = s.now()
	c.UpdatedAt = nil
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, id string, in *models.Client) (*models.Client, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	normalizeClient(in)
	if err := validateClient(in); err != nil {
		return nil, err
	}
	now := s.now()
	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	in.UpdatedAt = &now
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// Delete refuses while any LR, invoice or payment still names the client.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	lrs, err := s.lrs.List(ctx, repository.LRFilter{PartyID: id})
	if err != nil {
		return err
	}
	if len(lrs) > 0 {
		return apperr.Conflict("client is party to %d lorry receipt(s)", len(lrs))
	}
	invoices, err := s.invoices.List(ctx, repository.InvoiceFilter{ClientID: id})
	if err != nil {
		return err
	}
	if len(invoices) > 0 {
		return apperr.Conflict("client has %d invoice(s)", len(invoices))
	}
	payments, err := s.payments.List(ctx, repository.PaymentFilter{ClientID: id})
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return apperr.Conflict("client has %d payment(s)", len(payments))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func normalizeClient(c *models.Client) {
	c.Name = strings.TrimSpace(c.Name)
	c.GSTIN = strings.ToUpper(strings.TrimSpace(c.GSTIN))
	c.Email = strings.TrimSpace(c.Email)
}

func validateClient(c *models.Client) error {
	if c.Name == "" {
		return apperr.Validation("name", "client name is required")
	}
	if c.GSTIN == "" {
		return apperr.Validation("gstin", "GSTIN is required")
	}
	return nil
}
