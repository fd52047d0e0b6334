package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

type PaymentFilter struct {
	ClientID      string
	FinancialYear *FinancialYear
}

// PaymentService records money received. Payments are not matched to
// invoices; the ledger nets them against billing per client.
type PaymentService struct {
	repo    repository.PaymentRepository
	clients repository.ClientRepository
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewPaymentService(repo repository.PaymentRepository, clients repository.ClientRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		repo:    repo,
		clients: clients,
		log:     log.With().Str("component", "payments").Logger(),
		now:     utcNow,
		newID:   newID,
	}
}

func (s *PaymentService) Record(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if blank(p.ClientID) {
		return nil, apperr.Validation("client_id", "client is required")
	}
	if !p.Amount.IsPositive() {
		return nil, apperr.Validation("amount", "amount must be greater than zero")
	}
	if !p.Mode.Valid() {
		return nil, apperr.Validation("mode", "unknown payment mode %q", p.Mode)
	}
	if p.Date.IsZero() {
		return nil, apperr.Validation("date", "a valid date is required")
	}
	if _, err := s.clients.GetByID(ctx, p.ClientID); err != nil {
		return nil, err
	}

	p.ID = s.newID()
	p.CreatedAt = s.now()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("payment_id", p.ID).Str("client_id", p.ClientID).Str("amount", p.Amount.String()).
		Msg("payment recorded")
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context, f PaymentFilter) ([]*models.Payment, error) {
	all, err := s.repo.List(ctx, repository.PaymentFilter{ClientID: f.ClientID})
	if err != nil {
		return nil, err
	}
	if f.FinancialYear == nil {
		return all, nil
	}
	out := make([]*models.Payment, 0, len(all))
	for _, p := range all {
		if f.FinancialYear.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
