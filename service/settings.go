package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

// SettingsService keeps the company profile printed on every document.
type SettingsService struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, now: utcNow}
}

func (s *SettingsService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	return s.repo.GetProfile(ctx)
}

func (s *SettingsService) Save(ctx context.Context, p *models.CompanyProfile) (*models.CompanyProfile, error) {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.GSTIN = strings.ToUpper(strings.TrimSpace(p.GSTIN))
	if p.CompanyName == "" {
		return nil, apperr.Validation("company_name", "company name is required")
	}
	for i, m := range p.Mobile {
		if blank(m.Number) {
			return nil, apperr.Validation("mobile", "mobile entry %d has no number", i+1)
		}
	}
	p.UpdatedAt = s.now()
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// profileOrBlank returns the saved profile, or an empty one before setup.
func profileOrBlank(ctx context.Context, repo repository.SettingsRepository) (*models.CompanyProfile, error) {
	p, err := repo.GetProfile(ctx)
	if errors.Is(err, apperr.ErrNotFound) {
		return &models.CompanyProfile{}, nil
	}
	return p, err
}
