package service

import (
	"context"
	"strings"
	"time"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

type ExpenseService struct {
	repo repository.ExpenseRepository

	now   func() time.Time
	newID func() string
}

func NewExpenseService(repo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo, now: utcNow, newID: newID}
}

func (s *ExpenseService) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	e.ID = s.newID()
	e.CreatedAt = s.now()
	e.UpdatedAt = nil
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*models.Expense, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every expense, or only those inside fy when it is set.
func (s *ExpenseService) List(ctx context.Context, fy *FinancialYear) ([]*models.Expense, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return all, nil
	}
	out := make([]*models.Expense, 0, len(all))
	for _, e := range all {
		if fy.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *ExpenseService) Update(ctx context.Context, id string, in *models.Expense) (*models.Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateExpense(in); err != nil {
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

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateExpense(e *models.Expense) error {
	e.Description = strings.TrimSpace(e.Description)
	if !e.Category.Valid() {
		return apperr.Validation("category", "unknown category %q", e.Category)
	}
	if !e.Amount.IsPositive() {
		return apperr.Validation("amount", "amount must be greater than zero")
	}
	if e.Date.IsZero() {
		return apperr.Validation("date", "a valid date is required")
	}
	return nil
}
