// Package repository persists domain entities. Implementations translate
// driver failures into apperr kinds: a missing row is apperr.ErrNotFound, a
// unique-key clash is apperr.ErrConflict and anything else is apperr.ErrIO.
package repository

import (
	"context"

	"freightdesk/models"
)

type LRFilter struct {
	ConsignorID   string
	PartyID       string // consignor or consignee
	BillingStatus models.BillingStatus
	Status        models.LRStatus
}

type LorryReceiptRepository interface {
	Create(ctx context.Context, lr *models.LorryReceipt) error
	GetByID(ctx context.Context, id string) (*models.LorryReceipt, error)
	// FindMany returns the receipts that exist among ids, in no particular order.
	FindMany(ctx context.Context, ids []string) ([]*models.LorryReceipt, error)
	List(ctx context.Context, filter LRFilter) ([]*models.LorryReceipt, error)
	Update(ctx context.Context, lr *models.LorryReceipt) error
	Delete(ctx context.Context, id string) error
}

type InvoiceFilter struct {
	ClientID string
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id string) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id string) error
}

type PaymentFilter struct {
	ClientID string
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	List(ctx context.Context) ([]*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository stores the single company profile.
type SettingsRepository interface {
	SaveProfile(ctx context.Context, p *models.CompanyProfile) error
	// GetProfile returns apperr.ErrNotFound until a profile has been saved.
	GetProfile(ctx context.Context) (*models.CompanyProfile, error)
}
