package memrepo

import (
	"context"
	"slices"

	"freightdesk/models"
	"freightdesk/repository"
)

type LorryReceipts struct {
	*table[models.LorryReceipt]
}

func NewLorryReceipts() *LorryReceipts {
	return &LorryReceipts{newTable("lorry receipt", cloneLR)}
}

func (r *LorryReceipts) Create(ctx context.Context, lr *models.LorryReceipt) error {
	return r.insert(ctx, lr.ID, lr)
}

func (r *LorryReceipts) GetByID(ctx context.Context, id string) (*models.LorryReceipt, error) {
	return r.get(ctx, id)
}

func (r *LorryReceipts) FindMany(_ context.Context, ids []string) ([]*models.LorryReceipt, error) {
	return r.all(func(lr *models.LorryReceipt) bool { return slices.Contains(ids, lr.ID) }), nil
}

func (r *LorryReceipts) List(_ context.Context, f repository.LRFilter) ([]*models.LorryReceipt, error) {
	return r.all(func(lr *models.LorryReceipt) bool {
		switch {
		case f.ConsignorID != "" && lr.ConsignorID != f.ConsignorID:
			return false
		case f.PartyID != "" && lr.ConsignorID != f.PartyID && lr.ConsigneeID != f.PartyID:
			return false
		case f.BillingStatus != "" && lr.BillingStatus != f.BillingStatus:
			return false
		case f.Status != "" && lr.Status != f.Status:
			return false
		}
		return true
	}), nil
}

func (r *LorryReceipts) Update(ctx context.Context, lr *models.LorryReceipt) error {
	return r.replace(ctx, lr.ID, lr)
}

func (r *LorryReceipts) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}

type Invoices struct {
	*table[models.Invoice]
}

func NewInvoices() *Invoices {
	return &Invoices{newTable("invoice", cloneInvoice)}
}

func (r *Invoices) Create(ctx context.Context, inv *models.Invoice) error {
	return r.insert(ctx, inv.ID, inv)
}

func (r *Invoices) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return r.get(ctx, id)
}

func (r *Invoices) List(_ context.Context, f repository.InvoiceFilter) ([]*models.Invoice, error) {
	return r.all(func(inv *models.Invoice) bool {
		return f.ClientID == "" || inv.ClientID == f.ClientID
	}), nil
}

func (r *Invoices) Update(ctx context.Context, inv *models.Invoice) error {
	return r.replace(ctx, inv.ID, inv)
}

func (r *Invoices) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}

type Clients struct {
	*table[models.Client]
}

func NewClients() *Clients {
	return &Clients{newTable("client", cloneValue[models.Client])}
}

func (r *Clients) Create(ctx context.Context, c *models.Client) error {
	return r.insert(ctx, c.ID, c)
}

func (r *Clients) GetByID(ctx context.Context, id string) (*models.Client, error) {
	return r.get(ctx, id)
}

func (r *Clients) List(context.Context) ([]*models.Client, error) {
	return r.all(nil), nil
}

func (r *Clients) Update(ctx context.Context, c *models.Client) error {
	return r.replace(ctx, c.ID, c)
}

func (r *Clients) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}

type Payments struct {
	*table[models.Payment]
}

func NewPayments() *Payments {
	return &Payments{newTable("payment", cloneValue[models.Payment])}
}

func (r *Payments) Create(ctx context.Context, p *models.Payment) error {
	return r.insert(ctx, p.ID, p)
}

func (r *Payments) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return r.get(ctx, id)
}

func (r *Payments) List(_ context.Context, f repository.PaymentFilter) ([]*models.Payment, error) {
	return r.all(func(p *models.Payment) bool {
		return f.ClientID == "" || p.ClientID == f.ClientID
	}), nil
}

func (r *Payments) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}

type Expenses struct {
	*table[models.Expense]
}

func NewExpenses() *Expenses {
	return &Expenses{newTable("expense", cloneValue[models.Expense])}
}

func (r *Expenses) Create(ctx context.Context, e *models.Expense) error {
	return r.insert(ctx, e.ID, e)
}

func (r *Expenses) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	return r.get(ctx, id)
}

func (r *Expenses) List(context.Context) ([]*models.Expense, error) {
	return r.all(nil), nil
}

func (r *Expenses) Update(ctx context.Context, e *models.Expense) error {
	return r.replace(ctx, e.ID, e)
}

func (r *Expenses) Delete(ctx context.Context, id string) error {
	return r.remove(ctx, id)
}

const profileKey = "company"

type Settings struct {
	*table[models.CompanyProfile]
}

func NewSettings() *Settings {
	return &Settings{newTable("company profile", cloneProfile)}
}

func (r *Settings) SaveProfile(ctx context.Context, p *models.CompanyProfile) error {
	r.upsert(ctx, profileKey, p)
	return nil
}

func (r *Settings) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	return r.get(ctx, profileKey)
}

func cloneValue[T any](v *T) *T {
	c := *v
	return &c
}

func cloneLR(lr *models.LorryReceipt) *models.LorryReceipt {
	c := *lr
	c.Goods = slices.Clone(lr.Goods)
	c.TransitUpdates = slices.Clone(lr.TransitUpdates)
	return &c
}

func cloneInvoice(inv *models.Invoice) *models.Invoice {
	c := *inv
	c.LrDetails = slices.Clone(inv.LrDetails)
	if inv.BankDetails != nil {
		bank := *inv.BankDetails
		c.BankDetails = &bank
	}
	return &c
}

func cloneProfile(p *models.CompanyProfile) *models.CompanyProfile {
	c := *p
	c.Mobile = slices.Clone(p.Mobile)
	if p.BankDetails != nil {
		bank := *p.BankDetails
		c.BankDetails = &bank
	}
	return &c
}

var (
	_ repository.LorryReceiptRepository = (*LorryReceipts)(nil)
	_ repository.InvoiceRepository      = (*Invoices)(nil)
	_ repository.ClientRepository       = (*Clients)(nil)
	_ repository.PaymentRepository      = (*Payments)(nil)
	_ repository.ExpenseRepository      = (*Expenses)(nil)
	_ repository.SettingsRepository     = (*Settings)(nil)
)
