package service

import (
	"context"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/repository"
)

var hsnPattern = regexp.MustCompile(`^\d{6}$`)

// LorryReceiptStore owns LR records. Booking data is edited through Update;
// billing and operational status only move through their dedicated paths.
type LorryReceiptStore struct {
	repo    repository.LorryReceiptRepository
	clients repository.ClientRepository
	log     zerolog.Logger

	now   func() time.Time
	newID func() string

	// mu serialises every LR write. The invoice binder holds it for the
	// whole of its compound operations, so it calls setBillingStatus locked.
	mu sync.Mutex
}

func NewLorryReceiptStore(repo repository.LorryReceiptRepository, clients repository.ClientRepository, log zerolog.Logger) *LorryReceiptStore {
	return &LorryReceiptStore{
		repo:    repo,
		clients: clients,
		log:     log.With().Str("component", "lr_store").Logger(),
		now:     utcNow,
		newID:   newID,
	}
}

// Create books a new LR: Un-Billed, Booked, with the next LR number.
func (s *LorryReceiptStore) Create(ctx context.Context, lr *models.LorryReceipt) (*models.LorryReceipt, error) {
	if err := s.validate(ctx, lr); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	number, err := s.nextNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	lr.ID = s.newID()
	lr.LRNumber = number
	lr.BillingStatus = models.BillingUnbilled
	lr.Status = models.LRBooked
	lr.BookingTime = now
	lr.CreatedAt = now
	lr.UpdatedAt = nil
	lr.DispatchTime, lr.DeliveryTime, lr.ClosureTime = nil, nil, nil
	lr.CurrentLocation, lr.ProofOfDelivery = "", ""
	lr.TransitUpdates = nil
	lr.PDFPath, lr.PDFCreatedAt = "", nil
	lr.Goods = s.assignGoodsIDs(lr.Goods, nil)

	if err := s.repo.Create(ctx, lr); err != nil {
		return nil, err
	}
	s.log.Info().Str("lr_id", lr.ID).Str("lr_number", lr.LRNumber).Msg("lorry receipt booked")
	return lr, nil
}

// nextNumber returns max(numeric LR number) + 1. Non-numeric legacy numbers
// are ignored.
func (s *LorryReceiptStore) nextNumber(ctx context.Context) (string, error) {
	all, err := s.repo.List(ctx, repository.LRFilter{})
	if err != nil {
		return "", err
	}
	var highest int64
	for _, lr := range all {
		if n, err := strconv.ParseInt(lr.LRNumber, 10, 64); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.FormatInt(highest+1, 10), nil
}

func (s *LorryReceiptStore) Get(ctx context.Context, id string) (*models.LorryReceipt, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the LRs matching filter, restricted to fy when it is set.
func (s *LorryReceiptStore) List(ctx context.Context, filter repository.LRFilter, fy *FinancialYear) ([]*models.LorryReceipt, error) {
	all, err := s.repo.List(ctx, filter)
	if err != nil || fy == nil {
		return all, err
	}
	out := make([]*models.LorryReceipt, 0, len(all))
	for _, lr := range all {
		if fy.Contains(lr.Date) {
			out = append(out, lr)
		}
	}
	return out, nil
}

// FindMany loads every id or fails with NotFound naming the first missing one.
func (s *LorryReceiptStore) FindMany(ctx context.Context, ids []string) ([]*models.LorryReceipt, error) {
	found, err := s.repo.FindMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.LorryReceipt, len(found))
	for _, lr := range found {
		byID[lr.ID] = lr
	}
	out := make([]*models.LorryReceipt, 0, len(ids))
	for _, id := range ids {
		lr, ok := byID[id]
		if !ok {
			return nil, apperr.NotFound("lorry receipt", id)
		}
		out = append(out, lr)
	}
	return out, nil
}

// FindUnbilled lists Un-Billed LRs, optionally only those consigned by clientID.
func (s *LorryReceiptStore) FindUnbilled(ctx context.Context, clientID string) ([]*models.LorryReceipt, error) {
	return s.repo.List(ctx, repository.LRFilter{ConsignorID: clientID, BillingStatus: models.BillingUnbilled})
}

// Update replaces the booking data of an LR. Status fields, timestamps and
// the LR number are kept from the stored record.
func (s *LorryReceiptStore) Update(ctx context.Context, id string, in *models.LorryReceipt) (*models.LorryReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.LRClosed {
		return nil, apperr.Conflict("lorry receipt %s is closed", existing.LRNumber)
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	// A billed LR stays with the client its invoice was raised for.
	if existing.BillingStatus == models.BillingBilled && in.ConsignorID != existing.ConsignorID {
		return nil, apperr.Conflict("lorry receipt %s is billed; its consignor cannot change", existing.LRNumber)
	}

	updated := *existing
	updated.Date = in.Date
	updated.From = in.From
	updated.To = in.To
	updated.ConsignorID = in.ConsignorID
	updated.ConsigneeID = in.ConsigneeID
	updated.VehicleNumber = in.VehicleNumber
	updated.DriverName = in.DriverName
	updated.DriverPhone = in.DriverPhone
	updated.Freight = in.Freight
	updated.GSTPayableBy = in.GSTPayableBy
	updated.EWayBillNumber = in.EWayBillNumber
	updated.Remarks = in.Remarks
	updated.PaymentStatus = in.PaymentStatus
	updated.FreightType = in.FreightType
	updated.TransportMode = in.TransportMode
	updated.DeliveryType = in.DeliveryType
	updated.LoadingAddress = in.LoadingAddress
	updated.DeliveryAddress = in.DeliveryAddress
	updated.SealNumber = in.SealNumber
	updated.Insured = in.Insured
	updated.InsuranceDetails = in.InsuranceDetails
	updated.DemurrageAfterHours = in.DemurrageAfterHours
	updated.DemurrageChargePerHour = in.DemurrageChargePerHour
	updated.ReceiverComments = in.ReceiverComments
	updated.HideFreightInPDF = in.HideFreightInPDF
	updated.Goods = s.assignGoodsIDs(in.Goods, existing.Goods)

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an Un-Billed LR that is not Closed.
func (s *LorryReceiptStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lr.Status == models.LRClosed {
		return apperr.Conflict("lorry receipt %s is closed", lr.LRNumber)
	}
	if lr.BillingStatus == models.BillingBilled {
		return apperr.Conflict("lorry receipt %s is billed; delete its invoice first", lr.LRNumber)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("lr_id", id).Msg("lorry receipt deleted")
	return nil
}

// RecordPDF stores where the rendered LR document was archived.
func (s *LorryReceiptStore) RecordPDF(ctx context.Context, id, path string) (*models.LorryReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, id, func(lr *models.LorryReceipt, at time.Time) error {
		lr.PDFPath = path
		lr.PDFCreatedAt = &at
		return nil
	})
}

// setBillingStatus is reserved for the invoice binder, which holds s.mu.
func (s *LorryReceiptStore) setBillingStatus(ctx context.Context, id string, status models.BillingStatus) (*models.LorryReceipt, error) {
	return s.mutate(ctx, id, func(lr *models.LorryReceipt, _ time.Time) error {
		lr.BillingStatus = status
		return nil
	})
}

// mutate applies fn to a non-Closed LR and persists it. Callers hold s.mu.
func (s *LorryReceiptStore) mutate(ctx context.Context, id string, fn func(*models.LorryReceipt, time.Time) error) (*models.LorryReceipt, error) {
	lr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr.Status == models.LRClosed {
		return nil, apperr.Conflict("lorry receipt %s is closed", lr.LRNumber)
	}
	if err := fn(lr, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *LorryReceiptStore) save(ctx context.Context, lr *models.LorryReceipt) error {
	now := s.now()
	lr.UpdatedAt = &now
	return s.repo.Update(ctx, lr)
}

// assignGoodsIDs keeps ids that belong to a stored item and replaces any
// other id (including client-side placeholders) with a fresh one.
func (s *LorryReceiptStore) assignGoodsIDs(items, stored []models.GoodsItem) []models.GoodsItem {
	known := make(map[string]bool, len(stored))
	for _, g := range stored {
		known[g.ID] = true
	}
	out := make([]models.GoodsItem, len(items))
	for i, g := range items {
		if g.ID == "" || !known[g.ID] {
			g.ID = s.newID()
		}
		out[i] = g
	}
	return out
}

func (s *LorryReceiptStore) validate(ctx context.Context, lr *models.LorryReceipt) error {
	if blank(lr.ConsignorID) {
		return apperr.Validation("consignor_id", "consignor is required")
	}
	if blank(lr.ConsigneeID) {
		return apperr.Validation("consignee_id", "consignee is required")
	}
	if lr.Date.IsZero() {
		return apperr.Validation("date", "a valid date is required")
	}
	if lr.GSTPayableBy != "" && !lr.GSTPayableBy.Valid() {
		return apperr.Validation("gst_payable_by", "unknown party %q", lr.GSTPayableBy)
	}
	for i, g := range lr.Goods {
		if g.HSNCode != "" && !hsnPattern.MatchString(g.HSNCode) {
			return apperr.Validation("goods", "item %d: HSN code must be 6 digits", i+1)
		}
		if g.Packages < 0 {
			return apperr.Validation("goods", "item %d: packages cannot be negative", i+1)
		}
	}
	if lr.FreightType != "" && !lr.FreightType.Valid() {
		return apperr.Validation("freight_type", "must be Paid or Due")
	}
	if err := nonNegativeFreight(lr.Freight); err != nil {
		return err
	}
	if lr.DemurrageAfterHours < 0 {
		return apperr.Validation("demurrage_after_hours", "cannot be negative")
	}
	if lr.DemurrageChargePerHour.IsNegative() {
		return apperr.Validation("demurrage_charge_per_hour", "cannot be negative")
	}

	if _, err := s.clients.GetByID(ctx, lr.ConsignorID); err != nil {
		return err
	}
	if lr.ConsigneeID != lr.ConsignorID {
		if _, err := s.clients.GetByID(ctx, lr.ConsigneeID); err != nil {
			return err
		}
	}
	return nil
}

func nonNegativeFreight(f models.FreightDetails) error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"basic_freight", f.BasicFreight},
		{"packing_charge", f.PackingCharge},
		{"pickup_charge", f.PickupCharge},
		{"service_charge", f.ServiceCharge},
		{"loading_charge", f.LoadingCharge},
		{"cod_dod_charge", f.CODDODCharge},
		{"halting_charge", f.HaltingCharge},
		{"extra_charge", f.ExtraCharge},
		{"other_charges", f.OtherCharges},
		{"sgst_percent", f.SGSTPercent},
		{"cgst_percent", f.CGSTPercent},
		{"advance_paid", f.AdvancePaid},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return apperr.Validation("freight."+a.field, "cannot be negative")
		}
	}
	return nil
}
