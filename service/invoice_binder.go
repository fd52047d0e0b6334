package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"freightdesk/apperr"
	"freightdesk/models"
	"freightdesk/money"
	"freightdesk/repository"
)

const (
	invoicePrefix  = "INV-"
	defaultHSNCode = "996511"
)

var hundred = decimal.NewFromInt(100)

type InvoiceRates struct {
	Discount  decimal.Decimal `json:"discount"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
	TDSRate   decimal.Decimal `json:"tds_rate"`
	TDSAmount decimal.Decimal `json:"tds_amount"`
	// AdvanceReceived defaults to the sum of line advances when nil.
	AdvanceReceived *decimal.Decimal `json:"advance_received"`
	RoundOff        decimal.Decimal  `json:"round_off"`
}

// InvoiceRequest describes an invoice to generate or the new content of an
// existing one. Lines come either from LRIDs (snapshotted) or from Lines.
type InvoiceRequest struct {
	ClientID           string              `json:"client_id"`
	LRIDs              []string            `json:"lr_ids"`
	Lines              []models.LrDetail   `json:"lines"`
	Rates              InvoiceRates        `json:"rates"`
	Date               models.Date         `json:"date"`
	AdvanceReceivedVia models.PaymentMode  `json:"advance_received_via"`
	HSNCode            string              `json:"hsn_code"`
	Remarks            string              `json:"remarks"`
	GSTPayableBy       models.GSTPayer     `json:"gst_payable_by"`
	BankDetails        *models.BankDetails `json:"bank_details"`
}

type InvoiceResult struct {
	Invoice    *models.Invoice        `json:"invoice"`
	UpdatedLRs []*models.LorryReceipt `json:"updated_lrs"`
}

type InvoiceListFilter struct {
	ClientID      string
	FinancialYear *FinancialYear
}

// InvoiceBinder creates, edits and deletes invoices together with the billing
// status of the LRs they reference. Each call either completes or leaves
// invoices and LRs as they were; partial progress is undone before returning.
type InvoiceBinder struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	settings repository.SettingsRepository
	lrs      *LorryReceiptStore
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewInvoiceBinder(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	settings repository.SettingsRepository,
	lrs *LorryReceiptStore,
	log zerolog.Logger,
) *InvoiceBinder {
	return &InvoiceBinder{
		invoices: invoices,
		clients:  clients,
		settings: settings,
		lrs:      lrs,
		log:      log.With().Str("component", "invoice_binder").Logger(),
		now:      utcNow,
		newID:    newID,
	}
}

// Generate builds an invoice from req, stores it and marks its LRs Billed.
func (b *InvoiceBinder) Generate(ctx context.Context, req InvoiceRequest) (*InvoiceResult, error) {
	b.lrs.mu.Lock()
	defer b.lrs.mu.Unlock()

	if err := validateInvoiceRequest(req); err != nil {
		return nil, err
	}
	lines, clientID, err := b.resolveLines(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if _, err := b.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	existing, err := b.invoices.List(ctx, repository.InvoiceFilter{})
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		ID:        nextInvoiceNumber(existing),
		ClientID:  clientID,
		LrDetails: lines,
		Status:    models.PaymentPending,
		CreatedAt: b.now(),
	}
	b.apply(ctx, inv, req)

	if err := b.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	billed, err := b.setBilling(ctx, inv.LRIDs(), models.BillingBilled, false)
	if err != nil {
		return nil, b.compensate(ctx, err,
			b.revertStep(billed, models.BillingUnbilled),
			func(ctx context.Context) error { return b.invoices.Delete(ctx, inv.ID) },
		)
	}

	b.log.Info().Str("invoice_id", inv.ID).Str("client_id", clientID).
		Int("lrs", len(billed)).Str("invoice_value", inv.InvoiceValue.String()).
		Msg("invoice generated")
	return &InvoiceResult{Invoice: inv, UpdatedLRs: billed}, nil
}

// Update recomputes an invoice from req. Billing status is only touched for
// LRs added to or removed from the invoice.
func (b *InvoiceBinder) Update(ctx context.Context, id string, req InvoiceRequest) (*InvoiceResult, error) {
	b.lrs.mu.Lock()
	defer b.lrs.mu.Unlock()

	if err := validateInvoiceRequest(req); err != nil {
		return nil, err
	}
	inv, err := b.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := cloneInvoice(inv)

	lines, clientID, err := b.resolveLines(ctx, req, previous)
	if err != nil {
		return nil, err
	}
	if _, err := b.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	now := b.now()
	inv.ClientID = clientID
	inv.LrDetails = lines
	inv.UpdatedAt = &now
	b.apply(ctx, inv, req)

	added, removed := diffIDs(previous.LRIDs(), inv.LRIDs())

	if err := b.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	restore := func(ctx context.Context) error { return b.invoices.Update(ctx, previous) }

	billed, err := b.setBilling(ctx, added, models.BillingBilled, false)
	if err != nil {
		return nil, b.compensate(ctx, err, b.revertStep(billed, models.BillingUnbilled), restore)
	}
	released, err := b.setBilling(ctx, removed, models.BillingUnbilled, true)
	if err != nil {
		return nil, b.compensate(ctx, err,
			b.revertStep(released, models.BillingBilled),
			b.revertStep(billed, models.BillingUnbilled),
			restore,
		)
	}

	b.log.Info().Str("invoice_id", inv.ID).Int("added_lrs", len(added)).Int("removed_lrs", len(removed)).
		Msg("invoice updated")
	return &InvoiceResult{Invoice: inv, UpdatedLRs: append(billed, released...)}, nil
}

// Delete releases the invoice's LRs back to Un-Billed, then removes the
// invoice. LRs that no longer exist are skipped.
func (b *InvoiceBinder) Delete(ctx context.Context, id string) ([]*models.LorryReceipt, error) {
	b.lrs.mu.Lock()
	defer b.lrs.mu.Unlock()

	inv, err := b.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	released, err := b.setBilling(ctx, inv.LRIDs(), models.BillingUnbilled, true)
	if err != nil {
		return nil, b.compensate(ctx, err, b.revertStep(released, models.BillingBilled))
	}
	if err := b.invoices.Delete(ctx, id); err != nil {
		return nil, b.compensate(ctx, err, b.revertStep(released, models.BillingBilled))
	}

	b.log.Info().Str("invoice_id", id).Int("released_lrs", len(released)).Msg("invoice deleted")
	return released, nil
}

func (b *InvoiceBinder) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Invoice, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status", "unknown payment status %q", status)
	}

	b.lrs.mu.Lock()
	defer b.lrs.mu.Unlock()

	inv, err := b.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := b.now()
	inv.Status = status
	inv.UpdatedAt = &now
	if err := b.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (b *InvoiceBinder) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return b.invoices.GetByID(ctx, id)
}

func (b *InvoiceBinder) List(ctx context.Context, f InvoiceListFilter) ([]*models.Invoice, error) {
	all, err := b.invoices.List(ctx, repository.InvoiceFilter{ClientID: f.ClientID})
	if err != nil {
		return nil, err
	}
	if f.FinancialYear == nil {
		return all, nil
	}
	out := make([]*models.Invoice, 0, len(all))
	for _, inv := range all {
		if f.FinancialYear.Contains(inv.Date) {
			out = append(out, inv)
		}
	}
	return out, nil
}

// resolveLines turns the request into invoice lines and works out the client.
// prev is the invoice being edited; its LRs are already billed to it.
func (b *InvoiceBinder) resolveLines(ctx context.Context, req InvoiceRequest, prev *models.Invoice) ([]models.LrDetail, string, error) {
	switch {
	case len(req.LRIDs) > 0 && len(req.Lines) > 0:
		return nil, "", apperr.Validation("lr_ids", "send either lr_ids or lines, not both")
	case len(req.LRIDs) == 0 && len(req.Lines) == 0:
		return nil, "", apperr.Validation("lines", "an invoice needs at least one line")
	}

	owned := map[string]models.LrDetail{}
	if prev != nil {
		for _, line := range prev.LrDetails {
			if line.LRID != "" {
				owned[line.LRID] = line
			}
		}
	}

	clientID := strings.TrimSpace(req.ClientID)

	if len(req.LRIDs) > 0 {
		lrs, err := b.loadBillable(ctx, req.LRIDs, owned)
		if err != nil {
			return nil, "", err
		}
		if clientID == "" {
			clientID = lrs[0].ConsignorID
		}
		if err := sameConsignor(lrs, clientID); err != nil {
			return nil, "", err
		}
		lines := make([]models.LrDetail, 0, len(lrs))
		for _, lr := range lrs {
			// lines already on the invoice keep their original snapshot
			if line, ok := owned[lr.ID]; ok {
				lines = append(lines, line)
				continue
			}
			lines = append(lines, snapshotLR(lr, b.newID()))
		}
		return lines, clientID, nil
	}

	lines := slices.Clone(req.Lines)
	var ids []string
	for i := range lines {
		if lines[i].ID == "" {
			lines[i].ID = b.newID()
		}
		if lines[i].LRID != "" {
			ids = append(ids, lines[i].LRID)
		}
	}
	if len(ids) > 0 {
		lrs, err := b.loadBillable(ctx, ids, owned)
		if err != nil {
			return nil, "", err
		}
		if clientID == "" {
			clientID = lrs[0].ConsignorID
		}
		if err := sameConsignor(lrs, clientID); err != nil {
			return nil, "", err
		}
	}
	if clientID == "" {
		return nil, "", apperr.Validation("client_id", "client is required")
	}
	return lines, clientID, nil
}

// loadBillable fetches ids and checks each can be billed. LRs in owned are
// already billed to the invoice being edited and pass as-is.
func (b *InvoiceBinder) loadBillable(ctx context.Context, ids []string, owned map[string]models.LrDetail) ([]*models.LorryReceipt, error) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, apperr.Validation("lr_ids", "lorry receipt %s is listed more than once", id)
		}
		seen[id] = true
	}

	lrs, err := b.lrs.FindMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, lr := range lrs {
		if _, ok := owned[lr.ID]; ok {
			continue
		}
		if lr.Status == models.LRClosed {
			return nil, apperr.Conflict("lorry receipt %s is closed", lr.LRNumber)
		}
		if lr.BillingStatus == models.BillingBilled {
			return nil, apperr.Conflict("lorry receipt %s is already billed", lr.LRNumber)
		}
	}
	return lrs, nil
}

func sameConsignor(lrs []*models.LorryReceipt, clientID string) error {
	first := lrs[0]
	for _, lr := range lrs[1:] {
		if lr.ConsignorID != first.ConsignorID {
			return apperr.Conflict("mixed clients: lorry receipts %s and %s have different consignors",
				first.LRNumber, lr.LRNumber)
		}
	}
	if first.ConsignorID != clientID {
		return apperr.Conflict("lorry receipt %s does not belong to client %s", first.LRNumber, clientID)
	}
	return nil
}

// snapshotLR copies the billable facts of an LR into an invoice line.
func snapshotLR(lr *models.LorryReceipt, lineID string) models.LrDetail {
	var (
		names    []string
		articles int
		weight   = decimal.Zero
	)
	for _, g := range lr.Goods {
		if g.ProductName != "" {
			names = append(names, g.ProductName)
		}
		articles += g.Packages
		weight = weight.Add(g.ChargeWeight)
	}
	return models.LrDetail{
		ID:              lineID,
		LRID:            lr.ID,
		LRNumber:        lr.LRNumber,
		Date:            lr.Date,
		TruckNumber:     lr.VehicleNumber,
		From:            lr.From,
		To:              lr.To,
		MaterialDetails: strings.Join(names, ", "),
		Articles:        articles,
		TotalWeight:     weight,
		FreightAmount:   lr.Freight.BasicFreight,
		HaltingCharge:   lr.Freight.HaltingCharge,
		ExtraCharge:     lr.Freight.ExtraCharge,
		Advance:         lr.Freight.AdvancePaid,
	}
}

// apply copies the descriptive fields of req onto inv, fills defaults and
// recomputes every derived amount.
func (b *InvoiceBinder) apply(ctx context.Context, inv *models.Invoice, req InvoiceRequest) {
	switch {
	case !req.Date.IsZero():
		inv.Date = req.Date
	case inv.Date.IsZero():
		inv.Date = models.DateOf(b.now())
	}

	inv.HSNCode = strings.TrimSpace(req.HSNCode)
	if inv.HSNCode == "" {
		inv.HSNCode = defaultHSNCode
	}
	inv.Remarks = req.Remarks

	inv.GSTPayableBy = req.GSTPayableBy
	if inv.GSTPayableBy == "" {
		inv.GSTPayableBy = models.GSTPayerConsignee
	}
	inv.AdvanceReceivedVia = req.AdvanceReceivedVia
	if inv.AdvanceReceivedVia == "" {
		inv.AdvanceReceivedVia = models.ModeBank
	}

	if req.BankDetails != nil {
		bank := *req.BankDetails
		inv.BankDetails = &bank
	} else if inv.BankDetails == nil {
		inv.BankDetails = b.defaultBankDetails(ctx)
	}

	computeTotals(inv, req.Rates)
}

func computeTotals(inv *models.Invoice, r InvoiceRates) {
	trip := money.TripTotal(inv.LrDetails)
	advance := money.AdvanceTotal(inv.LrDetails)
	if r.AdvanceReceived != nil {
		advance = *r.AdvanceReceived
	}

	amounts := money.ComputeInvoiceAmounts(trip, money.Rates{
		Discount:        r.Discount,
		GSTRate:         r.GSTRate,
		TDSRate:         r.TDSRate,
		TDSAmount:       r.TDSAmount,
		AdvanceReceived: advance,
		RoundOff:        r.RoundOff,
	})

	inv.Discount = r.Discount
	inv.GSTRate = r.GSTRate
	inv.TDSRate = r.TDSRate
	inv.TDSAmount = r.TDSAmount
	inv.AdvanceReceived = advance
	inv.RoundOff = r.RoundOff

	inv.TotalTripAmount = trip
	inv.SubTotal = amounts.AmountAfterDiscount
	inv.TDSDeduction = amounts.TDS
	inv.GSTAmount = amounts.GST
	inv.InvoiceValue = amounts.InvoiceValue
	inv.NetPayable = amounts.NetPayable
}

func (b *InvoiceBinder) defaultBankDetails(ctx context.Context) *models.BankDetails {
	if b.settings == nil {
		return nil
	}
	profile, err := b.settings.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			b.log.Warn().Err(err).Msg("company profile unavailable; invoice saved without bank details")
		}
		return nil
	}
	if profile.BankDetails == nil {
		return nil
	}
	bank := *profile.BankDetails
	return &bank
}

func validateInvoiceRequest(req InvoiceRequest) error {
	if req.AdvanceReceivedVia != "" && !req.AdvanceReceivedVia.Valid() {
		return apperr.Validation("advance_received_via", "unknown payment mode %q", req.AdvanceReceivedVia)
	}
	if req.GSTPayableBy != "" && !req.GSTPayableBy.Valid() {
		return apperr.Validation("gst_payable_by", "unknown party %q", req.GSTPayableBy)
	}
	if r := req.Rates.GSTRate; r.IsNegative() || r.GreaterThan(hundred) {
		return apperr.Validation("rates.gst_rate", "must be between 0 and 100")
	}
	if r := req.Rates.TDSRate; r.IsNegative() || r.GreaterThan(hundred) {
		return apperr.Validation("rates.tds_rate", "must be between 0 and 100")
	}
	if req.Rates.TDSAmount.IsNegative() {
		return apperr.Validation("rates.tds_amount", "cannot be negative")
	}
	return nil
}

// setBilling flips ids one by one and returns the LRs changed before any
// failure. With skipMissing, LRs that no longer exist are passed over.
func (b *InvoiceBinder) setBilling(ctx context.Context, ids []string, status models.BillingStatus, skipMissing bool) ([]*models.LorryReceipt, error) {
	changed := make([]*models.LorryReceipt, 0, len(ids))
	for _, id := range ids {
		lr, err := b.lrs.setBillingStatus(ctx, id, status)
		if err != nil {
			if skipMissing && errors.Is(err, apperr.ErrNotFound) {
				b.log.Warn().Str("lr_id", id).Msg("invoice references a missing lorry receipt")
				continue
			}
			return changed, fmt.Errorf("mark lorry receipt %s %s: %w", id, status, err)
		}
		changed = append(changed, lr)
	}
	return changed, nil
}

func (b *InvoiceBinder) revertStep(lrs []*models.LorryReceipt, status models.BillingStatus) func(context.Context) error {
	return func(ctx context.Context) error {
		var result *multierror.Error
		for _, lr := range lrs {
			if _, err := b.lrs.setBillingStatus(ctx, lr.ID, status); err != nil {
				result = multierror.Append(result, err)
			}
		}
		return result.ErrorOrNil()
	}
}

// compensate runs the undo steps even if the request context is gone. cause
// is returned unchanged when every step succeeds.
func (b *InvoiceBinder) compensate(ctx context.Context, cause error, steps ...func(context.Context) error) error {
	ctx = context.WithoutCancel(ctx)

	var failed *multierror.Error
	for _, step := range steps {
		if err := step(ctx); err != nil {
			failed = multierror.Append(failed, err)
		}
	}
	if failed == nil {
		return cause
	}
	b.log.Error().Err(failed).AnErr("cause", cause).Msg("invoice compensation incomplete")
	return multierror.Append(cause, failed.Errors...)
}

// nextInvoiceNumber is INV- followed by the highest numeric suffix plus one,
// zero-padded to three digits.
func nextInvoiceNumber(existing []*models.Invoice) string {
	highest := 0
	for _, inv := range existing {
		suffix, ok := strings.CutPrefix(inv.ID, invoicePrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", invoicePrefix, highest+1)
}

func diffIDs(before, after []string) (added, removed []string) {
	for _, id := range after {
		if !slices.Contains(before, id) {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if !slices.Contains(after, id) {
			removed = append(removed, id)
		}
	}
	return added, removed
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
