// Package money holds the invoice and freight arithmetic. Every function is
// pure and works on exact decimals; rounding happens only for display.
package money

import (
	"github.com/shopspring/decimal"

	"freightdesk/models"
)

var hundred = decimal.NewFromInt(100)

// Rates are the invoice-level adjustments applied on top of the trip total.
type Rates struct {
	Discount        decimal.Decimal
	GSTRate         decimal.Decimal
	TDSRate         decimal.Decimal
	TDSAmount       decimal.Decimal // used only when TDSRate is zero
	AdvanceReceived decimal.Decimal
	RoundOff        decimal.Decimal
}

// InvoiceAmounts are the figures derived from a trip total and its rates.
type InvoiceAmounts struct {
	AmountAfterDiscount decimal.Decimal
	TDS                 decimal.Decimal
	GST                 decimal.Decimal
	InvoiceValue        decimal.Decimal
	NetPayable          decimal.Decimal
}

// TripTotal sums freight, halting and extra charges over all lines.
// Negative amounts are kept as credit adjustments.
func TripTotal(lines []models.LrDetail) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.FreightAmount).Add(l.HaltingCharge).Add(l.ExtraCharge)
	}
	return total
}

// AdvanceTotal sums the advance already paid against each line.
func AdvanceTotal(lines []models.LrDetail) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Advance)
	}
	return total
}

// ComputeInvoiceAmounts applies discount, TDS, GST, advance and round-off to tripTotal.
func ComputeInvoiceAmounts(tripTotal decimal.Decimal, r Rates) InvoiceAmounts {
	amount := tripTotal.Sub(r.Discount)

	tds := r.TDSAmount
	if r.TDSRate.IsPositive() {
		tds = percentOf(amount, r.TDSRate)
	}
	gst := percentOf(amount, r.GSTRate)
	invoiceValue := amount.Add(gst)

	return InvoiceAmounts{
		AmountAfterDiscount: amount,
		TDS:                 tds,
		GST:                 gst,
		InvoiceValue:        invoiceValue,
		NetPayable:          invoiceValue.Sub(r.AdvanceReceived).Sub(tds).Add(r.RoundOff),
	}
}

// ComputeFreightBreakdown totals the itemised LR charges with SGST and CGST.
func ComputeFreightBreakdown(f models.FreightDetails) models.FreightBreakdown {
	subtotal := f.BasicFreight.
		Add(f.PackingCharge).
		Add(f.PickupCharge).
		Add(f.ServiceCharge).
		Add(f.LoadingCharge).
		Add(f.CODDODCharge).
		Add(f.OtherCharges)
	sgst := percentOf(subtotal, f.SGSTPercent)
	cgst := percentOf(subtotal, f.CGSTPercent)
	total := subtotal.Add(sgst).Add(cgst)

	return models.FreightBreakdown{
		Subtotal:         subtotal,
		SGST:             sgst,
		CGST:             cgst,
		TotalFreight:     total,
		AdvancePaid:      f.AdvancePaid,
		RemainingPayable: total.Sub(f.AdvancePaid),
	}
}

// RoundForDisplay rounds half away from zero to two places.
func RoundForDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return base.Mul(rate).Div(hundred)
}
