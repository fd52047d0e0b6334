package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"freightdesk/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeInvoiceAmountsWorkedExample(t *testing.T) {
	lines := []models.LrDetail{{FreightAmount: d("50000"), HaltingCharge: d("1000"), ExtraCharge: d("500")}}
	trip := TripTotal(lines)
	assertDecimal(t, "51500", trip)

	got := ComputeInvoiceAmounts(trip, Rates{
		GSTRate:         d("5"),
		TDSRate:         d("2"),
		AdvanceReceived: d("10000"),
	})

	assertDecimal(t, "51500", got.AmountAfterDiscount)
	assertDecimal(t, "1030", got.TDS)
	assertDecimal(t, "2575", got.GST)
	assertDecimal(t, "54075", got.InvoiceValue)
	assertDecimal(t, "43045", got.NetPayable)
}

func TestComputeInvoiceAmountsAllZero(t *testing.T) {
	got := ComputeInvoiceAmounts(decimal.Zero, Rates{})

	for _, v := range []decimal.Decimal{got.AmountAfterDiscount, got.TDS, got.GST, got.InvoiceValue, got.NetPayable} {
		assert.True(t, v.IsZero())
	}
}

func TestTDSOverrideOnlyWithoutRate(t *testing.T) {
	override := ComputeInvoiceAmounts(d("1000"), Rates{TDSAmount: d("75")})
	assertDecimal(t, "75", override.TDS)

	rated := ComputeInvoiceAmounts(d("1000"), Rates{TDSRate: d("1"), TDSAmount: d("75")})
	assertDecimal(t, "10", rated.TDS)
}

func TestDiscountLowersInvoiceValueProportionally(t *testing.T) {
	trip := d("51500")
	rates := Rates{GSTRate: d("18")}
	base := ComputeInvoiceAmounts(trip, rates)

	for _, delta := range []string{"0.01", "1", "250.5", "51500"} {
		rates.Discount = d(delta)
		got := ComputeInvoiceAmounts(trip, rates)

		drop := base.InvoiceValue.Sub(got.InvoiceValue)
		want := d(delta).Mul(d("1.18"))
		assert.True(t, want.Equal(drop), "discount %s: drop %s, want %s", delta, drop, want)
	}
}

func TestNegativeLinesPropagate(t *testing.T) {
	lines := []models.LrDetail{
		{FreightAmount: d("1000")},
		{FreightAmount: d("-200"), ExtraCharge: d("-50")},
	}
	assertDecimal(t, "750", TripTotal(lines))
}

func TestAdvanceTotal(t *testing.T) {
	lines := []models.LrDetail{{Advance: d("500")}, {}, {Advance: d("250.25")}}
	assertDecimal(t, "750.25", AdvanceTotal(lines))
}

func TestComputeFreightBreakdown(t *testing.T) {
	got := ComputeFreightBreakdown(models.FreightDetails{
		BasicFreight:  d("10000"),
		PackingCharge: d("200"),
		PickupCharge:  d("300"),
		ServiceCharge: d("100"),
		LoadingCharge: d("250"),
		CODDODCharge:  d("50"),
		OtherCharges:  d("100"),
		HaltingCharge: d("999"), // not part of the LR freight subtotal
		SGSTPercent:   d("2.5"),
		CGSTPercent:   d("2.5"),
		AdvancePaid:   d("5000"),
	})

	assertDecimal(t, "11000", got.Subtotal)
	assertDecimal(t, "275", got.SGST)
	assertDecimal(t, "275", got.CGST)
	assertDecimal(t, "11550", got.TotalFreight)
	assertDecimal(t, "6550", got.RemainingPayable)
}

func TestRoundForDisplay(t *testing.T) {
	assertDecimal(t, "10.13", RoundForDisplay(d("10.125")))
	assertDecimal(t, "-10.13", RoundForDisplay(d("-10.125")))
	assertDecimal(t, "3", RoundForDisplay(d("3")))
}
