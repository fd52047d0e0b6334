package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
)

func TestLRDocumentRoundTrip(t *testing.T) {
	dispatched := time.Date(2025, 8, 21, 6, 30, 0, 0, time.UTC)
	lr := &models.LorryReceipt{
		ID:          "lr-1",
		LRNumber:    "42",
		Date:        models.NewDate(2025, 8, 20),
		From:        "Chennai",
		To:          "Bengaluru",
		ConsignorID: "c1",
		ConsigneeID: "c2",
		Goods: []models.GoodsItem{
			{ID: "g1", ProductName: "Steel Rods", Packages: 10, ChargeWeight: decimal.RequireFromString("1200.50")},
		},
		Freight: models.FreightDetails{
			BasicFreight: decimal.RequireFromString("10000.10"),
			SGSTPercent:  decimal.RequireFromString("2.5"),
		},
		BillingStatus:          models.BillingBilled,
		FreightType:            models.FreightDue,
		SealNumber:             "SL-5521",
		Insured:                true,
		HideFreightInPDF:       true,
		DemurrageAfterHours:    24,
		DemurrageChargePerHour: decimal.RequireFromString("150.50"),
		Status:                 models.LRInTransit,
		DispatchTime:           &dispatched,
		TransitUpdates:         []models.TransitUpdate{{Location: "Vellore", Timestamp: dispatched}},
	}

	doc := toLRDocument(lr)
	assert.EqualValues(t, 42, doc.Seq)

	// Postgres stores the document as JSONB
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var back lrDocument
	require.NoError(t, json.Unmarshal(raw, &back))

	got, err := back.model()
	require.NoError(t, err)
	assert.Equal(t, "g1", got.Goods[0].ID)
	assert.Equal(t, "1200.5", got.Goods[0].ChargeWeight.String())
	assert.True(t, lr.Freight.BasicFreight.Equal(got.Freight.BasicFreight))
	assert.True(t, got.Freight.HaltingCharge.IsZero())
	assert.Equal(t, lr.Date, got.Date)
	assert.Equal(t, models.LRInTransit, got.Status)
	require.Len(t, got.TransitUpdates, 1)
	assert.Equal(t, "Vellore", got.TransitUpdates[0].Location)
	assert.Equal(t, models.FreightDue, got.FreightType)
	assert.Equal(t, "SL-5521", got.SealNumber)
	assert.True(t, got.Insured)
	assert.True(t, got.HideFreightInPDF)
	assert.Equal(t, 24, got.DemurrageAfterHours)
	assert.Equal(t, "150.5", got.DemurrageChargePerHour.String())
}

func TestInvoiceDocumentRoundTrip(t *testing.T) {
	inv := &models.Invoice{
		ID:       "INV-012",
		Date:     models.NewDate(2025, 8, 26),
		ClientID: "c1",
		LrDetails: []models.LrDetail{
			{ID: "l1", LRID: "lr-1", LRNumber: "42", FreightAmount: decimal.RequireFromString("51500")},
			{ID: "l2", LRNumber: "manual", FreightAmount: decimal.RequireFromString("-500")},
		},
		GSTRate:      decimal.RequireFromString("5"),
		InvoiceValue: decimal.RequireFromString("54075.00"),
		BankDetails:  &models.BankDetails{BankName: "SBI", IFSCCode: "SBIN0000001"},
		Status:       models.PaymentPending,
	}

	doc := toInvoiceDocument(inv)
	assert.EqualValues(t, 12, doc.Seq)
	assert.Equal(t, []string{"lr-1"}, doc.LRIDs)

	got, err := doc.model()
	require.NoError(t, err)
	assert.Equal(t, inv.LRIDs(), got.LRIDs())
	assert.Equal(t, "-500", got.LrDetails[1].FreightAmount.String())
	assert.True(t, inv.InvoiceValue.Equal(got.InvoiceValue))
	assert.Equal(t, inv.BankDetails, got.BankDetails)
}

func TestDocumentModelRejectsCorruptValues(t *testing.T) {
	_, err := (&invoiceDocument{ID: "INV-001", Date: "2025-08-26", InvoiceValue: "12,00"}).model()
	assert.Error(t, err)

	_, err = (&lrDocument{ID: "lr-1", Date: "26/08/2025"}).model()
	assert.Error(t, err)
}

func TestNumberSeq(t *testing.T) {
	assert.EqualValues(t, 7, numberSeq("INV-007", invoicePrefix))
	assert.EqualValues(t, 0, numberSeq("INV-X", invoicePrefix))
	assert.EqualValues(t, 0, numberSeq("7", invoicePrefix))
	assert.EqualValues(t, 1001, numberSeq("1001", ""))
}
