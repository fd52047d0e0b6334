package models

import "github.com/shopspring/decimal"

type GoodsItem struct {
	ID            string          `json:"id,omitempty"`
	ProductName   string          `json:"product_name"`
	PackagingType string          `json:"packaging_type,omitempty"`
	HSNCode       string          `json:"hsn_code,omitempty"`
	Packages      int             `json:"packages"`
	ActualWeight  decimal.Decimal `json:"actual_weight"`
	ChargeWeight  decimal.Decimal `json:"charge_weight"`
}

// FreightDetails holds the charges quoted on an LR. Absent amounts are zero.
type FreightDetails struct {
	BasicFreight  decimal.Decimal `json:"basic_freight"`
	PackingCharge decimal.Decimal `json:"packing_charge"`
	PickupCharge  decimal.Decimal `json:"pickup_charge"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	LoadingCharge decimal.Decimal `json:"loading_charge"`
	CODDODCharge  decimal.Decimal `json:"cod_dod_charge"`
	HaltingCharge decimal.Decimal `json:"halting_charge"`
	ExtraCharge   decimal.Decimal `json:"extra_charge"`
	OtherCharges  decimal.Decimal `json:"other_charges"`
	SGSTPercent   decimal.Decimal `json:"sgst_percent"`
	CGSTPercent   decimal.Decimal `json:"cgst_percent"`
	AdvancePaid   decimal.Decimal `json:"advance_paid"`
}

// FreightBreakdown is the derived view of FreightDetails.
type FreightBreakdown struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	SGST             decimal.Decimal `json:"sgst"`
	CGST             decimal.Decimal `json:"cgst"`
	TotalFreight     decimal.Decimal `json:"total_freight"`
	AdvancePaid      decimal.Decimal `json:"advance_paid"`
	RemainingPayable decimal.Decimal `json:"remaining_payable"`
}
