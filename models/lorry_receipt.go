package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingStatus string

const (
	BillingUnbilled BillingStatus = "Un-Billed"
	BillingBilled   BillingStatus = "Billed"
)

type LRStatus string

const (
	LRBooked     LRStatus = "Booked"
	LRDispatched LRStatus = "Dispatched"
	LRInTransit  LRStatus = "In Transit"
	LRDelivered  LRStatus = "Delivered"
	LRClosed     LRStatus = "Closed"
)

// FreightType says whether the freight was paid at booking or is due on delivery.
type FreightType string

const (
	FreightPaid FreightType = "Paid"
	FreightDue  FreightType = "Due"
)

func (t FreightType) Valid() bool {
	return t == FreightPaid || t == FreightDue
}

type TransitUpdate struct {
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type LorryReceipt struct {
	ID             string         `json:"id"`
	LRNumber       string         `json:"lr_number"`
	Date           Date           `json:"date"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	ConsignorID    string         `json:"consignor_id"`
	ConsigneeID    string         `json:"consignee_id"`
	VehicleNumber  string         `json:"vehicle_number,omitempty"`
	DriverName     string         `json:"driver_name,omitempty"`
	DriverPhone    string         `json:"driver_phone,omitempty"`
	Goods          []GoodsItem    `json:"goods"`
	Freight        FreightDetails `json:"freight"`
	GSTPayableBy   GSTPayer       `json:"gst_payable_by,omitempty"`
	EWayBillNumber string         `json:"eway_bill_number,omitempty"`
	Remarks        string         `json:"remarks,omitempty"`
	BillingStatus  BillingStatus  `json:"billing_status"`

	PaymentStatus    string      `json:"payment_status,omitempty"`
	FreightType      FreightType `json:"freight_type,omitempty"`
	TransportMode    string      `json:"transport_mode,omitempty"`
	DeliveryType     string      `json:"delivery_type,omitempty"`
	LoadingAddress   string      `json:"loading_address,omitempty"`
	DeliveryAddress  string      `json:"delivery_address,omitempty"`
	SealNumber       string      `json:"seal_number,omitempty"`
	Insured          bool        `json:"is_insured"`
	InsuranceDetails string      `json:"insurance_details,omitempty"`
	ReceiverComments string      `json:"receiver_comments,omitempty"`
	// HideFreightInPDF leaves the freight table off the printed copies.
	HideFreightInPDF bool `json:"hide_freight_in_pdf"`

	DemurrageAfterHours    int             `json:"demurrage_after_hours,omitempty"`
	DemurrageChargePerHour decimal.Decimal `json:"demurrage_charge_per_hour"`

	// operational tracking, only changed through the state machine
	Status          LRStatus        `json:"status"`
	BookingTime     time.Time       `json:"booking_time"`
	DispatchTime    *time.Time      `json:"dispatch_time,omitempty"`
	CurrentLocation string          `json:"current_location,omitempty"`
	TransitUpdates  []TransitUpdate `json:"transit_updates,omitempty"`
	ProofOfDelivery string          `json:"proof_of_delivery,omitempty"`
	DeliveryTime    *time.Time      `json:"delivery_time,omitempty"`
	ClosureTime     *time.Time      `json:"closure_time,omitempty"`

	PDFPath      string     `json:"pdf_path,omitempty"`
	PDFCreatedAt *time.Time `json:"pdf_created_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
