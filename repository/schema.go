package repository

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"freightdesk/models"
)

// Storage documents. Both backends persist these shapes: Mongo through the
// bson tags, Postgres as the JSONB doc column. Decimals are stored as strings
// and calendar dates as YYYY-MM-DD so no precision is lost in either store.

type goodsDocument struct {
	ID            string `bson:"id" json:"id"`
	ProductName   string `bson:"product_name" json:"product_name"`
	PackagingType string `bson:"packaging_type,omitempty" json:"packaging_type,omitempty"`
	HSNCode       string `bson:"hsn_code,omitempty" json:"hsn_code,omitempty"`
	Packages      int    `bson:"packages" json:"packages"`
	ActualWeight  string `bson:"actual_weight" json:"actual_weight"`
	ChargeWeight  string `bson:"charge_weight" json:"charge_weight"`
}

type freightDocument struct {
	BasicFreight  string `bson:"basic_freight" json:"basic_freight"`
	PackingCharge string `bson:"packing_charge" json:"packing_charge"`
	PickupCharge  string `bson:"pickup_charge" json:"pickup_charge"`
	ServiceCharge string `bson:"service_charge" json:"service_charge"`
	LoadingCharge string `bson:"loading_charge" json:"loading_charge"`
	CODDODCharge  string `bson:"cod_dod_charge" json:"cod_dod_charge"`
	HaltingCharge string `bson:"halting_charge" json:"halting_charge"`
	ExtraCharge   string `bson:"extra_charge" json:"extra_charge"`
	OtherCharges  string `bson:"other_charges" json:"other_charges"`
	SGSTPercent   string `bson:"sgst_percent" json:"sgst_percent"`
	CGSTPercent   string `bson:"cgst_percent" json:"cgst_percent"`
	AdvancePaid   string `bson:"advance_paid" json:"advance_paid"`
}

// bookingDocument holds the printed booking terms of an LR.
type bookingDocument struct {
	PaymentStatus          string `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	FreightType            string `bson:"freight_type,omitempty" json:"freight_type,omitempty"`
	TransportMode          string `bson:"transport_mode,omitempty" json:"transport_mode,omitempty"`
	DeliveryType           string `bson:"delivery_type,omitempty" json:"delivery_type,omitempty"`
	LoadingAddress         string `bson:"loading_address,omitempty" json:"loading_address,omitempty"`
	DeliveryAddress        string `bson:"delivery_address,omitempty" json:"delivery_address,omitempty"`
	SealNumber             string `bson:"seal_number,omitempty" json:"seal_number,omitempty"`
	Insured                bool   `bson:"is_insured" json:"is_insured"`
	InsuranceDetails       string `bson:"insurance_details,omitempty" json:"insurance_details,omitempty"`
	ReceiverComments       string `bson:"receiver_comments,omitempty" json:"receiver_comments,omitempty"`
	HideFreightInPDF       bool   `bson:"hide_freight_in_pdf" json:"hide_freight_in_pdf"`
	DemurrageAfterHours    int    `bson:"demurrage_after_hours" json:"demurrage_after_hours"`
	DemurrageChargePerHour string `bson:"demurrage_charge_per_hour" json:"demurrage_charge_per_hour"`
}

type transitDocument struct {
	Location  string    `bson:"location" json:"location"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type lrDocument struct {
	ID              string            `bson:"_id" json:"id"`
	LRNumber        string            `bson:"lr_number" json:"lr_number"`
	Seq             int64             `bson:"seq" json:"seq"`
	Date            string            `bson:"date" json:"date"`
	From            string            `bson:"from" json:"from"`
	To              string            `bson:"to" json:"to"`
	ConsignorID     string            `bson:"consignor_id" json:"consignor_id"`
	ConsigneeID     string            `bson:"consignee_id" json:"consignee_id"`
	VehicleNumber   string            `bson:"vehicle_number,omitempty" json:"vehicle_number,omitempty"`
	DriverName      string            `bson:"driver_name,omitempty" json:"driver_name,omitempty"`
	DriverPhone     string            `bson:"driver_phone,omitempty" json:"driver_phone,omitempty"`
	Goods           []goodsDocument   `bson:"goods" json:"goods"`
	Freight         freightDocument   `bson:"freight" json:"freight"`
	GSTPayableBy    string            `bson:"gst_payable_by,omitempty" json:"gst_payable_by,omitempty"`
	EWayBillNumber  string            `bson:"eway_bill_number,omitempty" json:"eway_bill_number,omitempty"`
	Remarks         string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	BillingStatus   string            `bson:"billing_status" json:"billing_status"`
	Booking         bookingDocument   `bson:"booking" json:"booking"`
	Status          string            `bson:"status" json:"status"`
	BookingTime     time.Time         `bson:"booking_time" json:"booking_time"`
	DispatchTime    *time.Time        `bson:"dispatch_time,omitempty" json:"dispatch_time,omitempty"`
	CurrentLocation string            `bson:"current_location,omitempty" json:"current_location,omitempty"`
	TransitUpdates  []transitDocument `bson:"transit_updates,omitempty" json:"transit_updates,omitempty"`
	ProofOfDelivery string            `bson:"proof_of_delivery,omitempty" json:"proof_of_delivery,omitempty"`
	DeliveryTime    *time.Time        `bson:"delivery_time,omitempty" json:"delivery_time,omitempty"`
	ClosureTime     *time.Time        `bson:"closure_time,omitempty" json:"closure_time,omitempty"`
	PDFPath         string            `bson:"pdf_path,omitempty" json:"pdf_path,omitempty"`
	PDFCreatedAt    *time.Time        `bson:"pdf_created_at,omitempty" json:"pdf_created_at,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       *time.Time        `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type lineDocument struct {
	ID              string `bson:"id" json:"id"`
	LRID            string `bson:"lr_id,omitempty" json:"lr_id,omitempty"`
	LRNumber        string `bson:"lr_number" json:"lr_number"`
	Date            string `bson:"date" json:"date"`
	TruckNumber     string `bson:"truck_number" json:"truck_number"`
	From            string `bson:"from" json:"from"`
	To              string `bson:"to" json:"to"`
	MaterialDetails string `bson:"material_details" json:"material_details"`
	Articles        int    `bson:"articles" json:"articles"`
	TotalWeight     string `bson:"total_weight" json:"total_weight"`
	FreightAmount   string `bson:"freight_amount" json:"freight_amount"`
	HaltingCharge   string `bson:"halting_charge" json:"halting_charge"`
	ExtraCharge     string `bson:"extra_charge" json:"extra_charge"`
	Advance         string `bson:"advance" json:"advance"`
}

type bankDocument struct {
	AccountHolderName string `bson:"account_holder_name" json:"account_holder_name"`
	BankName          string `bson:"bank_name" json:"bank_name"`
	AccountNumber     string `bson:"account_number" json:"account_number"`
	IFSCCode          string `bson:"ifsc_code" json:"ifsc_code"`
}

type invoiceDocument struct {
	ID                 string         `bson:"_id" json:"id"`
	Seq                int64          `bson:"seq" json:"seq"`
	Date               string         `bson:"date" json:"date"`
	ClientID           string         `bson:"client_id" json:"client_id"`
	LRIDs              []string       `bson:"lr_ids" json:"lr_ids"`
	Lines              []lineDocument `bson:"lr_details" json:"lr_details"`
	Discount           string         `bson:"discount" json:"discount"`
	GSTRate            string         `bson:"gst_rate" json:"gst_rate"`
	TDSRate            string         `bson:"tds_rate" json:"tds_rate"`
	TDSAmount          string         `bson:"tds_amount" json:"tds_amount"`
	AdvanceReceived    string         `bson:"advance_received" json:"advance_received"`
	AdvanceReceivedVia string         `bson:"advance_received_via" json:"advance_received_via"`
	RoundOff           string         `bson:"round_off" json:"round_off"`
	HSNCode            string         `bson:"hsn_code" json:"hsn_code"`
	Remarks            string         `bson:"remarks,omitempty" json:"remarks,omitempty"`
	BankDetails        *bankDocument  `bson:"bank_details,omitempty" json:"bank_details,omitempty"`
	GSTPayableBy       string         `bson:"gst_payable_by" json:"gst_payable_by"`
	SubTotal           string         `bson:"sub_total" json:"sub_total"`
	TotalTripAmount    string         `bson:"total_trip_amount" json:"total_trip_amount"`
	TDSDeduction       string         `bson:"tds_deduction" json:"tds_deduction"`
	GSTAmount          string         `bson:"gst_amount" json:"gst_amount"`
	InvoiceValue       string         `bson:"invoice_value" json:"invoice_value"`
	NetPayable         string         `bson:"net_payable" json:"net_payable"`
	Status             string         `bson:"status" json:"status"`
	CreatedAt          time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt          *time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type clientDocument struct {
	ID            string     `bson:"_id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	ContactPerson string     `bson:"contact_person" json:"contact_person"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string     `bson:"email,omitempty" json:"email,omitempty"`
	GSTIN         string     `bson:"gstin" json:"gstin"`
	Address       string     `bson:"address" json:"address"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type paymentDocument struct {
	ID        string    `bson:"_id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	ClientID  string    `bson:"client_id" json:"client_id"`
	Amount    string    `bson:"amount" json:"amount"`
	Mode      string    `bson:"mode" json:"mode"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type expenseDocument struct {
	ID            string     `bson:"_id" json:"id"`
	Date          string     `bson:"date" json:"date"`
	Category      string     `bson:"category" json:"category"`
	Description   string     `bson:"description" json:"description"`
	Amount        string     `bson:"amount" json:"amount"`
	VehicleNumber string     `bson:"vehicle_number,omitempty" json:"vehicle_number,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type profileDocument struct {
	ID          string           `bson:"_id" json:"id"`
	CompanyName string           `bson:"company_name" json:"company_name"`
	Address     string           `bson:"address" json:"address"`
	City        string           `bson:"city" json:"city"`
	State       string           `bson:"state" json:"state"`
	Pincode     string           `bson:"pincode" json:"pincode"`
	GSTIN       string           `bson:"gstin" json:"gstin"`
	Footnote    string           `bson:"footnote" json:"footnote"`
	Mobile      []mobileDocument `bson:"mobile" json:"mobile"`
	BankDetails *bankDocument    `bson:"bank_details,omitempty" json:"bank_details,omitempty"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}

type mobileDocument struct {
	Number string `bson:"number" json:"number"`
	Label  string `bson:"label" json:"label"`
}

const profileID = "company"

// decoder collects the first parse failure while a document is mapped back.
type decoder struct {
	err error
}

func (d *decoder) dec(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil && d.err == nil {
		d.err = err
	}
	return v
}

func (d *decoder) date(s string) models.Date {
	if s == "" {
		return models.Date{}
	}
	v, err := models.ParseDate(s)
	if err != nil && d.err == nil {
		d.err = err
	}
	return v
}

// numberSeq extracts the numeric part used to order LR and invoice numbers.
func numberSeq(s, prefix string) int64 {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return 0
	}
	n, err := strconv.ParseInt(s[len(prefix):], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func toLRDocument(lr *models.LorryReceipt) *lrDocument {
	doc := &lrDocument{
		ID:              lr.ID,
		LRNumber:        lr.LRNumber,
		Seq:             numberSeq(lr.LRNumber, ""),
		Date:            lr.Date.String(),
		From:            lr.From,
		To:              lr.To,
		ConsignorID:     lr.ConsignorID,
		ConsigneeID:     lr.ConsigneeID,
		VehicleNumber:   lr.VehicleNumber,
		DriverName:      lr.DriverName,
		DriverPhone:     lr.DriverPhone,
		Goods:           make([]goodsDocument, 0, len(lr.Goods)),
		GSTPayableBy:    string(lr.GSTPayableBy),
		EWayBillNumber:  lr.EWayBillNumber,
		Remarks:         lr.Remarks,
		BillingStatus:   string(lr.BillingStatus),
		Booking: bookingDocument{
			PaymentStatus:          lr.PaymentStatus,
			FreightType:            string(lr.FreightType),
			TransportMode:          lr.TransportMode,
			DeliveryType:           lr.DeliveryType,
			LoadingAddress:         lr.LoadingAddress,
			DeliveryAddress:        lr.DeliveryAddress,
			SealNumber:             lr.SealNumber,
			Insured:                lr.Insured,
			InsuranceDetails:       lr.InsuranceDetails,
			ReceiverComments:       lr.ReceiverComments,
			HideFreightInPDF:       lr.HideFreightInPDF,
			DemurrageAfterHours:    lr.DemurrageAfterHours,
			DemurrageChargePerHour: lr.DemurrageChargePerHour.String(),
		},
		Status:          string(lr.Status),
		BookingTime:     lr.BookingTime,
		DispatchTime:    lr.DispatchTime,
		CurrentLocation: lr.CurrentLocation,
		ProofOfDelivery: lr.ProofOfDelivery,
		DeliveryTime:    lr.DeliveryTime,
		ClosureTime:     lr.ClosureTime,
		PDFPath:         lr.PDFPath,
		PDFCreatedAt:    lr.PDFCreatedAt,
		CreatedAt:       lr.CreatedAt,
		UpdatedAt:       lr.UpdatedAt,
		Freight: freightDocument{
			BasicFreight:  lr.Freight.BasicFreight.String(),
			PackingCharge: lr.Freight.PackingCharge.String(),
			PickupCharge:  lr.Freight.PickupCharge.String(),
			ServiceCharge: lr.Freight.ServiceCharge.String(),
			LoadingCharge: lr.Freight.LoadingCharge.String(),
			CODDODCharge:  lr.Freight.CODDODCharge.String(),
			HaltingCharge: lr.Freight.HaltingCharge.String(),
			ExtraCharge:   lr.Freight.ExtraCharge.String(),
			OtherCharges:  lr.Freight.OtherCharges.String(),
			SGSTPercent:   lr.Freight.SGSTPercent.String(),
			CGSTPercent:   lr.Freight.CGSTPercent.String(),
			AdvancePaid:   lr.Freight.AdvancePaid.String(),
		},
	}
	for _, g := range lr.Goods {
		doc.Goods = append(doc.Goods, goodsDocument{
			ID:            g.ID,
			ProductName:   g.ProductName,
			PackagingType: g.PackagingType,
			HSNCode:       g.HSNCode,
			Packages:      g.Packages,
			ActualWeight:  g.ActualWeight.String(),
			ChargeWeight:  g.ChargeWeight.String(),
		})
	}
	for _, u := range lr.TransitUpdates {
		doc.TransitUpdates = append(doc.TransitUpdates, transitDocument{Location: u.Location, Timestamp: u.Timestamp})
	}
	return doc
}

func (doc *lrDocument) model() (*models.LorryReceipt, error) {
	var d decoder
	lr := &models.LorryReceipt{
		ID:              doc.ID,
		LRNumber:        doc.LRNumber,
		Date:            d.date(doc.Date),
		From:            doc.From,
		To:              doc.To,
		ConsignorID:     doc.ConsignorID,
		ConsigneeID:     doc.ConsigneeID,
		VehicleNumber:   doc.VehicleNumber,
		DriverName:      doc.DriverName,
		DriverPhone:     doc.DriverPhone,
		Goods:           make([]models.GoodsItem, 0, len(doc.Goods)),
		GSTPayableBy:    models.GSTPayer(doc.GSTPayableBy),
		EWayBillNumber:  doc.EWayBillNumber,
		Remarks:         doc.Remarks,
		BillingStatus:   models.BillingStatus(doc.BillingStatus),
		PaymentStatus:    doc.Booking.PaymentStatus,
		FreightType:      models.FreightType(doc.Booking.FreightType),
		TransportMode:    doc.Booking.TransportMode,
		DeliveryType:     doc.Booking.DeliveryType,
		LoadingAddress:   doc.Booking.LoadingAddress,
		DeliveryAddress:  doc.Booking.DeliveryAddress,
		SealNumber:       doc.Booking.SealNumber,
		Insured:          doc.Booking.Insured,
		InsuranceDetails: doc.Booking.InsuranceDetails,
		ReceiverComments: doc.Booking.ReceiverComments,
		HideFreightInPDF: doc.Booking.HideFreightInPDF,

		DemurrageAfterHours:    doc.Booking.DemurrageAfterHours,
		DemurrageChargePerHour: d.dec(doc.Booking.DemurrageChargePerHour),

		Status:          models.LRStatus(doc.Status),
		BookingTime:     doc.BookingTime,
		DispatchTime:    doc.DispatchTime,
		CurrentLocation: doc.CurrentLocation,
		ProofOfDelivery: doc.ProofOfDelivery,
		DeliveryTime:    doc.DeliveryTime,
		ClosureTime:     doc.ClosureTime,
		PDFPath:         doc.PDFPath,
		PDFCreatedAt:    doc.PDFCreatedAt,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
		Freight: models.FreightDetails{
			BasicFreight:  d.dec(doc.Freight.BasicFreight),
			PackingCharge: d.dec(doc.Freight.PackingCharge),
			PickupCharge:  d.dec(doc.Freight.PickupCharge),
			ServiceCharge: d.dec(doc.Freight.ServiceCharge),
			LoadingCharge: d.dec(doc.Freight.LoadingCharge),
			CODDODCharge:  d.dec(doc.Freight.CODDODCharge),
			HaltingCharge: d.dec(doc.Freight.HaltingCharge),
			ExtraCharge:   d.dec(doc.Freight.ExtraCharge),
			OtherCharges:  d.dec(doc.Freight.OtherCharges),
			SGSTPercent:   d.dec(doc.Freight.SGSTPercent),
			CGSTPercent:   d.dec(doc.Freight.CGSTPercent),
			AdvancePaid:   d.dec(doc.Freight.AdvancePaid),
		},
	}
	for _, g := range doc.Goods {
		lr.Goods = append(lr.Goods, models.GoodsItem{
			ID:            g.ID,
			ProductName:   g.ProductName,
			PackagingType: g.PackagingType,
			HSNCode:       g.HSNCode,
			Packages:      g.Packages,
			ActualWeight:  d.dec(g.ActualWeight),
			ChargeWeight:  d.dec(g.ChargeWeight),
		})
	}
	for _, u := range doc.TransitUpdates {
		lr.TransitUpdates = append(lr.TransitUpdates, models.TransitUpdate{Location: u.Location, Timestamp: u.Timestamp})
	}
	if d.err != nil {
		return nil, d.err
	}
	return lr, nil
}

func toBankDocument(b *models.BankDetails) *bankDocument {
	if b == nil {
		return nil
	}
	return &bankDocument{
		AccountHolderName: b.AccountHolderName,
		BankName:          b.BankName,
		AccountNumber:     b.AccountNumber,
		IFSCCode:          b.IFSCCode,
	}
}

func (b *bankDocument) model() *models.BankDetails {
	if b == nil {
		return nil
	}
	return &models.BankDetails{
		AccountHolderName: b.AccountHolderName,
		BankName:          b.BankName,
		AccountNumber:     b.AccountNumber,
		IFSCCode:          b.IFSCCode,
	}
}

const invoicePrefix = "INV-"

func toInvoiceDocument(inv *models.Invoice) *invoiceDocument {
	doc := &invoiceDocument{
		ID:                 inv.ID,
		Seq:                numberSeq(inv.ID, invoicePrefix),
		Date:               inv.Date.String(),
		ClientID:           inv.ClientID,
		LRIDs:              inv.LRIDs(),
		Lines:              make([]lineDocument, 0, len(inv.LrDetails)),
		Discount:           inv.Discount.String(),
		GSTRate:            inv.GSTRate.String(),
		TDSRate:            inv.TDSRate.String(),
		TDSAmount:          inv.TDSAmount.String(),
		AdvanceReceived:    inv.AdvanceReceived.String(),
		AdvanceReceivedVia: string(inv.AdvanceReceivedVia),
		RoundOff:           inv.RoundOff.String(),
		HSNCode:            inv.HSNCode,
		Remarks:            inv.Remarks,
		BankDetails:        toBankDocument(inv.BankDetails),
		GSTPayableBy:       string(inv.GSTPayableBy),
		SubTotal:           inv.SubTotal.String(),
		TotalTripAmount:    inv.TotalTripAmount.String(),
		TDSDeduction:       inv.TDSDeduction.String(),
		GSTAmount:          inv.GSTAmount.String(),
		InvoiceValue:       inv.InvoiceValue.String(),
		NetPayable:         inv.NetPayable.String(),
		Status:             string(inv.Status),
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
	for _, l := range inv.LrDetails {
		doc.Lines = append(doc.Lines, lineDocument{
			ID:              l.ID,
			LRID:            l.LRID,
			LRNumber:        l.LRNumber,
			Date:            l.Date.String(),
			TruckNumber:     l.TruckNumber,
			From:            l.From,
			To:              l.To,
			MaterialDetails: l.MaterialDetails,
			Articles:        l.Articles,
			TotalWeight:     l.TotalWeight.String(),
			FreightAmount:   l.FreightAmount.String(),
			HaltingCharge:   l.HaltingCharge.String(),
			ExtraCharge:     l.ExtraCharge.String(),
			Advance:         l.Advance.String(),
		})
	}
	return doc
}

func (doc *invoiceDocument) model() (*models.Invoice, error) {
	var d decoder
	inv := &models.Invoice{
		ID:                 doc.ID,
		Date:               d.date(doc.Date),
		ClientID:           doc.ClientID,
		LrDetails:          make([]models.LrDetail, 0, len(doc.Lines)),
		Discount:           d.dec(doc.Discount),
		GSTRate:            d.dec(doc.GSTRate),
		TDSRate:            d.dec(doc.TDSRate),
		TDSAmount:          d.dec(doc.TDSAmount),
		AdvanceReceived:    d.dec(doc.AdvanceReceived),
		AdvanceReceivedVia: models.PaymentMode(doc.AdvanceReceivedVia),
		RoundOff:           d.dec(doc.RoundOff),
		HSNCode:            doc.HSNCode,
		Remarks:            doc.Remarks,
		BankDetails:        doc.BankDetails.model(),
		GSTPayableBy:       models.GSTPayer(doc.GSTPayableBy),
		SubTotal:           d.dec(doc.SubTotal),
		TotalTripAmount:    d.dec(doc.TotalTripAmount),
		TDSDeduction:       d.dec(doc.TDSDeduction),
		GSTAmount:          d.dec(doc.GSTAmount),
		InvoiceValue:       d.dec(doc.InvoiceValue),
		NetPayable:         d.dec(doc.NetPayable),
		Status:             models.PaymentStatus(doc.Status),
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
	for _, l := range doc.Lines {
		inv.LrDetails = append(inv.LrDetails, models.LrDetail{
			ID:              l.ID,
			LRID:            l.LRID,
			LRNumber:        l.LRNumber,
			Date:            d.date(l.Date),
			TruckNumber:     l.TruckNumber,
			From:            l.From,
			To:              l.To,
			MaterialDetails: l.MaterialDetails,
			Articles:        l.Articles,
			TotalWeight:     d.dec(l.TotalWeight),
			FreightAmount:   d.dec(l.FreightAmount),
			HaltingCharge:   d.dec(l.HaltingCharge),
			ExtraCharge:     d.dec(l.ExtraCharge),
			Advance:         d.dec(l.Advance),
		})
	}
	if d.err != nil {
		return nil, d.err
	}
	return inv, nil
}

func toClientDocument(c *models.Client) *clientDocument {
	return &clientDocument{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		GSTIN:         c.GSTIN,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (doc *clientDocument) model() (*models.Client, error) {
	return &models.Client{
		ID:            doc.ID,
		Name:          doc.Name,
		ContactPerson: doc.ContactPerson,
		Phone:         doc.Phone,
		Email:         doc.Email,
		GSTIN:         doc.GSTIN,
		Address:       doc.Address,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

func toPaymentDocument(p *models.Payment) *paymentDocument {
	return &paymentDocument{
		ID:        p.ID,
		Date:      p.Date.String(),
		ClientID:  p.ClientID,
		Amount:    p.Amount.String(),
		Mode:      string(p.Mode),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

func (doc *paymentDocument) model() (*models.Payment, error) {
	var d decoder
	p := &models.Payment{
		ID:        doc.ID,
		Date:      d.date(doc.Date),
		ClientID:  doc.ClientID,
		Amount:    d.dec(doc.Amount),
		Mode:      models.PaymentMode(doc.Mode),
		Notes:     doc.Notes,
		CreatedAt: doc.CreatedAt,
	}
	return p, d.err
}

func toExpenseDocument(e *models.Expense) *expenseDocument {
	return &expenseDocument{
		ID:            e.ID,
		Date:          e.Date.String(),
		Category:      string(e.Category),
		Description:   e.Description,
		Amount:        e.Amount.String(),
		VehicleNumber: e.VehicleNumber,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (doc *expenseDocument) model() (*models.Expense, error) {
	var d decoder
	e := &models.Expense{
		ID:            doc.ID,
		Date:          d.date(doc.Date),
		Category:      models.ExpenseCategory(doc.Category),
		Description:   doc.Description,
		Amount:        d.dec(doc.Amount),
		VehicleNumber: doc.VehicleNumber,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	return e, d.err
}

func toProfileDocument(p *models.CompanyProfile) *profileDocument {
	doc := &profileDocument{
		ID:          profileID,
		CompanyName: p.CompanyName,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Pincode:     p.Pincode,
		GSTIN:       p.GSTIN,
		Footnote:    p.Footnote,
		BankDetails: toBankDocument(p.BankDetails),
		UpdatedAt:   p.UpdatedAt,
	}
	for _, m := range p.Mobile {
		doc.Mobile = append(doc.Mobile, mobileDocument{Number: m.Number, Label: m.Label})
	}
	return doc
}

func (doc *profileDocument) model() (*models.CompanyProfile, error) {
	p := &models.CompanyProfile{
		CompanyName: doc.CompanyName,
		Address:     doc.Address,
		City:        doc.City,
		State:       doc.State,
		Pincode:     doc.Pincode,
		GSTIN:       doc.GSTIN,
		Footnote:    doc.Footnote,
		BankDetails: doc.BankDetails.model(),
		UpdatedAt:   doc.UpdatedAt,
	}
	for _, m := range doc.Mobile {
		p.Mobile = append(p.Mobile, models.MobileEntry{Number: m.Number, Label: m.Label})
	}
	return p, nil
}
