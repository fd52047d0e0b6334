package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"freightdesk/models"
	"freightdesk/service"
)

type InvoiceHandler struct {
	Binder *service.InvoiceBinder
}

type invoiceRatesRequest struct {
	Discount        decimal.Decimal  `json:"discount" binding:"gte=0"`
	GSTRate         decimal.Decimal  `json:"gst_rate" binding:"gte=0,lte=100"`
	TDSRate         decimal.Decimal  `json:"tds_rate" binding:"gte=0,lte=100"`
	TDSAmount       decimal.Decimal  `json:"tds_amount" binding:"gte=0"`
	AdvanceReceived *decimal.Decimal `json:"advance_received"`
	RoundOff        decimal.Decimal  `json:"round_off"`
}

type invoiceRequest struct {
	ClientID           string              `json:"client_id"`
	LRIDs              []string            `json:"lr_ids"`
	Lines              []models.LrDetail   `json:"lines"`
	Rates              invoiceRatesRequest `json:"rates"`
	Date               models.Date         `json:"date"`
	AdvanceReceivedVia models.PaymentMode  `json:"advance_received_via"`
	HSNCode            string              `json:"hsn_code"`
	Remarks            string              `json:"remarks"`
	GSTPayableBy       models.GSTPayer     `json:"gst_payable_by"`
	BankDetails        *models.BankDetails `json:"bank_details"`
}

func (r invoiceRequest) service() service.InvoiceRequest {
	req := service.InvoiceRequest{
		ClientID: r.ClientID,
		LRIDs:    r.LRIDs,
		Lines:    r.Lines,
		Rates: service.InvoiceRates{
			Discount:  r.Rates.Discount,
			GSTRate:   r.Rates.GSTRate,
			TDSRate:   r.Rates.TDSRate,
			TDSAmount: r.Rates.TDSAmount,
			RoundOff:  r.Rates.RoundOff,
		},
		Date:               r.Date,
		AdvanceReceivedVia: r.AdvanceReceivedVia,
		HSNCode:            r.HSNCode,
		Remarks:            r.Remarks,
		GSTPayableBy:       r.GSTPayableBy,
		BankDetails:        r.BankDetails,
	}
	if r.Rates.AdvanceReceived != nil {
		adv := *r.Rates.AdvanceReceived
		req.Rates.AdvanceReceived = &adv
	}
	return req
}

func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req invoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Binder.Generate(c.Request.Context(), req.service())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, "Invoice generated", res)
}

// List accepts client_id and fy.
func (h *InvoiceHandler) List(c *gin.Context) {
	fy, err := financialYearQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.Binder.List(c.Request.Context(), service.InvoiceListFilter{
		ClientID:      c.Query("client_id"),
		FinancialYear: fy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.Binder.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", inv)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var req invoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Binder.Update(c.Request.Context(), c.Param("id"), req.service())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Invoice updated", res)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	released, err := h.Binder.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Invoice deleted", gin.H{"updated_lrs": nonNil(released)})
}

type statusRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required,oneof=Pending Paid Overdue"`
}

func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.Binder.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Invoice marked "+string(inv.Status), inv)
}
