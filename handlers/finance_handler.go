package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"freightdesk/models"
	"freightdesk/service"
)

type PaymentHandler struct {
	Payments *service.PaymentService
}

type paymentRequest struct {
	ClientID string             `json:"client_id" binding:"required"`
	Date     models.Date        `json:"date"`
	Amount   decimal.Decimal    `json:"amount" binding:"gt=0"`
	Mode     models.PaymentMode `json:"mode" binding:"required,oneof=Cash Bank Other"`
	Notes    string             `json:"notes"`
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Payments.Record(c.Request.Context(), &models.Payment{
		ClientID: req.ClientID,
		Date:     req.Date,
		Amount:   req.Amount,
		Mode:     req.Mode,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, "Payment recorded", p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	fy, err := financialYearQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.Payments.List(c.Request.Context(), service.PaymentFilter{
		ClientID:      c.Query("client_id"),
		FinancialYear: fy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.Payments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", p)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.Payments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Payment deleted", nil)
}

type ExpenseHandler struct {
	Expenses *service.ExpenseService
}

type expenseRequest struct {
	Date          models.Date            `json:"date"`
	Category      models.ExpenseCategory `json:"category" binding:"required"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount" binding:"gt=0"`
	VehicleNumber string                 `json:"vehicle_number"`
}

func (r expenseRequest) model() *models.Expense {
	return &models.Expense{
		Date:          r.Date,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		VehicleNumber: r.VehicleNumber,
	}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Expenses.Create(c.Request.Context(), req.model())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, "Expense recorded", e)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	fy, err := financialYearQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.Expenses.List(c.Request.Context(), fy)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Expenses.Update(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Expense updated", e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.Expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Expense deleted", nil)
}

type ReportHandler struct {
	Reports *service.LedgerService
}

// Ledger needs client_id; fy defaults to the current financial year.
func (h *ReportHandler) Ledger(c *gin.Context) {
	ledger, err := h.Reports.Build(c.Request.Context(), c.Query("client_id"), c.Query("fy"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", ledger)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.Reports.Dashboard(c.Request.Context(), c.Query("fy"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", d)
}
