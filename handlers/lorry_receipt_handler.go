package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdesk/models"
	"freightdesk/money"
	"freightdesk/repository"
	"freightdesk/service"
)

type LorryReceiptHandler struct {
	Store *service.LorryReceiptStore
}

func (h *LorryReceiptHandler) Create(c *gin.Context) {
	var lr models.LorryReceipt
	if !bindJSON(c, &lr) {
		return
	}
	created, err := h.Store.Create(c.Request.Context(), &lr)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, "Lorry receipt created", created)
}

// List accepts client_id (either party), status, billing_status and fy.
func (h *LorryReceiptHandler) List(c *gin.Context) {
	fy, err := financialYearQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	filter := repository.LRFilter{
		PartyID:       c.Query("client_id"),
		Status:        models.LRStatus(c.Query("status")),
		BillingStatus: models.BillingStatus(c.Query("billing_status")),
	}
	list, err := h.Store.List(c.Request.Context(), filter, fy)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

// Unbilled lists LRs ready for invoicing, optionally for one consignor.
func (h *LorryReceiptHandler) Unbilled(c *gin.Context) {
	list, err := h.Store.FindUnbilled(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

func (h *LorryReceiptHandler) Get(c *gin.Context) {
	lr, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", lr)
}

func (h *LorryReceiptHandler) Update(c *gin.Context) {
	var lr models.LorryReceipt
	if !bindJSON(c, &lr) {
		return
	}
	updated, err := h.Store.Update(c.Request.Context(), c.Param("id"), &lr)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Lorry receipt updated", updated)
}

func (h *LorryReceiptHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Lorry receipt deleted", nil)
}

func (h *LorryReceiptHandler) Freight(c *gin.Context) {
	lr, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", money.ComputeFreightBreakdown(lr.Freight))
}

type dispatchRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	DriverName    string `json:"driver_name" binding:"required"`
}

type transitRequest struct {
	Location string `json:"location" binding:"required"`
}

type deliverRequest struct {
	ProofOfDelivery string `json:"proof_of_delivery" binding:"required"`
}

func (h *LorryReceiptHandler) Dispatch(c *gin.Context) {
	var req dispatchRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondTransition(c)(h.Store.Dispatch(c.Request.Context(), c.Param("id"), req.VehicleNumber, req.DriverName))
}

func (h *LorryReceiptHandler) UpdateTransit(c *gin.Context) {
	var req transitRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondTransition(c)(h.Store.UpdateTransit(c.Request.Context(), c.Param("id"), req.Location))
}

func (h *LorryReceiptHandler) Deliver(c *gin.Context) {
	var req deliverRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondTransition(c)(h.Store.Deliver(c.Request.Context(), c.Param("id"), req.ProofOfDelivery))
}

func (h *LorryReceiptHandler) Close(c *gin.Context) {
	h.respondTransition(c)(h.Store.Close(c.Request.Context(), c.Param("id")))
}

func (h *LorryReceiptHandler) respondTransition(c *gin.Context) func(*models.LorryReceipt, error) {
	return func(lr *models.LorryReceipt, err error) {
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, http.StatusOK, "Status changed to "+string(lr.Status), lr)
	}
}

// financialYearQuery parses ?fy=; absent means no year filter.
func financialYearQuery(c *gin.Context) (*service.FinancialYear, error) {
	raw := c.Query("fy")
	if raw == "" {
		return nil, nil
	}
	fy, err := service.ParseFinancialYear(raw)
	if err != nil {
		return nil, err
	}
	return &fy, nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
