package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdesk/models"
	"freightdesk/service"
)

type ClientHandler struct {
	Clients *service.ClientService
}

type clientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	GSTIN         string `json:"gstin" binding:"required"`
	Address       string `json:"address"`
}

func (r clientRequest) model() *models.Client {
	return &models.Client{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		GSTIN:         r.GSTIN,
		Address:       r.Address,
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.Clients.Create(c.Request.Context(), req.model())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, "Client created", client)
}

func (h *ClientHandler) List(c *gin.Context) {
	list, err := h.Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", nonNil(list))
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.Clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.Clients.Update(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Client updated", client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Client deleted", nil)
}
