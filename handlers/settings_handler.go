package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdesk/models"
	"freightdesk/service"
)

type SettingsHandler struct {
	Settings *service.SettingsService
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var profile models.CompanyProfile
	if !bindJSON(c, &profile) {
		return
	}
	saved, err := h.Settings.Save(c.Request.Context(), &profile)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Company profile saved", saved)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	profile, err := h.Settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "", profile)
}
