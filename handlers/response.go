package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"freightdesk/apperr"
)

type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// report json names in validation errors
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		// let numeric tags (gt, gte, lte) apply to decimals
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	}
}

func writeJSON(c *gin.Context, status int, resp ApiResponse) {
	c.JSON(status, resp)
}

func ok(c *gin.Context, status int, message string, data any) {
	writeJSON(c, status, ApiResponse{Success: true, Message: message, Data: data})
}

// writeError maps the apperr kind of err to an HTTP status.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrIO):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Str("method", c.Request.Method).Msg("unhandled error")
		message = "internal server error"
	}
	writeJSON(c, status, ApiResponse{Success: false, Message: message, Field: apperr.FieldOf(err)})
}

// bindJSON decodes the body into dst and reports the first failed field.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		writeError(c, apperr.Validation(fe.Field(), "%s failed on %s", fe.Field(), fe.Tag()))
		return false
	}
	writeError(c, apperr.Validation("", "invalid request payload: %v", err))
	return false
}
