package handlers

import (
	"errors"
	"net/http"

	"logixy_crm/internal/models"
	"logixy_crm/internal/rates"
	"logixy_crm/internal/service"
	"logixy_crm/internal/table"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError maps domain errors onto status codes. Client errors echo
// the error text; server errors hide it.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = errInternal
	}
	h.logAndJSONError(c, code, msg, logKey, err, kv...)
}

var badRequestErrors = []error{
	service.ErrInvalidClient,
	service.ErrInvalidQuotation,
	service.ErrInvalidDate,
	service.ErrInvalidMonth,
	service.ErrNegativeAmount,
	models.ErrInvalidContainerKind,
	table.ErrUnknownColumn,
	table.ErrNotSortable,
	table.ErrNotSearchable,
	table.ErrInvalidDirection,
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrClientNotFound), errors.Is(err, service.ErrQuotationNotFound):
		return http.StatusNotFound
	case rates.IsInvalidArgument(err):
		return http.StatusBadRequest
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
