package handlers

import (
	"errors"
	"net/http"

	"logixy_crm/internal/models"
	"logixy_crm/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List quotations
// @Description  Newest first unless sorted. Default search covers code, client name, from and to.
// @Tags         quotations
// @Produce      json
// @Param        month  query     string  false  "YYYY-MM or all"  example(2025-03)
// @Param        q      query     string  false  "Search text"
// @Param        field  query     string  false  "Column to search"  Enums(code,client_name,from,to,shipping_line,agent,sales)
// @Param        sort   query     string  false  "Sort column"
// @Param        dir    query     string  false  "Sort direction"  Enums(asc,desc)
// @Param        page   query     int     false  "1-based page"
// @Param        size   query     int     false  "Page size (0 = all)"
// @Success      200    {object}  map[string]interface{}  "rows, total, page, page_size, pages, sort"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/quotations [get]
// @Security     BearerAuth
func (h *Handler) listQuotations(c *gin.Context) {
	q, err := parseTableQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	month := c.Query("month")
	res, err := h.services.ListQuotations(c.Request.Context(), month, q)
	if err != nil {
		h.respondError(c, "quotations_list_failed", err, "month", month)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Months with quotations
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/quotations/months [get]
// @Security     BearerAuth
func (h *Handler) listMonths(c *gin.Context) {
	months, err := h.services.Months(c.Request.Context())
	if err != nil {
		h.respondError(c, "quotation_months_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": months})
}

// @Summary      Get quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  models.Quotation
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/quotations/{id} [get]
// @Security     BearerAuth
func (h *Handler) getQuotation(c *gin.Context) {
	id := c.Param("id")
	q, err := h.services.GetQuotation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "quotation_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, q)
}

// @Summary      Create quotation
// @Description  Total is recomputed as freight+dpp+forwarding+t1+auto+rail.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      models.Quotation  true  "Quotation"
// @Success      201   {object}  models.Quotation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/quotations [post]
// @Security     BearerAuth
func (h *Handler) createQuotation(c *gin.Context) {
	var in models.Quotation
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	in.ID = ""
	in.Code = ""
	h.saveQuotation(c, in, http.StatusCreated, "quotation_create_failed")
}

// @Summary      Update quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Quotation ID"
// @Param        body  body      models.Quotation  true  "Quotation"
// @Success      200   {object}  models.Quotation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/quotations/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateQuotation(c *gin.Context) {
	var in models.Quotation
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	in.ID = c.Param("id")
	h.saveQuotation(c, in, http.StatusOK, "quotation_update_failed")
}

func (h *Handler) saveQuotation(c *gin.Context, in models.Quotation, okCode int, logKey string) {
	saved, err := h.services.SaveQuotation(c.Request.Context(), in)
	if err != nil {
		// A dangling client link is a bad payload, not a missing quotation.
		if errors.Is(err, service.ErrClientNotFound) {
			h.logAndJSONError(c, http.StatusBadRequest, "unknown client_id", logKey, err, "client_id", in.ClientID)
			return
		}
		h.respondError(c, logKey, err, "id", in.ID)
		return
	}
	c.JSON(okCode, saved)
}
