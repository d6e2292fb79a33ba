package handlers

import (
	"net/http"

	"logixy_crm/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      List clients
// @Description  Without sort, clients are grouped by holding with standalone companies last. Default search is by name.
// @Tags         clients
// @Produce      json
// @Param        q      query     string  false  "Search text (case-insensitive substring)"
// @Param        field  query     string  false  "Column to search"  Enums(code,name,edrpou,city,status,sales,holding,company_type,directions,services)
// @Param        sort   query     string  false  "Sort column"
// @Param        dir    query     string  false  "Sort direction"  Enums(asc,desc)
// @Param        page   query     int     false  "1-based page"
// @Param        size   query     int     false  "Page size (0 = all)"
// @Success      200    {object}  map[string]interface{}  "rows, total, page, page_size, pages, sort"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/clients [get]
// @Security     BearerAuth
func (h *Handler) listClients(c *gin.Context) {
	q, err := parseTableQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.services.ListClients(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, "clients_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  models.Client
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/clients/{id} [get]
// @Security     BearerAuth
func (h *Handler) getClient(c *gin.Context) {
	id := c.Param("id")
	client, err := h.services.GetClient(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "client_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      Create client
// @Description  Assigns id, SM code, status New and today's last contact date when omitted.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      models.Client  true  "Client"
// @Success      201   {object}  models.Client
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/clients [post]
// @Security     BearerAuth
func (h *Handler) createClient(c *gin.Context) {
	var in models.Client
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	in.ID = ""
	in.Code = ""
	saved, err := h.services.SaveClient(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "client_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Client ID"
// @Param        body  body      models.Client  true  "Client"
// @Success      200   {object}  models.Client
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/clients/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateClient(c *gin.Context) {
	var in models.Client
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	in.ID = c.Param("id")
	saved, err := h.services.SaveClient(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "client_update_failed", err, "id", in.ID)
		return
	}
	c.JSON(http.StatusOK, saved)
}
