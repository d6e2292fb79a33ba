package handlers

import (
	"net/http"

	"logixy_crm/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Search rates
// @Description  Returns daily price observations for the route and a recommendation summary (null when there is no data).
// @Tags         rates
// @Produce      json
// @Param        from  query     string  true  "Origin"       example(Shanghai)
// @Param        to    query     string  true  "Destination"  example(Odesa)
// @Param        type  query     string  true  "Container kind"  Enums(20',40',40HC,Tent)
// @Success      200   {object}  rates.Recommendation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/rates/search [get]
// @Security     BearerAuth
func (h *Handler) searchRates(c *gin.Context) {
	from, to, kind := c.Query("from"), c.Query("to"), c.Query("type")
	rec, err := h.services.SearchRates(c.Request.Context(), from, to, kind)
	if err != nil {
		h.respondError(c, "rate_search_failed", err, "from", from, "to", to, "type", kind)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Container kinds
// @Description  Values accepted by the type parameter of rate search and by quotations.
// @Tags         rates
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/container-kinds [get]
// @Security     BearerAuth
func (h *Handler) listContainerKinds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kinds": models.ContainerKinds()})
}

// @Summary      Dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardStats
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
// @Security     BearerAuth
func (h *Handler) getDashboard(c *gin.Context) {
	st, err := h.services.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, "dashboard_stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
