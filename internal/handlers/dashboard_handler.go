package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"impactio/internal/dashboard"
	"impactio/internal/models"
	"impactio/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

var filterParams = []string{"search", "status", "source"}

// criteria merges query params over the stored selections; params that were given are remembered.
func (h *DashboardHandler) criteria(c *gin.Context, sess *models.Session) (dashboard.Criteria, error) {
	ctx := c.Request.Context()
	stored, err := h.Service.ResolveCriteria(ctx, sess, nil)
	if err != nil {
		return dashboard.Criteria{}, err
	}

	f := stored.Model()
	given := false
	for _, key := range filterParams {
		v, ok := c.GetQuery(key)
		if !ok {
			continue
		}
		given = true
		switch key {
		case "search":
			f.Search = v
		case "status":
			f.Status = v
		case "source":
			f.Source = v
		}
	}
	if !given {
		return stored, nil
	}
	return h.Service.ResolveCriteria(ctx, sess, &f)
}

// @Summary      Дашборд
// @Description  Full view: user, metric cards, charts and the filtered lead table
// @Tags         Dashboard
// @Produce      json
// @Param        search  query  string  false  "Search in name, email, company"
// @Param        status  query  string  false  "Lead status or all"
// @Param        source  query  string  false  "Lead source or all"
// @Success      200  {object}  models.DashboardView
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	crit, err := h.criteria(c, sess)
	if err != nil {
		respondError(c, "dashboard.overview", err)
		return
	}
	view, err := h.Service.Overview(c.Request.Context(), sess, crit)
	if err != nil {
		respondError(c, "dashboard.overview", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Метрики
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	m, err := h.Service.Metrics(c.Request.Context(), sess)
	if err != nil {
		respondError(c, "dashboard.metrics", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metrics": m,
		"cards":   dashboard.Cards(m),
	})
}

// @Summary      Графики
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  models.Charts
// @Security     BearerAuth
// @Router       /dashboard/charts [get]
func (h *DashboardHandler) Charts(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	charts, err := h.Service.Charts(c.Request.Context(), sess)
	if err != nil {
		respondError(c, "dashboard.charts", err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

// @Summary      Таблица лидов
// @Description  Filtered lead table. Missing params fall back to the stored selections.
// @Tags         Dashboard
// @Produce      json
// @Param        search  query  string  false  "Search in name, email, company"
// @Param        status  query  string  false  "Lead status or all"
// @Param        source  query  string  false  "Lead source or all"
// @Success      200  {object}  models.LeadTable
// @Security     BearerAuth
// @Router       /dashboard/leads [get]
func (h *DashboardHandler) Leads(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	crit, err := h.criteria(c, sess)
	if err != nil {
		respondError(c, "dashboard.leads", err)
		return
	}
	table, err := h.Service.Table(c.Request.Context(), sess, crit)
	if err != nil {
		respondError(c, "dashboard.leads", err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// @Summary      Текущие фильтры
// @Tags         Filters
// @Produce      json
// @Success      200  {object}  models.FilterState
// @Security     BearerAuth
// @Router       /dashboard/filters [get]
func (h *DashboardHandler) GetFilters(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	crit, err := h.Service.ResolveCriteria(c.Request.Context(), sess, nil)
	if err != nil {
		respondError(c, "filters.get", err)
		return
	}
	c.JSON(http.StatusOK, models.FilterState{
		Filters: crit.Model(),
		Options: dashboard.FilterOptions(),
	})
}

// @Summary      Сохранить фильтры
// @Tags         Filters
// @Accept       json
// @Produce      json
// @Param        filters  body  models.FilterCriteria  true  "Selections"
// @Success      200  {object}  models.FilterCriteria
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard/filters [put]
func (h *DashboardHandler) PutFilters(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.FilterCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.Service.SaveFilters(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, "filters.put", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary      Сбросить фильтры
// @Tags         Filters
// @Success      204
// @Security     BearerAuth
// @Router       /dashboard/filters [delete]
func (h *DashboardHandler) ResetFilters(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.Service.ResetFilters(c.Request.Context(), sess); err != nil {
		respondError(c, "filters.reset", err)
		return
	}
	c.Status(http.StatusNoContent)
}
