package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

type DashboardHandler struct {
	st *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{st: st}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	httpresp.OK(c, query.Metrics(query.FromStore(h.st), h.st.Now()))
}

// Calendar monta a grade do mês em /calendario/:year/:month
func (h *DashboardHandler) Calendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	httpresp.OK(c, query.Calendar(query.DetailedBookings(h.st), year, time.Month(month)))
}
