package handlers

import (
	"bytes"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/report"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

const (
	contentTypeCSV = "text/csv; charset=utf-8"
	contentTypePDF = "application/pdf"
)

type ReportHandler struct {
	st *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{st: st}
}

// EarningsResponse é a versão JSON do relatório de ganhos
type EarningsResponse struct {
	Report   report.FinancialReport `json:"reporte"`
	Earnings query.Earnings         `json:"ganancias"`
	Teams    []query.TeamStat       `json:"equipos"`
}

func (h *ReportHandler) today() string {
	return h.st.Now().Format(models.DateLayout)
}

// ======================================================
// HOJA DE RUTA
// ======================================================

// RouteSheet gera a folha do dia. Com ?equipo= sai só a equipe, senão todas.
func (h *ReportHandler) RouteSheet(c *gin.Context) {
	date := c.DefaultQuery("fecha", h.today())
	if !validDate(date) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use AAAA-MM-DD.")
		return
	}

	rows := query.DetailedBookings(h.st)

	teamID := c.Query("equipo")
	if teamID == "" {
		text := report.FormatDailyRoute(rows, h.st.Teams.List(), h.st.Clients.List(), date)
		httpresp.Text(c, text)
		return
	}

	team, ok := h.st.Teams.Get(teamID)
	if !ok {
		httperr.NotFound(c, "team_not_found", "Equipo no encontrado.")
		return
	}

	text := report.FormatRouteSheet(query.FilterTeam(rows, team.ID), team.Name, date)
	httpresp.Text(c, text)
}

// ======================================================
// GANANCIAS
// ======================================================

// Earnings aceita ?desde=&hasta=&equipo= e ?formato=texto|csv|pdf|json
func (h *ReportHandler) Earnings(c *gin.Context) {
	from := c.Query("desde")
	to := c.Query("hasta")
	if !validDate(from) || !validDate(to) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use AAAA-MM-DD.")
		return
	}

	rows := query.BookingsInRange(h.st, from, to)
	if team := c.Query("equipo"); team != "" {
		rows = query.FilterTeam(rows, team)
	}

	r := report.BuildFinancialReport(rows, from, to)
	now := h.st.Now()
	name := "reporte_ganancias_" + now.Format(models.DateLayout)

	switch c.DefaultQuery("formato", "texto") {
	case "texto":
		httpresp.Text(c, report.FormatFinancialReport(r, now))

	case "csv":
		httpresp.Attachment(c, contentTypeCSV, name+".csv", []byte(report.EarningsCSV(r)))

	case "pdf":
		var buf bytes.Buffer
		if err := report.FinancialReportPDF(&buf, r, now); err != nil {
			log.ForContext(c.Request.Context()).WithError(err).Error("pdf report failed")
			httperr.Internal(c, "pdf_failed", "No se pudo generar el PDF.")
			return
		}
		httpresp.Attachment(c, contentTypePDF, name+".pdf", buf.Bytes())

	case "json":
		httpresp.OK(c, EarningsResponse{
			Report:   r,
			Earnings: query.ComputeEarnings(rows),
			Teams:    query.TeamStats(rows),
		})

	default:
		httperr.BadRequest(c, "invalid_format", "Formato inválido: use texto, csv, pdf o json.")
	}
}

// ======================================================
// EXPORTS
// ======================================================

func (h *ReportHandler) ClientsCSV(c *gin.Context) {
	body := report.ClientsCSV(h.st.Clients.List())
	httpresp.Attachment(c, contentTypeCSV, "clientes_backup_"+h.today()+".csv", []byte(body))
}

func (h *ReportHandler) BookingsCSV(c *gin.Context) {
	from := c.Query("desde")
	to := c.Query("hasta")
	if !validDate(from) || !validDate(to) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use AAAA-MM-DD.")
		return
	}

	body := report.BookingsCSV(query.BookingsInRange(h.st, from, to), h.st.Clients.List())
	httpresp.Attachment(c, contentTypeCSV, "servicios_"+h.today()+".csv", []byte(body))
}
