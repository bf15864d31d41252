package handlers

import (
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/report"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	ucBooking "github.com/BruksfildServices01/pulcro-admin/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	st     *store.Store
	create *ucBooking.CreateBooking
	update *ucBooking.UpdateBooking
	remove *ucBooking.DeleteBooking
}

func NewBookingHandler(
	st *store.Store,
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	remove *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{st: st, create: create, update: update, remove: remove}
}

type WhatsAppResponse struct {
	Message string `json:"mensaje"`
	Phone   string `json:"telefono"`
	URL     string `json:"url,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

func validDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ======================================================
// LIST
// ======================================================

// List devolve a visão detalhada. Aceita ?fecha= ou ?desde=&hasta=, além de
// ?equipo= e ?estado=.
func (h *BookingHandler) List(c *gin.Context) {
	date := c.Query("fecha")
	from := c.Query("desde")
	to := c.Query("hasta")

	if !validDate(date) || !validDate(from) || !validDate(to) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use AAAA-MM-DD.")
		return
	}

	var rows []models.DetailedBooking
	if date != "" {
		rows = query.BookingsOnDate(h.st, date)
	} else {
		rows = query.BookingsInRange(h.st, from, to)
	}

	if team := c.Query("equipo"); team != "" {
		rows = query.FilterTeam(rows, team)
	}

	if status := domain.Status(c.Query("estado")); status != "" {
		if !status.Valid() {
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
			return
		}
		filtered := make([]models.DetailedBooking, 0, len(rows))
		for _, r := range rows {
			if r.Status == status {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	httpresp.List(c, rows)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, r := range query.DetailedBookings(h.st) {
		if r.ID == id {
			httpresp.OK(c, r)
			return
		}
	}
	respondError(c, store.ErrNotFound)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var in ucBooking.CreateBookingInput
	if err := store.Decode(c.Request.Body, &in); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var patch models.BookingPatch
	if err := store.Decode(c.Request.Body, &patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.update.Execute(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// WHATSAPP
// ======================================================

// WhatsApp monta a confirmação para o cliente. Sem telefone a URL fica vazia.
func (h *BookingHandler) WhatsApp(c *gin.Context) {
	id := c.Param("id")

	var (
		row   models.DetailedBooking
		found bool
	)
	for _, r := range query.DetailedBookings(h.st) {
		if r.ID == id {
			row, found = r, true
			break
		}
	}
	if !found {
		respondError(c, store.ErrNotFound)
		return
	}

	client, _ := h.st.Clients.Get(row.ClientID)
	msg := report.WhatsAppMessage(row, client)

	resp := WhatsAppResponse{Message: msg, Phone: client.Phone}
	if phone := onlyDigits(client.Phone); phone != "" {
		resp.URL = "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg)
	}
	httpresp.OK(c, resp)
}
