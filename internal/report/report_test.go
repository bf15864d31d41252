package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

func row(id, date, hour, team string, price float64, status domain.Status) models.DetailedBooking {
	return models.DetailedBooking{
		Booking: models.Booking{
			ID:       id,
			ClientID: "c" + id,
			TeamID:   "t-" + team,
			Date:     date,
			Time:     hour,
			Status:   status,
			Address:  "Av. Santa Fe 1234",
		},
		ClientName:      "Cliente " + id,
		ServiceTypeName: "Limpieza " + id,
		TeamName:        team,
		Price:           price,
	}
}

func TestFormatARS(t *testing.T) {
	assert.Equal(t, "$15.000", FormatARS(15000))
	assert.Equal(t, "$0", FormatARS(0))
}

func TestDates(t *testing.T) {
	assert.Equal(t, "01/07/2025", FormatDateAR("2025-07-01"))
	assert.Equal(t, "martes 01/07/2025", LongDateAR("2025-07-01"))
	assert.Equal(t, "mañana", FormatDateAR("mañana"))
}

func TestFormatRouteSheet(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "14:00", "Equipo Alpha", 25000, domain.StatusScheduled),
		row("2", "2025-07-01", "09:00", "Equipo Alpha", 15000, domain.StatusScheduled),
		row("3", "2025-07-01", "08:00", "Equipo Beta", 18000, domain.StatusScheduled),
		row("4", "2025-07-02", "08:00", "Equipo Alpha", 8000, domain.StatusScheduled),
	}
	rows[0].Notes = "Cocina principal"

	out := FormatRouteSheet(rows, "Equipo Alpha", "2025-07-01")

	assert.Contains(t, out, "HOJA DE RUTA - Equipo Alpha")
	assert.Contains(t, out, "martes 01/07/2025")
	assert.Contains(t, out, "Cocina principal")
	assert.Contains(t, out, "Sin observaciones")
	assert.Contains(t, out, "Total de servicios: 2")
	assert.NotContains(t, out, "Cliente 3")
	assert.NotContains(t, out, "Cliente 4")

	// ordenado por hora
	assert.Less(t, strings.Index(out, "09:00"), strings.Index(out, "14:00"))

	// preço nunca aparece
	assert.NotContains(t, out, "$")
	assert.NotContains(t, out, "15.000")
	assert.NotContains(t, out, "25000")
}

func TestFormatRouteSheet_Empty(t *testing.T) {
	out := FormatRouteSheet(nil, "Equipo Gamma", "2025-07-01")

	assert.Contains(t, out, NoBookingsMessage)
	assert.NotContains(t, out, "Total de servicios")
}

func TestFormatDailyRoute(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "14:00", "Equipo Alpha", 25000, domain.StatusScheduled),
		row("2", "2025-07-01", "09:00", "Equipo Beta", 15000, domain.StatusScheduled),
		row("3", "2025-07-02", "09:00", "Equipo Beta", 15000, domain.StatusScheduled),
	}
	teams := []models.Team{
		{ID: "t-Equipo Alpha", Name: "Equipo Alpha", Leader: "Daniel Martínez", Phone: "+5411-4567-1111"},
	}
	clients := []models.Client{{ID: "c1", Contact: "María", Phone: "+5411-4832-1234"}}

	out := FormatDailyRoute(rows, teams, clients, "2025-07-01")

	assert.Contains(t, out, "HOJA DE RUTA - 01/07/2025")
	assert.Contains(t, out, "Líder: Daniel Martínez - +5411-4567-1111")
	assert.Contains(t, out, "EQUIPO: Equipo Beta")
	assert.Contains(t, out, "Contacto:* María - +5411-4832-1234")
	assert.Contains(t, out, "TOTAL SERVICIOS: 2")
	assert.NotContains(t, out, "Cliente 3")
	assert.NotContains(t, out, "$")

	assert.Contains(t, FormatDailyRoute(rows, teams, clients, "2025-08-01"), NoBookingsMessage)
}

func TestBuildFinancialReport_TwoDays(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "10:00", "Equipo Alpha", 1000, domain.StatusCompleted),
		row("2", "2025-07-02", "10:00", "Equipo Alpha", 2000, domain.StatusScheduled),
	}

	r := BuildFinancialReport(rows, "2025-07-01", "2025-07-02")

	require.Len(t, r.Days, 2)
	assert.Equal(t, "2025-07-01", r.Days[0].Date)
	assert.Equal(t, 1000.0, r.Days[0].Subtotal)
	assert.Equal(t, "2025-07-02", r.Days[1].Date)
	assert.Equal(t, 2000.0, r.Days[1].Subtotal)
	assert.Equal(t, 3000.0, r.GrandTotal)
	assert.Equal(t, 1500.0, r.Average)
	assert.Equal(t, 1, r.Completed)
	assert.Equal(t, 1, r.Pending)
	assert.Equal(t, 0, r.Cancelled)

	text := FormatFinancialReport(r, time.Date(2025, 7, 3, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, 2, strings.Count(text, "Subtotal del día"))
	assert.Contains(t, text, "TOTAL GENERAL")
	assert.Contains(t, text, "Período: 01/07/2025 al 02/07/2025")
	assert.Contains(t, text, "Generado: 03/07/2025 09:30")
}

func TestBuildFinancialReport_InsertionOrder(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "10:00", "A", 10000, domain.StatusCompleted),
		row("2", "2025-07-02", "10:00", "A", 20000, domain.StatusCompleted),
		row("3", "2025-07-01", "12:00", "A", 30000, domain.StatusCancelled),
	}

	r := BuildFinancialReport(rows, "2025-07-01", "2025-07-02")

	require.Len(t, r.Days, 3)
	assert.Equal(t, 30000.0, r.Days[2].Subtotal)
	assert.Equal(t, 1, r.Cancelled)
}

func TestBuildFinancialReport_Empty(t *testing.T) {
	r := BuildFinancialReport(nil, "2025-07-01", "2025-07-31")

	assert.Empty(t, r.Days)
	assert.Zero(t, r.GrandTotal)
	assert.Zero(t, r.Average)

	text := FormatFinancialReport(r, time.Now())
	assert.Contains(t, text, "TOTAL GENERAL: $0 ARS")
	assert.Contains(t, text, "Promedio por Servicio: $0 ARS")
	assert.NotContains(t, text, "NaN")
}

func TestFinancialReportPDF(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "10:00", "Equipo Alpha", 15000, domain.StatusCompleted),
	}
	rows[0].ClientName = "Café Tortoni"

	var buf bytes.Buffer
	err := FinancialReportPDF(&buf, BuildFinancialReport(rows, "2025-07-01", "2025-07-01"), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestToDelimitedText(t *testing.T) {
	out := ToDelimitedText(
		[][]string{{"1", `Parrilla "El Asador"`}, {"2", "a,b"}},
		[]string{"ID", "Nombre"},
	)

	want := BOM + `"ID","Nombre"` + "\n" +
		`"1","Parrilla ""El Asador"""` + "\n" +
		`"2","a,b"`
	assert.Equal(t, want, out)
}

func TestToDelimitedText_OnlyHeaders(t *testing.T) {
	assert.Equal(t, BOM+`"Fecha"`, ToDelimitedText(nil, []string{"Fecha"}))
}

func TestClientsCSV(t *testing.T) {
	out := ClientsCSV([]models.Client{{ID: "1", Name: "Café Tortoni", TaxID: "30-11223344-5"}})

	lines := strings.Split(strings.TrimPrefix(out, BOM), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"ID","Nombre","Empresa","Teléfono","Email","Dirección","CUIT"`, lines[0])
	assert.Equal(t, `"1","Café Tortoni","","","","","30-11223344-5"`, lines[1])
}

func TestBookingsCSV(t *testing.T) {
	r := row("1", "2025-07-01", "10:00", "Equipo Alpha", 15000, domain.StatusScheduled)
	out := BookingsCSV([]models.DetailedBooking{r}, nil)

	lines := strings.Split(strings.TrimPrefix(out, BOM), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"01/07/2025","10:00","Cliente 1","Limpieza 1","Equipo Alpha","Programado","15000","Av. Santa Fe 1234","N/A","N/A",""`,
		lines[1])
}

func TestEarningsCSV(t *testing.T) {
	rows := []models.DetailedBooking{
		row("1", "2025-07-01", "10:00", "Equipo Alpha", 1000, domain.StatusCompleted),
		row("2", "2025-07-02", "10:00", "Equipo Alpha", 2000, domain.StatusCancelled),
	}
	out := EarningsCSV(BuildFinancialReport(rows, "", ""))

	lines := strings.Split(strings.TrimPrefix(out, BOM), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"2025-07-02","10:00","Cliente 2","Limpieza 2","2000","Equipo Alpha","Cancelado"`, lines[2])
}

func TestWhatsAppMessage(t *testing.T) {
	r := row("1", "2025-07-01", "09:00", "Equipo Alpha", 15000, domain.StatusScheduled)
	out := WhatsAppMessage(r, models.Client{Contact: "María Fernanda", Phone: "+5411-4832-1234"})

	assert.Contains(t, out, "*Fecha:* 01/07/2025 a las 09:00")
	assert.Contains(t, out, "*Equipo:* Equipo Alpha")
	assert.Contains(t, out, "*Contacto:* María Fernanda")
	assert.Contains(t, out, "Sin observaciones especiales")
	assert.NotContains(t, out, "$")
}
