package report

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// BOM faz o Excel abrir o arquivo como UTF-8
const BOM = "\ufeff"

// ToDelimitedText gera CSV com todos os campos entre aspas
func ToDelimitedText(rows [][]string, headers []string) string {
	var b strings.Builder
	b.WriteString(BOM)

	writeRow(&b, headers)
	for _, r := range rows {
		b.WriteString("\n")
		writeRow(&b, r)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

var clientHeaders = []string{"ID", "Nombre", "Empresa", "Teléfono", "Email", "Dirección", "CUIT"}

// ClientsCSV é o backup da carteira de clientes
func ClientsCSV(clients []models.Client) string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.ID, c.Name, c.Company, c.Phone, c.Email, c.Address, c.TaxID})
	}
	return ToDelimitedText(rows, clientHeaders)
}

var bookingHeaders = []string{
	"Fecha", "Hora", "Cliente", "Tipo de Servicio", "Equipo", "Estado",
	"Precio", "Dirección", "Contacto", "Teléfono", "Observaciones",
}

// BookingsCSV exporta os serviços com os dados de contato do cliente
func BookingsCSV(rows []models.DetailedBooking, clients []models.Client) string {
	byID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		c, ok := byID[r.ClientID]
		contact, phone := "N/A", "N/A"
		if ok {
			contact = orDefault(c.Contact, "N/A")
			phone = orDefault(c.Phone, "N/A")
		}
		out = append(out, []string{
			FormatDateAR(r.Date),
			r.Time,
			r.ClientName,
			r.ServiceTypeName,
			r.TeamName,
			string(r.Status),
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			r.Address,
			contact,
			phone,
			r.Notes,
		})
	}
	return ToDelimitedText(out, bookingHeaders)
}

var earningsHeaders = []string{"Fecha", "Hora", "Cliente", "Tipo de Servicio", "Precio (ARS)", "Equipo", "Estado"}

// EarningsCSV exporta o detalhe do relatório financeiro
func EarningsCSV(r FinancialReport) string {
	rows := make([][]string, 0, r.Count)
	for _, d := range r.Days {
		for _, b := range d.Bookings {
			rows = append(rows, []string{
				b.Date, b.Time, b.ClientName, b.ServiceTypeName,
				strconv.FormatFloat(b.Price, 'f', -1, 64),
				b.TeamName, string(b.Status),
			})
		}
	}
	return ToDelimitedText(rows, earningsHeaders)
}
