package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
)

// DayTotal é o subtotal de um bloco de datas iguais
type DayTotal struct {
	Date     string                   `json:"fecha"`
	Subtotal float64                  `json:"subtotal"`
	Bookings []models.DetailedBooking `json:"servicios"`
}

type FinancialReport struct {
	From       string     `json:"desde"`
	To         string     `json:"hasta"`
	Days       []DayTotal `json:"dias"`
	Count      int        `json:"cantidad"`
	GrandTotal float64    `json:"totalGeneral"`
	Average    float64    `json:"promedio"`
	Completed  int        `json:"completados"`
	Pending    int        `json:"pendientes"`
	Cancelled  int        `json:"cancelados"`
}

// BuildFinancialReport agrupa linhas já filtradas pelo período. Um novo bloco
// começa sempre que a data muda, na ordem em que as linhas chegam.
func BuildFinancialReport(rows []models.DetailedBooking, from, to string) FinancialReport {
	r := FinancialReport{From: from, To: to, Days: []DayTotal{}, Count: len(rows)}

	for _, row := range rows {
		n := len(r.Days)
		if n == 0 || r.Days[n-1].Date != row.Date {
			r.Days = append(r.Days, DayTotal{Date: row.Date})
			n++
		}
		r.Days[n-1].Subtotal += row.Price
		r.Days[n-1].Bookings = append(r.Days[n-1].Bookings, row)
		r.GrandTotal += row.Price

		switch query.BucketOf(row.Status) {
		case query.BucketCompleted:
			r.Completed++
		case query.BucketPending:
			r.Pending++
		case query.BucketCancelled:
			r.Cancelled++
		}
	}

	if r.Count > 0 {
		r.Average = r.GrandTotal / float64(r.Count)
	}
	return r
}

const (
	heavyRule = "═══════════════════════════════════════════"
	lightRule = "─────────────────────────────────────────"
)

// FormatFinancialReport renderiza o relatório em texto para copiar e colar
func FormatFinancialReport(r FinancialReport, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════╗\n")
	b.WriteString("║          REPORTE DE GANANCIAS          ║\n")
	b.WriteString("╚════════════════════════════════════════╝\n\n")
	fmt.Fprintf(&b, "📅 Período: %s al %s\n", FormatDateAR(r.From), FormatDateAR(r.To))
	fmt.Fprintf(&b, "📊 Generado: %s\n\n", generatedAt.Format("02/01/2006 15:04"))
	b.WriteString(heavyRule + "\n\n")

	b.WriteString("💰 RESUMEN FINANCIERO:\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "• Total de Servicios: %d\n", r.Count)
	fmt.Fprintf(&b, "• Ingresos Totales: %s ARS\n", FormatARS(r.GrandTotal))
	fmt.Fprintf(&b, "• Promedio por Servicio: %s ARS\n\n", FormatARS(r.Average))
	b.WriteString(heavyRule + "\n\n")

	b.WriteString("📋 DETALLE DE SERVICIOS:\n")
	b.WriteString(lightRule + "\n")
	for _, d := range r.Days {
		fmt.Fprintf(&b, "\n📅 %s\n", LongDateAR(d.Date))
		for _, row := range d.Bookings {
			fmt.Fprintf(&b, "   %s | %s | %s | %s | %s | %s\n",
				row.Time, row.ClientName, row.ServiceTypeName, FormatARS(row.Price), row.TeamName, row.Status)
		}
		fmt.Fprintf(&b, "\n   💵 Subtotal del día: %s ARS\n", FormatARS(d.Subtotal))
		b.WriteString(lightRule + "\n")
	}

	b.WriteString("\n" + heavyRule + "\n")
	fmt.Fprintf(&b, "💰 TOTAL GENERAL: %s ARS\n", FormatARS(r.GrandTotal))
	b.WriteString(heavyRule + "\n\n")

	b.WriteString("📈 ANÁLISIS:\n")
	fmt.Fprintf(&b, "• Servicios completados: %d\n", r.Completed)
	fmt.Fprintf(&b, "• Servicios pendientes: %d\n", r.Pending)
	fmt.Fprintf(&b, "• Servicios cancelados: %d\n\n", r.Cancelled)
	b.WriteString(lightRule + "\n")
	b.WriteString("Reporte generado por PULCRO\n")

	return b.String()
}
