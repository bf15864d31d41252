package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// FinancialReportPDF escreve o relatório financeiro em A4
func FinancialReportPDF(w io.Writer, r FinancialReport, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("PULCRO - Reporte de Ganancias"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Período: %s al %s", FormatDateAR(r.From), FormatDateAR(r.To))))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Generado: %s", generatedAt.Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	widths := []float64{18, 52, 50, 25, 30}
	header := []string{"Hora", "Cliente", "Servicio", "Precio", "Estado"}

	for _, d := range r.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(LongDateAR(d.Date)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 9)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range d.Bookings {
			cells := []string{row.Time, row.ClientName, row.ServiceTypeName, FormatARS(row.Price), string(row.Status)}
			for i, c := range cells {
				align := "L"
				if i == 3 {
					align = "R"
				}
				pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 7, tr("Subtotal del día: "+FormatARS(d.Subtotal)+" ARS"), "", 1, "R", false, 0, "")
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("TOTAL GENERAL: %s ARS", FormatARS(r.GrandTotal))))
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Servicios: %d  |  Promedio: %s ARS", r.Count, FormatARS(r.Average))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Completados: %d  |  Pendientes: %d  |  Cancelados: %d", r.Completed, r.Pending, r.Cancelled)))

	return pdf.Output(w)
}
