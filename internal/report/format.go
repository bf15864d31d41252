// Package report gera os textos e arquivos exportados pelo painel: hoja de
// ruta, relatório financeiro, planilhas e mensagens de WhatsApp.
package report

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

var locale = language.MustParse("es-AR")

// FormatARS formata um valor em pesos sem centavos ("$15.000")
func FormatARS(amount float64) string {
	p := message.NewPrinter(locale)
	return "$" + p.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// FormatDateAR converte YYYY-MM-DD em DD/MM/YYYY. Datas inválidas voltam como vieram.
func FormatDateAR(date string) string {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

// LongDateAR devolve "martes 01/07/2025"
func LongDateAR(date string) string {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", weekdays[d.Weekday()], d.Format("02/01/2006"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
