package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

const (
	NoBookingsMessage = "No hay servicios programados para este día."
	noNotes           = "Sin observaciones"
	rule              = "────────────────────────────"
)

// FormatRouteSheet monta a hoja de ruta de uma equipe num dia. Nunca inclui
// preços: o texto é compartilhado com os operadores.
func FormatRouteSheet(rows []models.DetailedBooking, teamName, date string) string {
	day := make([]models.DetailedBooking, 0)
	for _, r := range rows {
		if r.TeamName == teamName && r.Date == date {
			day = append(day, r)
		}
	}
	sortByTime(day)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 HOJA DE RUTA - %s\n", teamName)
	fmt.Fprintf(&b, "📅 %s\n", LongDateAR(date))

	if len(day) == 0 {
		fmt.Fprintf(&b, "\n❌ %s", NoBookingsMessage)
		return b.String()
	}

	b.WriteString("════════════════════════════════\n\n")
	for i, r := range day {
		fmt.Fprintf(&b, "%d. 🕒 %s\n", i+1, r.Time)
		fmt.Fprintf(&b, "   🏢 %s\n", r.ClientName)
		fmt.Fprintf(&b, "   🔧 %s\n", r.ServiceTypeName)
		fmt.Fprintf(&b, "   📝 %s\n", orDefault(r.Notes, noNotes))
		fmt.Fprintf(&b, "   %s\n\n", rule)
	}

	fmt.Fprintf(&b, "✅ Total de servicios: %d\n\n", len(day))
	b.WriteString("💡 Recuerda:\n")
	b.WriteString("• Llegar puntual a cada cita\n")
	b.WriteString("• Llevar todo el equipo necesario\n")
	b.WriteString("• Confirmar servicio completado\n")
	b.WriteString("• Reportar cualquier inconveniente\n\n")
	b.WriteString("¡Buen trabajo equipo! 💪")
	return b.String()
}

// FormatDailyRoute junta as rotas de todas as equipes de um dia, com o
// contato do líder e o endereço de cada serviço.
func FormatDailyRoute(rows []models.DetailedBooking, teams []models.Team, clients []models.Client, date string) string {
	teamByID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	clientByID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	var order []string
	byTeam := map[string][]models.DetailedBooking{}
	total := 0
	for _, r := range rows {
		if r.Date != date {
			continue
		}
		if _, ok := byTeam[r.TeamID]; !ok {
			order = append(order, r.TeamID)
		}
		byTeam[r.TeamID] = append(byTeam[r.TeamID], r)
		total++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ *HOJA DE RUTA - %s*\n\n", FormatDateAR(date))

	if total == 0 {
		b.WriteString(NoBookingsMessage)
		return b.String()
	}

	for _, teamID := range order {
		list := byTeam[teamID]
		sortByTime(list)

		team, ok := teamByID[teamID]
		if ok {
			fmt.Fprintf(&b, "👥 *EQUIPO: %s*\n", team.Name)
			fmt.Fprintf(&b, "📞 *Líder: %s - %s*\n\n", team.Leader, team.Phone)
		} else {
			fmt.Fprintf(&b, "👥 *EQUIPO: %s*\n\n", list[0].TeamName)
		}

		for i, r := range list {
			c := clientByID[r.ClientID]
			fmt.Fprintf(&b, "📍 *Servicio %d*\n", i+1)
			fmt.Fprintf(&b, "⏰ *Hora:* %s\n", r.Time)
			fmt.Fprintf(&b, "🏢 *Cliente:* %s\n", r.ClientName)
			fmt.Fprintf(&b, "📍 *Dirección:* %s\n", r.Address)
			fmt.Fprintf(&b, "🔧 *Servicio:* %s\n", r.ServiceTypeName)
			fmt.Fprintf(&b, "📞 *Contacto:* %s - %s\n", c.Contact, c.Phone)
			if r.Notes != "" {
				fmt.Fprintf(&b, "📝 *Obs:* %s\n", r.Notes)
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "📊 *Servicios del equipo: %d*\n\n", len(list))
		b.WriteString("═══════════════════════\n\n")
	}

	fmt.Fprintf(&b, "📊 *TOTAL SERVICIOS: %d*", total)
	return b.String()
}

func sortByTime(rows []models.DetailedBooking) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time < rows[j].Time
	})
}
