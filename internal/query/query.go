// Package query monta as visões somente leitura usadas pelo painel e pelos
// relatórios. Nada aqui altera as coleções.
package query

import (
	"time"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

const (
	MissingClient      = "Cliente no encontrado"
	MissingServiceType = "Tipo no encontrado"
	MissingTeam        = "Equipo no encontrado"
)

// Source é uma fotografia das coleções que participam dos joins
type Source struct {
	Clients      []models.Client
	ServiceTypes []models.ServiceType
	Teams        []models.Team
	Bookings     []models.Booking
}

func FromStore(st *store.Store) Source {
	return Source{
		Clients:      st.Clients.List(),
		ServiceTypes: st.ServiceTypes.List(),
		Teams:        st.Teams.List(),
		Bookings:     st.Bookings.List(),
	}
}

// ===============================
// Detailed bookings
// ===============================

// Detailed junta cada agendamento com cliente, tipo e equipe. Referências
// quebradas viram rótulos de placeholder e preço zero.
func Detailed(src Source) []models.DetailedBooking {
	clients := make(map[string]string, len(src.Clients))
	for _, c := range src.Clients {
		clients[c.ID] = c.Name
	}
	types := make(map[string]models.ServiceType, len(src.ServiceTypes))
	for _, t := range src.ServiceTypes {
		types[t.ID] = t
	}
	teams := make(map[string]string, len(src.Teams))
	for _, t := range src.Teams {
		teams[t.ID] = t.Name
	}

	out := make([]models.DetailedBooking, 0, len(src.Bookings))
	for _, b := range src.Bookings {
		row := models.DetailedBooking{
			Booking:         b,
			ClientName:      MissingClient,
			ServiceTypeName: MissingServiceType,
			TeamName:        MissingTeam,
		}
		if name, ok := clients[b.ClientID]; ok {
			row.ClientName = name
		}
		if t, ok := types[b.ServiceTypeID]; ok {
			row.ServiceTypeName = t.Name
			row.Price = t.Price
		}
		if name, ok := teams[b.TeamID]; ok {
			row.TeamName = name
		}
		out = append(out, row)
	}
	return out
}

func DetailedBookings(st *store.Store) []models.DetailedBooking {
	return Detailed(FromStore(st))
}

// InRange filtra por data inclusiva. Datas ISO ordenam igual como texto.
// Limites vazios ficam abertos.
func InRange(rows []models.DetailedBooking, from, to string) []models.DetailedBooking {
	out := make([]models.DetailedBooking, 0, len(rows))
	for _, r := range rows {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

func OnDate(rows []models.DetailedBooking, date string) []models.DetailedBooking {
	out := make([]models.DetailedBooking, 0)
	for _, r := range rows {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func BookingsInRange(st *store.Store, from, to string) []models.DetailedBooking {
	return InRange(DetailedBookings(st), from, to)
}

func BookingsOnDate(st *store.Store, date string) []models.DetailedBooking {
	return OnDate(DetailedBookings(st), date)
}

// ===============================
// Dashboard
// ===============================

// Metrics calcula os números do painel em uma passada. now já deve estar no
// fuso da empresa; "hoje" e "mês atual" saem dele.
func Metrics(src Source, now time.Time) models.DashboardMetrics {
	today := now.Format(models.DateLayout)
	month := now.Format("2006-01")

	prices := make(map[string]float64, len(src.ServiceTypes))
	for _, t := range src.ServiceTypes {
		prices[t.ID] = t.Price
	}

	m := models.DashboardMetrics{
		TotalClients:  len(src.Clients),
		TotalBookings: len(src.Bookings),
		ByStatus:      make(map[domain.Status]int, len(domain.Statuses)),
	}
	for _, s := range domain.Statuses {
		m.ByStatus[s] = 0
	}

	for _, b := range src.Bookings {
		price := prices[b.ServiceTypeID]

		m.ByStatus[b.Status]++
		m.TotalRevenue += price

		if len(b.Date) >= 7 && b.Date[:7] == month {
			m.MonthRevenue += price
		}
		if b.Date == today {
			m.BookingsToday++
		}
	}
	m.PendingBookings = m.ByStatus[domain.StatusPending]
	m.CompletedBookings = m.ByStatus[domain.StatusCompleted]

	for _, t := range src.Teams {
		if t.Active {
			m.ActiveTeams++
		}
	}
	return m
}
