package query

import (
	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// Earnings separa o faturamento por situação do serviço
type Earnings struct {
	Total          float64 `json:"total"`
	Completed      float64 `json:"realizados"`
	Pending        float64 `json:"pendientes"`
	Cancelled      float64 `json:"cancelados"`
	CompletedCount int     `json:"serviciosRealizados"`
	PendingCount   int     `json:"serviciosPendientes"`
	CancelledCount int     `json:"serviciosCancelados"`
	Count          int     `json:"totalServicios"`
}

// Bucket diz em qual grupo financeiro o estado cai
type Bucket int

const (
	BucketNone Bucket = iota
	BucketCompleted
	BucketPending
	BucketCancelled
)

func BucketOf(s domain.Status) Bucket {
	switch s {
	case domain.StatusCompleted:
		return BucketCompleted
	case domain.StatusScheduled, domain.StatusInProgress, domain.StatusPending:
		return BucketPending
	case domain.StatusCancelled:
		return BucketCancelled
	}
	return BucketNone
}

func ComputeEarnings(rows []models.DetailedBooking) Earnings {
	e := Earnings{Count: len(rows)}
	for _, r := range rows {
		e.Total += r.Price
		switch BucketOf(r.Status) {
		case BucketCompleted:
			e.Completed += r.Price
			e.CompletedCount++
		case BucketPending:
			e.Pending += r.Price
			e.PendingCount++
		case BucketCancelled:
			e.Cancelled += r.Price
			e.CancelledCount++
		}
	}
	return e
}

// TeamStat conta serviços por equipe; só os realizados somam receita
type TeamStat struct {
	TeamID string  `json:"equipoId"`
	Team   string  `json:"equipo"`
	Count  int     `json:"cantidad"`
	Income float64 `json:"ingresos"`
}

// TeamStats agrupa na ordem em que cada equipe aparece pela primeira vez
func TeamStats(rows []models.DetailedBooking) []TeamStat {
	idx := map[string]int{}
	out := []TeamStat{}

	for _, r := range rows {
		i, ok := idx[r.TeamID]
		if !ok {
			i = len(out)
			idx[r.TeamID] = i
			out = append(out, TeamStat{TeamID: r.TeamID, Team: r.TeamName})
		}
		out[i].Count++
		if r.Status == domain.StatusCompleted {
			out[i].Income += r.Price
		}
	}
	return out
}

// FilterTeam mantém só os serviços da equipe; teamID vazio não filtra
func FilterTeam(rows []models.DetailedBooking, teamID string) []models.DetailedBooking {
	if teamID == "" {
		return rows
	}
	out := make([]models.DetailedBooking, 0, len(rows))
	for _, r := range rows {
		if r.TeamID == teamID {
			out = append(out, r)
		}
	}
	return out
}

// UsageCount devolve quantos agendamentos apontam para cada equipe e tipo
func UsageCount(bookings []models.Booking) (teams, serviceTypes map[string]int) {
	teams = map[string]int{}
	serviceTypes = map[string]int{}
	for _, b := range bookings {
		teams[b.TeamID]++
		serviceTypes[b.ServiceTypeID]++
	}
	return teams, serviceTypes
}
