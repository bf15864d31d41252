package models

import domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"

// DashboardMetrics é recalculado a cada pedido, nunca persistido
type DashboardMetrics struct {
	TotalClients      int                   `json:"totalClientes"`
	TotalBookings     int                   `json:"totalServicios"`
	ByStatus          map[domain.Status]int `json:"serviciosPorEstado"`
	PendingBookings   int                   `json:"serviciosPendientes"`
	CompletedBookings int                   `json:"serviciosCompletados"`
	MonthRevenue      float64               `json:"ingresosMes"`
	TotalRevenue      float64               `json:"ingresosTotal"`
	BookingsToday     int                   `json:"serviciosHoy"`
	ActiveTeams       int                   `json:"equiposActivos"`
}
