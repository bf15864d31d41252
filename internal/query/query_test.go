package query

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/kv"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

func init() {
	log.SetOutput(io.Discard)
}

func fixture() Source {
	return Source{
		Clients: []models.Client{
			{ID: "c1", Name: "Hotel Palermo Plaza"},
			{ID: "c2", Name: "Café Tortoni"},
		},
		ServiceTypes: []models.ServiceType{
			{ID: "s1", Name: "Limpieza Básica", Price: 1000},
			{ID: "s2", Name: "Limpieza Completa", Price: 2000},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Equipo Alpha", Active: true},
			{ID: "t2", Name: "Equipo Beta", Active: false},
		},
		Bookings: []models.Booking{
			{ID: "b1", ClientID: "c1", ServiceTypeID: "s1", TeamID: "t1", Date: "2025-07-01", Time: "10:00", Status: domain.StatusCompleted},
			{ID: "b2", ClientID: "c2", ServiceTypeID: "s2", TeamID: "t1", Date: "2025-07-02", Time: "09:00", Status: domain.StatusScheduled},
		},
	}
}

func TestDetailed_JoinsNamesAndPrice(t *testing.T) {
	rows := Detailed(fixture())
	require.Len(t, rows, 2)

	assert.Equal(t, "Hotel Palermo Plaza", rows[0].ClientName)
	assert.Equal(t, "Limpieza Básica", rows[0].ServiceTypeName)
	assert.Equal(t, "Equipo Alpha", rows[0].TeamName)
	assert.Equal(t, 1000.0, rows[0].Price)
	assert.Equal(t, 2000.0, rows[1].Price)
}

func TestDetailed_DanglingReferences(t *testing.T) {
	src := fixture()
	src.Clients = nil
	src.ServiceTypes = nil
	src.Teams = nil

	rows := Detailed(src)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, MissingClient, r.ClientName)
		assert.Equal(t, MissingServiceType, r.ServiceTypeName)
		assert.Equal(t, MissingTeam, r.TeamName)
		assert.Zero(t, r.Price)
	}
}

func TestDetailedBookings_FromStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, storage.New(kv.NewMemory(), ""))
	require.NoError(t, err)

	c, err := st.Clients.Create(ctx, models.Client{Name: "Parrilla El Asador"})
	require.NoError(t, err)
	s, err := st.ServiceTypes.Create(ctx, models.ServiceType{Name: "Desengrase Profundo", Price: 35000, EstimatedMinutes: 240})
	require.NoError(t, err)
	tm, err := st.Teams.Create(ctx, models.Team{Name: "Equipo Delta", Leader: "María José"})
	require.NoError(t, err)
	_, err = st.Bookings.Create(ctx, models.Booking{
		ClientID: c.ID, ServiceTypeID: s.ID, TeamID: tm.ID,
		Date: "2025-07-01", Time: "11:00",
		Status: domain.StatusScheduled, Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)

	rows := DetailedBookings(st)
	require.Len(t, rows, 1)
	assert.Equal(t, "Parrilla El Asador", rows[0].ClientName)
	assert.Equal(t, "Desengrase Profundo", rows[0].ServiceTypeName)
	assert.Equal(t, "Equipo Delta", rows[0].TeamName)
	assert.Equal(t, 35000.0, rows[0].Price)

	// o cliente some, a linha continua
	require.NoError(t, st.Clients.Delete(ctx, c.ID))
	rows = DetailedBookings(st)
	require.Len(t, rows, 1)
	assert.Equal(t, MissingClient, rows[0].ClientName)

	assert.Len(t, BookingsOnDate(st, "2025-07-01"), 1)
	assert.Empty(t, BookingsInRange(st, "2025-07-02", "2025-07-31"))
}

func TestInRange_Inclusive(t *testing.T) {
	rows := Detailed(fixture())

	assert.Len(t, InRange(rows, "2025-07-01", "2025-07-02"), 2)
	assert.Len(t, InRange(rows, "2025-07-02", "2025-07-02"), 1)
	assert.Len(t, InRange(rows, "", "2025-07-01"), 1)
	assert.Len(t, InRange(rows, "", ""), 2)
	assert.Empty(t, InRange(rows, "2025-08-01", "2025-08-31"))
}

func TestOnDate(t *testing.T) {
	rows := OnDate(Detailed(fixture()), "2025-07-01")
	require.Len(t, rows, 1)
	assert.Equal(t, "b1", rows[0].ID)
}

func TestMetrics(t *testing.T) {
	src := fixture()
	src.Bookings = append(src.Bookings,
		models.Booking{ID: "b3", ServiceTypeID: "gone", Date: "2025-07-02", Status: domain.StatusPending},
		models.Booking{ID: "b4", ServiceTypeID: "s2", Date: "2025-06-30", Status: domain.StatusCancelled},
	)

	now := time.Date(2025, 7, 2, 15, 0, 0, 0, time.UTC)
	m := Metrics(src, now)

	assert.Equal(t, 2, m.TotalClients)
	assert.Equal(t, 4, m.TotalBookings)
	assert.Equal(t, 1, m.PendingBookings)
	assert.Equal(t, 1, m.CompletedBookings)
	assert.Equal(t, 1, m.ByStatus[domain.StatusScheduled])
	assert.Equal(t, 1, m.ByStatus[domain.StatusCancelled])
	assert.Equal(t, 0, m.ByStatus[domain.StatusInProgress])
	assert.Equal(t, 3000.0, m.MonthRevenue)
	assert.Equal(t, 5000.0, m.TotalRevenue)
	assert.Equal(t, 2, m.BookingsToday)
	assert.Equal(t, 1, m.ActiveTeams)
}

func TestMetrics_Empty(t *testing.T) {
	m := Metrics(Source{}, time.Now())

	assert.Zero(t, m.TotalClients)
	assert.Zero(t, m.TotalBookings)
	assert.Zero(t, m.PendingBookings)
	assert.Zero(t, m.CompletedBookings)
	assert.Zero(t, m.MonthRevenue)
	assert.Zero(t, m.TotalRevenue)
	assert.Zero(t, m.BookingsToday)
	assert.Zero(t, m.ActiveTeams)
	for _, s := range domain.Statuses {
		assert.Zero(t, m.ByStatus[s])
	}
}

func TestCalendar_July2025(t *testing.T) {
	rows := Detailed(fixture())
	cal := Calendar(rows, 2025, time.July)

	// 1º de julho de 2025 é terça-feira
	require.Len(t, cal.Weeks, 5)
	assert.Nil(t, cal.Weeks[0][0])
	assert.Nil(t, cal.Weeks[0][1])
	require.NotNil(t, cal.Weeks[0][2])
	assert.Equal(t, "2025-07-01", cal.Weeks[0][2].Date)
	assert.Equal(t, 1, cal.Weeks[0][2].Count)
	assert.Equal(t, 1000.0, cal.Weeks[0][2].Income)
	assert.Equal(t, 2000.0, cal.Weeks[0][3].Income)

	last := cal.Weeks[4]
	assert.Equal(t, 31, last[4].Day)
	assert.Nil(t, last[5])
	assert.Nil(t, last[6])

	assert.Equal(t, 2, cal.Total)
	assert.Equal(t, 3000.0, cal.Income)
}

func TestCalendar_February(t *testing.T) {
	cal := Calendar(nil, 2026, time.February)

	// fevereiro de 2026 começa num domingo e cabe em quatro semanas
	require.Len(t, cal.Weeks, 4)
	assert.Equal(t, 1, cal.Weeks[0][0].Day)
	assert.Equal(t, 28, cal.Weeks[3][6].Day)
	assert.Zero(t, cal.Total)
}

func TestComputeEarnings(t *testing.T) {
	rows := []models.DetailedBooking{
		{Booking: models.Booking{Status: domain.StatusCompleted}, Price: 15000},
		{Booking: models.Booking{Status: domain.StatusInProgress}, Price: 25000},
		{Booking: models.Booking{Status: domain.StatusPending}, Price: 8000},
		{Booking: models.Booking{Status: domain.StatusCancelled}, Price: 18000},
	}

	e := ComputeEarnings(rows)
	assert.Equal(t, 66000.0, e.Total)
	assert.Equal(t, 15000.0, e.Completed)
	assert.Equal(t, 33000.0, e.Pending)
	assert.Equal(t, 18000.0, e.Cancelled)
	assert.Equal(t, 1, e.CompletedCount)
	assert.Equal(t, 2, e.PendingCount)
	assert.Equal(t, 1, e.CancelledCount)
	assert.Equal(t, 4, e.Count)
}

func TestTeamStats(t *testing.T) {
	rows := Detailed(fixture())
	stats := TeamStats(rows)

	require.Len(t, stats, 1)
	assert.Equal(t, "t1", stats[0].TeamID)
	assert.Equal(t, "Equipo Alpha", stats[0].Team)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 1000.0, stats[0].Income, "só o realizado soma")
}

func TestFilterTeam(t *testing.T) {
	rows := Detailed(fixture())
	assert.Len(t, FilterTeam(rows, ""), 2)
	assert.Len(t, FilterTeam(rows, "t1"), 2)
	assert.Empty(t, FilterTeam(rows, "t2"))
}

func TestUsageCount(t *testing.T) {
	teams, types := UsageCount(fixture().Bookings)
	assert.Equal(t, 2, teams["t1"])
	assert.Equal(t, 0, teams["t2"])
	assert.Equal(t, 1, types["s1"])
	assert.Equal(t, 1, types["s2"])
}
