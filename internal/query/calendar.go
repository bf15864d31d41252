package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// Day é uma célula do calendário mensal
type Day struct {
	Date     string                   `json:"fecha"`
	Day      int                      `json:"dia"`
	Count    int                      `json:"cantidad"`
	Income   float64                  `json:"ingresos"`
	Bookings []models.DetailedBooking `json:"servicios"`
}

// Month é a grade do mês em semanas de domingo a sábado. Células fora do mês
// ficam nil.
type Month struct {
	Year   int      `json:"anio"`
	Month  int      `json:"mes"`
	Weeks  [][]*Day `json:"semanas"`
	Total  int      `json:"total"`
	Income float64  `json:"ingresos"`
}

func Calendar(rows []models.DetailedBooking, year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]*Day, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}

	byDate := make(map[string]*Day, days)
	for d := 1; d <= days; d++ {
		day := &Day{
			Date:     fmt.Sprintf("%04d-%02d-%02d", year, int(month), d),
			Day:      d,
			Bookings: []models.DetailedBooking{},
		}
		byDate[day.Date] = day
		cells = append(cells, day)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	out := Month{Year: year, Month: int(month)}
	for _, r := range rows {
		day, ok := byDate[r.Date]
		if !ok {
			continue
		}
		day.Count++
		day.Income += r.Price
		day.Bookings = append(day.Bookings, r)
		out.Total++
		out.Income += r.Price
	}

	for _, day := range byDate {
		sort.SliceStable(day.Bookings, func(i, j int) bool {
			return day.Bookings[i].Time < day.Bookings[j].Time
		})
	}

	for i := 0; i < len(cells); i += 7 {
		out.Weeks = append(out.Weeks, cells[i:i+7])
	}
	return out
}
