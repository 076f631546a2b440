package chart

import (
	"sort"
	"strconv"
	"time"

	"remote-report/src/pkg/remotes"
)

var weekdays = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayName returns the Spanish weekday of day.
func WeekdayName(day time.Time) string {
	return weekdays[day.Weekday()]
}

/*
FiveDayCountChart plans one half-width bar per date of the trailing window.

Bars are in ascending date order. Each tick label has two lines: weekday and date.
*/
func FiveDayCountChart(rows []remotes.FiveDayDepartmentSummary, opts Options) BarChart {
	opts = opts.WithDefaults()

	sorted := append([]remotes.FiveDayDepartmentSummary(nil), rows...)
	sort.SliceStable(sorted, func(first int, second int) bool {
		return sorted[first].Date.Before(sorted[second].Date)
	})

	bars := make([]Bar, 0, len(sorted))
	for _, row := range sorted {
		bars = append(bars, Bar{
			Lines: []string{WeekdayName(row.Date), row.Date.Format(opts.DateLayout)},
			Value: float64(row.Count),
			Text:  strconv.Itoa(row.Count),
		})
	}

	return BarChart{
		Name:         "remotos-5-dias",
		Title:        "Empleados Remotos en los Últimos 5 Días",
		YLabel:       "Cantidad de Empleados Remotos",
		Bars:         bars,
		BarWidth:     0.5,
		WidthInches:  10,
		HeightInches: 5,
		DPI:          opts.DPI,
	}
}
