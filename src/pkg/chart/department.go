package chart

import (
	"sort"

	"remote-report/src/pkg/remotes"
)

/*
DepartmentPercentChart plans one bar per department with the remote percentage as height.

Bars are in ascending percentage order (stable for ties). The fixed reference
line marks the alert threshold.
*/
func DepartmentPercentChart(rows []remotes.DepartmentSummary, opts Options) BarChart {
	opts = opts.WithDefaults()

	sorted := append([]remotes.DepartmentSummary(nil), rows...)
	sort.SliceStable(sorted, func(first int, second int) bool {
		return sorted[first].RemotePercentage.LessThan(sorted[second].RemotePercentage)
	})

	bars := make([]Bar, 0, len(sorted))
	for _, row := range sorted {
		bars = append(bars, Bar{
			Lines: []string{row.Department},
			Value: row.RemotePercentage.InexactFloat64(),
			Text:  row.RemotePercentage.RoundBank(0).String() + "%",
		})
	}

	return BarChart{
		Name:         "remotos-por-gerencia",
		Title:        "Porcentaje de Empleados Remotos por Área",
		YLabel:       "% de Empleados Remoto",
		Bars:         bars,
		BarWidth:     0.8,
		TickRotation: 35,
		Reference: &Reference{
			Value: opts.ReferenceLine,
			Label: formatTick(opts.ReferenceLine) + "%",
			Color: WarningColor,
		},
		WidthInches:  10,
		HeightInches: 5,
		DPI:          opts.DPI,
	}
}
