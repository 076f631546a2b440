package imagetable

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"remote-report/src/pkg/remotes"
)

/*
DepartmentTable plans the per-department summary table.

Rows are in ascending percentage order. The percentage column is bold and turns
WarningColor when the value reaches threshold.
*/
func DepartmentTable(rows []remotes.DepartmentSummary, labels remotes.Labels, threshold decimal.Decimal) Table {
	labels = labels.WithDefaults()

	sorted := append([]remotes.DepartmentSummary(nil), rows...)
	sort.SliceStable(sorted, func(first int, second int) bool {
		return sorted[first].RemotePercentage.LessThan(sorted[second].RemotePercentage)
	})

	columns := []column{
		{header: labels.Department, x: 0.25, align: AlignLeft},
		{header: labels.EmployeeCount, x: 2.5, align: AlignCenter},
		{header: labels.RemoteCount, x: 3.5, align: AlignCenter},
		{header: labels.RemotePercentage, x: 4.5, align: AlignCenter},
	}

	table := layout("detalle-remotos-gerencia", columns, len(sorted), defaultPoints)
	table.WidthInches, table.HeightInches = 10, 8

	for index, row := range sorted {
		color := TextColor
		if row.RemotePercentage.GreaterThanOrEqual(threshold) {
			color = WarningColor
		}

		texts := []string{
			row.Department,
			fmt.Sprintf("%d", row.EmployeeCount),
			fmt.Sprintf("%d", row.RemoteCount),
			row.RemotePercentage.String() + "%",
		}
		for col, text := range texts {
			cell := Cell{
				Row:    index,
				Col:    col,
				Text:   text,
				X:      columns[col].x,
				Y:      float64(index) + 0.5,
				Align:  columns[col].align,
				Color:  TextColor,
				Points: defaultPoints,
			}
			if col == 3 {
				cell.Bold = true
				cell.Color = color
			}
			table.Cells = append(table.Cells, cell)
		}
	}

	return table
}
