package report

import (
	"fmt"
	"path/filepath"
	"time"

	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/workbook"
)

const (
	SheetToday       = "Usuarios Remotos Hoy"
	SheetDepartments = "Remotos por Gerencia"
	SheetFiveDay     = "Detalle 5 Dias"
	SheetFiveDayDate = "Remotos 5 Dias"
)

// WorkbookPath is <output_dir>/<prefix>-YYYY-MM-DD.xlsx.
func WorkbookPath(cfg Config, day time.Time) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s.xlsx", cfg.FilePrefix, day.Format(time.DateOnly)))
}

// Sheets lays the four collections out as workbook sheets, in attachment order.
func Sheets(dataset remotes.Dataset, labels remotes.Labels, dateLayout string) []workbook.Sheet {
	labels = labels.WithDefaults()

	today := workbook.Sheet{
		Name:   SheetToday,
		Header: []string{labels.EmployeeID, labels.Name, labels.Department, labels.Unit},
		Rows:   make([][]any, 0, len(dataset.Today)),
	}
	for _, record := range dataset.Today {
		today.Rows = append(today.Rows, []any{record.EmployeeID, record.Name, record.Department, record.Unit})
	}

	departments := workbook.Sheet{
		Name:   SheetDepartments,
		Header: []string{labels.Department, labels.EmployeeCount, labels.RemoteCount, labels.RemotePercentage},
		Rows:   make([][]any, 0, len(dataset.Departments)),
	}
	for _, row := range dataset.Departments {
		departments.Rows = append(departments.Rows, []any{
			row.Department, row.EmployeeCount, row.RemoteCount, row.RemotePercentage.InexactFloat64(),
		})
	}

	fiveDay := workbook.Sheet{
		Name:   SheetFiveDay,
		Header: []string{labels.EmployeeID, labels.Date},
		Rows:   make([][]any, 0, len(dataset.FiveDay)),
	}
	for _, record := range dataset.FiveDay {
		fiveDay.Rows = append(fiveDay.Rows, []any{record.EmployeeID, record.Date.Format(dateLayout)})
	}

	fiveDayByDate := workbook.Sheet{
		Name:   SheetFiveDayDate,
		Header: []string{labels.Date, labels.DailyCount},
		Rows:   make([][]any, 0, len(dataset.FiveDayByDate)),
	}
	for _, row := range dataset.FiveDayByDate {
		fiveDayByDate.Rows = append(fiveDayByDate.Rows, []any{row.Date.Format(dateLayout), row.Count})
	}

	return []workbook.Sheet{today, departments, fiveDay, fiveDayByDate}
}
