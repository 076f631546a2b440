package remotes

import (
	"context"
	"fmt"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/database"
)

// Loader runs the report queries against an injected database handle.
type Loader struct {
	db database.Querier
}

func NewLoader(db database.Querier) *Loader {
	return &Loader{db: db}
}

/*
Load runs the four report queries and returns the normalized Dataset.

Names of today's records are title-cased and the collection is sorted by
(department, unit, employee id) and re-indexed. Any failure is reported as a
single error built on ErrDataRetrieval; no partial dataset is returned.
*/
func (l *Loader) Load(ctx context.Context) (dataset Dataset, e *xerr.Error) {
	tl.Log(tl.Info, palette.Blue, "Querying %s", "remote work records")

	dataset, err := l.load(ctx)
	if err != nil {
		e = xerr.NewError(fmt.Errorf("%w: %w", ErrDataRetrieval, err), "Unable to retrieve remote work records", err.Error())
		return Dataset{}, e
	}

	tl.Log(
		tl.Info1, palette.Green, "Remote work data retrieved - %v remote employees today",
		len(dataset.Today),
	)
	return dataset, nil
}

func (l *Loader) load(ctx context.Context) (dataset Dataset, err error) {
	today, err := queryTable(ctx, l.db, Cfg.TodayQuery, bindRemoteRecord)
	if err != nil {
		return dataset, fmt.Errorf("today's remote records: %w", err)
	}

	departments, err := queryTable(ctx, l.db, Cfg.DepartmentQuery, bindDepartmentSummary)
	if err != nil {
		return dataset, fmt.Errorf("department summary: %w", err)
	}

	fiveDay, err := queryTable(ctx, l.db, Cfg.FiveDayQuery, bindFiveDayRecord)
	if err != nil {
		return dataset, fmt.Errorf("five day detail: %w", err)
	}

	fiveDayByDate, err := queryTable(ctx, l.db, Cfg.FiveDayByDateQuery, bindFiveDayDepartmentSummary)
	if err != nil {
		return dataset, fmt.Errorf("five day summary: %w", err)
	}

	for index := range today {
		today[index].Name = ProperName(today[index].Name)
	}
	SortRoster(today)

	dataset = Dataset{
		Today:         today,
		Departments:   departments,
		FiveDay:       fiveDay,
		FiveDayByDate: fiveDayByDate,
	}
	return dataset, nil
}

// binder maps configured column names to the fields of record that receive them.
type binder[T any] func(record *T) map[string]any

func bindRemoteRecord(record *RemoteRecord) map[string]any {
	return map[string]any{
		Cfg.EmployeeIDColumn: &record.EmployeeID,
		Cfg.NameColumn:       &record.Name,
		Cfg.DepartmentColumn: &record.Department,
		Cfg.UnitColumn:       &record.Unit,
	}
}

func bindDepartmentSummary(record *DepartmentSummary) map[string]any {
	return map[string]any{
		Cfg.DepartmentColumn:       &record.Department,
		Cfg.EmployeeCountColumn:    &record.EmployeeCount,
		Cfg.RemoteCountColumn:      &record.RemoteCount,
		Cfg.RemotePercentageColumn: &record.RemotePercentage,
	}
}

func bindFiveDayRecord(record *FiveDayRecord) map[string]any {
	return map[string]any{
		Cfg.EmployeeIDColumn: &record.EmployeeID,
		Cfg.DateColumn:       &record.Date,
	}
}

func bindFiveDayDepartmentSummary(record *FiveDayDepartmentSummary) map[string]any {
	return map[string]any{
		Cfg.DateColumn:       &record.Date,
		Cfg.DailyCountColumn: &record.Count,
	}
}

/*
queryTable runs query and scans every row into a new T.

The result must contain every column bind names; other columns are read and dropped.
*/
func queryTable[T any](ctx context.Context, db database.Querier, query string, bind binder[T]) (records []T, err error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	var probe T
	err = validateColumns(columns, bind(&probe))
	if err != nil {
		return nil, err
	}

	records = make([]T, 0)
	for rows.Next() {
		var record T
		targets := lowerKeys(bind(&record))

		destinations := make([]any, len(columns))
		for index, column := range columns {
			target, known := targets[strings.ToLower(column)]
			if !known {
				target = new(any)
			}
			destinations[index] = target
		}

		scanErr := rows.Scan(destinations...)
		if scanErr != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records), scanErr)
		}
		records = append(records, record)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return records, nil
}

// validateColumns checks that every required column is present in the result.
func validateColumns(columns []string, required map[string]any) error {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[strings.ToLower(column)] = true
	}

	missing := make([]string, 0)
	for name := range required {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (got %s)", errMissingColumn, strings.Join(sortedCopy(missing), ", "), strings.Join(columns, ", "))
	}
	return nil
}

func lowerKeys(targets map[string]any) map[string]any {
	lowered := make(map[string]any, len(targets))
	for name, target := range targets {
		lowered[strings.ToLower(name)] = target
	}
	return lowered
}
