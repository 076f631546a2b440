package remotes

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

/*
Config holds the four report queries and the names of the columns they return.

Column names are matched case-insensitively against the query result.
*/
type Config struct {
	TodayQuery         string `json:"today_query,omitempty"`
	DepartmentQuery    string `json:"department_query,omitempty"`
	FiveDayQuery       string `json:"five_day_query,omitempty"`
	FiveDayByDateQuery string `json:"five_day_by_date_query,omitempty"`

	EmployeeIDColumn       string `json:"employee_id_column,omitempty"`
	NameColumn             string `json:"name_column,omitempty"`
	DepartmentColumn       string `json:"department_column,omitempty"`
	UnitColumn             string `json:"unit_column,omitempty"`
	EmployeeCountColumn    string `json:"employee_count_column,omitempty"`
	RemoteCountColumn      string `json:"remote_count_column,omitempty"`
	RemotePercentageColumn string `json:"remote_percentage_column,omitempty"`
	DateColumn             string `json:"date_column,omitempty"`
	DailyCountColumn       string `json:"daily_count_column,omitempty"`

	Labels Labels `json:"labels,omitempty"`
}

const defaultTodayQuery = `
	SELECT e.employee_id, e.full_name AS name, e.department, COALESCE(e.unit, '') AS unit
	FROM employees e
	WHERE EXISTS (
		SELECT 1 FROM remote_sessions s
		WHERE s.employee_id = e.employee_id AND s.session_date = CURRENT_DATE
	)`

const defaultDepartmentQuery = `
	SELECT
		e.department,
		COUNT(DISTINCT e.employee_id) AS employee_count,
		COUNT(DISTINCT s.employee_id) AS remote_count,
		COALESCE(ROUND(100.0 * COUNT(DISTINCT s.employee_id) / NULLIF(COUNT(DISTINCT e.employee_id), 0), 1), 0) AS remote_percentage
	FROM employees e
	LEFT JOIN remote_sessions s
		ON s.employee_id = e.employee_id AND s.session_date = CURRENT_DATE
	WHERE e.active
	GROUP BY e.department`

const defaultFiveDayQuery = `
	SELECT DISTINCT s.employee_id, s.session_date AS date
	FROM remote_sessions s
	WHERE s.session_date IN (
		SELECT DISTINCT session_date FROM remote_sessions
		WHERE session_date <= CURRENT_DATE
		ORDER BY session_date DESC
		LIMIT 5
	)`

const defaultFiveDayByDateQuery = `
	SELECT s.session_date AS date, COUNT(DISTINCT s.employee_id) AS remote_count
	FROM remote_sessions s
	WHERE s.session_date IN (
		SELECT DISTINCT session_date FROM remote_sessions
		WHERE session_date <= CURRENT_DATE
		ORDER BY session_date DESC
		LIMIT 5
	)
	GROUP BY s.session_date`

func DefaultValueConfig() Config {
	return Config{
		TodayQuery:         defaultTodayQuery,
		DepartmentQuery:    defaultDepartmentQuery,
		FiveDayQuery:       defaultFiveDayQuery,
		FiveDayByDateQuery: defaultFiveDayByDateQuery,

		EmployeeIDColumn:       "employee_id",
		NameColumn:             "name",
		DepartmentColumn:       "department",
		UnitColumn:             "unit",
		EmployeeCountColumn:    "employee_count",
		RemoteCountColumn:      "remote_count",
		RemotePercentageColumn: "remote_percentage",
		DateColumn:             "date",
		DailyCountColumn:       "remote_count",

		Labels: DefaultLabels(),
	}
}

var Cfg Config = DefaultValueConfig()

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use the defaults.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "remotes", "not provided", "default queries")
		return
	}

	Cfg = *localConfig
	tl.ApplyDefaults(&Cfg, DefaultValueConfig(), func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})
	Cfg.Labels = Cfg.Labels.WithDefaults()

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "remotes", "provided", "local queries")
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s remotes configuration", config.GetPackageName()), Cfg)
}
