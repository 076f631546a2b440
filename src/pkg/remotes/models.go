package remotes

import (
	"time"

	"github.com/shopspring/decimal"
)

/*
RemoteRecord is one employee working remotely today.

Index is the dense 0-based position after the loader sorted the collection.
*/
type RemoteRecord struct {
	Index      int    `json:"index"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Unit       string `json:"unit"`
}

/*
DepartmentSummary is today's remote share for one department.

RemotePercentage is on a 0-100 scale.
*/
type DepartmentSummary struct {
	Department       string          `json:"department"`
	EmployeeCount    int             `json:"employee_count"`
	RemoteCount      int             `json:"remote_count"`
	RemotePercentage decimal.Decimal `json:"remote_percentage"`
}

// FiveDayRecord is one (employee, date) pair inside the trailing window.
type FiveDayRecord struct {
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
}

// FiveDayDepartmentSummary is the number of remote employees on one date of the window.
type FiveDayDepartmentSummary struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Dataset is everything one report run reads from the database.
type Dataset struct {
	Today         []RemoteRecord             `json:"today"`
	Departments   []DepartmentSummary        `json:"departments"`
	FiveDay       []FiveDayRecord            `json:"five_day"`
	FiveDayByDate []FiveDayDepartmentSummary `json:"five_day_by_date"`
}
