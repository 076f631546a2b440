package imagetable

import (
	"sort"
	"strconv"

	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/util"
)

const (
	rosterBodyPoints   = 8
	rosterHeaderPoints = 10
)

// RankedRecord is a roster entry with its count of remote days in the trailing window.
type RankedRecord struct {
	remotes.RemoteRecord
	FiveDayCount int `json:"five_day_count"`
}

// CountFiveDay returns how many window records each employee id has.
func CountFiveDay(fiveDay []remotes.FiveDayRecord) map[string]int {
	counts := make(map[string]int, len(fiveDay))
	for _, record := range fiveDay {
		counts[record.EmployeeID]++
	}
	return counts
}

/*
RankRoster attaches the five-day count to every roster entry and stable-sorts
ascending by that count. Employees absent from the window get zero.
*/
func RankRoster(roster []remotes.RemoteRecord, fiveDay []remotes.FiveDayRecord) []RankedRecord {
	counts := CountFiveDay(fiveDay)

	ranked := make([]RankedRecord, 0, len(roster))
	for _, record := range roster {
		ranked = append(ranked, RankedRecord{RemoteRecord: record, FiveDayCount: counts[record.EmployeeID]})
	}

	sort.SliceStable(ranked, func(first int, second int) bool {
		return ranked[first].FiveDayCount < ranked[second].FiveDayCount
	})
	return ranked
}

// RosterTable plans the table of today's remote employees with their five-day counts.
func RosterTable(roster []remotes.RemoteRecord, fiveDay []remotes.FiveDayRecord, labels remotes.Labels) Table {
	labels = labels.WithDefaults()
	ranked := RankRoster(roster, fiveDay)

	columns := []column{
		{header: labels.EmployeeID, x: 0.4, align: AlignCenter},
		{header: labels.Name, x: 1.55, align: AlignCenter},
		{header: labels.Department, x: 3, align: AlignCenter},
		{header: labels.Unit, x: 4.5, align: AlignCenter},
		{header: labels.FiveDayCount, x: 5.65, align: AlignCenter},
	}

	table := layout("detalle-remotos-hoy", columns, len(ranked), rosterHeaderPoints)
	table.WidthInches, table.HeightInches = 10, 10

	// long rosters shrink the body text so rows do not overlap
	bodyPoints := rosterBodyPoints
	if len(ranked) > 40 {
		bodyPoints = util.Clamp(rosterBodyPoints*40/len(ranked), 4, rosterBodyPoints)
	}

	for index, record := range ranked {
		texts := []string{
			record.EmployeeID,
			record.Name,
			record.Department,
			record.Unit,
			strconv.Itoa(record.FiveDayCount),
		}
		for col, text := range texts {
			table.Cells = append(table.Cells, Cell{
				Row:    index,
				Col:    col,
				Text:   text,
				X:      columns[col].x,
				Y:      float64(index) + 0.5,
				Align:  AlignCenter,
				Bold:   col == 0 || col == 4,
				Color:  TextColor,
				Points: float64(bodyPoints),
			})
		}
	}

	return table
}
