package remotes

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProperName title-cases an employee name: "MARIA JOSÉ PÉREZ" -> "Maria José Pérez".
func ProperName(name string) string {
	return cases.Title(language.Spanish).String(name)
}

/*
SortRoster stable-sorts records by (department, unit, employee id) and rewrites
Index so it matches the new 0-based position.
*/
func SortRoster(records []RemoteRecord) {
	sort.SliceStable(records, func(first int, second int) bool {
		a, b := records[first], records[second]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.EmployeeID < b.EmployeeID
	})

	for index := range records {
		records[index].Index = index
	}
}

func sortedCopy(values []string) []string {
	copied := append([]string(nil), values...)
	sort.Strings(copied)
	return copied
}
