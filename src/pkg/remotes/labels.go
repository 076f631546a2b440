package remotes

// Labels are the column titles shown in the rendered tables and in the workbook.
type Labels struct {
	EmployeeID       string `json:"employee_id,omitempty"`
	Name             string `json:"name,omitempty"`
	Department       string `json:"department,omitempty"`
	Unit             string `json:"unit,omitempty"`
	EmployeeCount    string `json:"employee_count,omitempty"`
	RemoteCount      string `json:"remote_count,omitempty"`
	RemotePercentage string `json:"remote_percentage,omitempty"`
	FiveDayCount     string `json:"five_day_count,omitempty"`
	Date             string `json:"date,omitempty"`
	DailyCount       string `json:"daily_count,omitempty"`
}

func DefaultLabels() Labels {
	return Labels{
		EmployeeID:       "Rut",
		Name:             "Nombre",
		Department:       "Gerencia",
		Unit:             "Unidad",
		EmployeeCount:    "Empleados",
		RemoteCount:      "Remotos",
		RemotePercentage: "% Remotos",
		FiveDayCount:     "Remoto 5 Días",
		Date:             "Fecha",
		DailyCount:       "CantidadRemotos",
	}
}

// WithDefaults returns a copy where every empty label is taken from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	defaults := DefaultLabels()
	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
	}
	fill(&l.EmployeeID, defaults.EmployeeID)
	fill(&l.Name, defaults.Name)
	fill(&l.Department, defaults.Department)
	fill(&l.Unit, defaults.Unit)
	fill(&l.EmployeeCount, defaults.EmployeeCount)
	fill(&l.RemoteCount, defaults.RemoteCount)
	fill(&l.RemotePercentage, defaults.RemotePercentage)
	fill(&l.FiveDayCount, defaults.FiveDayCount)
	fill(&l.Date, defaults.Date)
	fill(&l.DailyCount, defaults.DailyCount)
	return l
}
