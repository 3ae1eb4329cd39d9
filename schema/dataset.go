package schema

// column names of the source csv files
const (
	ColumnLocation              = "location"
	ColumnDate                  = "date"
	ColumnVariant               = "variant"
	ColumnNumSequences          = "num_sequences"
	ColumnNewCases              = "new_cases"
	ColumnPeopleVaccinated      = "people_vaccinated_per_hundred"
	ColumnPeopleFullyVaccinated = "people_fully_vaccinated_per_hundred"
	DateLayout                  = "2006-01-02"
)

// TableSchema - required columns of a source table
type TableSchema struct {
	Name    string
	Strings []string
	Metrics []string
}

// Columns - all required columns
func (s TableSchema) Columns() []string {
	columns := make([]string, 0, len(s.Strings)+len(s.Metrics))
	columns = append(columns, s.Strings...)
	return append(columns, s.Metrics...)
}

var (
	VariantSchema = TableSchema{
		Name:    "variants",
		Strings: []string{ColumnLocation, ColumnDate, ColumnVariant},
		Metrics: []string{ColumnNumSequences},
	}

	CaseSchema = TableSchema{
		Name:    "cases",
		Strings: []string{ColumnLocation, ColumnDate},
		Metrics: []string{ColumnNewCases},
	}

	VaccinationSchema = TableSchema{
		Name:    "vaccinations",
		Strings: []string{ColumnLocation, ColumnDate},
		Metrics: []string{ColumnPeopleVaccinated, ColumnPeopleFullyVaccinated},
	}
)
