package dataset

import "strings"

// Column names read from the country/city/language table
const (
	FieldCountryName    = "CountryName"
	FieldCityName       = "CityName"
	FieldCityPopulation = "CityPopulation"
	FieldLandMass       = "LandMass"
	FieldIndepYear      = "IndepYear"
	FieldContinent      = "Continent"
	FieldLifeExpectancy = "LifeExpectancy"
	FieldLanguage       = "Language"
	FieldPercentage     = "Percentage"
)

// Record is one input row keyed by column name. Values are kept as read.
type Record map[string]string

// Get returns the trimmed value of field, or "" when the column is absent
func (r Record) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// Raw returns the untrimmed value of field
func (r Record) Raw(field string) string {
	return r[field]
}

// Dataset is the full in-memory table for one run. It is not modified
// after loading.
type Dataset struct {
	Source  string   // path the rows were read from
	Headers []string // column headers in file order
	Records []Record
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// IsEmpty reports whether the dataset holds no records
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// HasColumn reports whether header names the given column
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns lists which of the given columns the header lacks
func (d *Dataset) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ReportColumns are the columns read by the eight report questions
var ReportColumns = []string{
	FieldCountryName,
	FieldCityName,
	FieldCityPopulation,
	FieldLandMass,
	FieldIndepYear,
	FieldContinent,
	FieldLifeExpectancy,
	FieldLanguage,
	FieldPercentage,
}
