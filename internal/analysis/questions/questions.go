// Package questions computes the eight report sections over a country,
// city and language table. Every function is pure; a field that fails to
// parse drops only that row's contribution.
package questions

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"countrystats/domain/dataset"

	"github.com/montanaflynn/stats"
)

// Independence windows, inclusive on both ends
const (
	ModernIndependenceFrom = 1960
	ModernIndependenceTo   = 1980
	EarlyIndependenceFrom  = 1830
	EarlyIndependenceTo    = 1850
)

// CountrySet is a set of trimmed country names
type CountrySet map[string]struct{}

// Len returns the number of countries
func (s CountrySet) Len() int {
	return len(s)
}

// Contains reports whether name is in the set
func (s CountrySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending byte order
func (s CountrySet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountriesEndingInA collects distinct country names whose last character
// is 'a' or 'A'
func CountriesEndingInA(ds *dataset.Dataset) CountrySet {
	set := make(CountrySet)
	for _, row := range records(ds) {
		name := row.Get(dataset.FieldCountryName)
		last, _ := utf8.DecodeLastRuneInString(name)
		if last == 'a' || last == 'A' {
			set[name] = struct{}{}
		}
	}
	return set
}

// QuestionA reports how many distinct countries end in 'a'. The set is
// returned for QuestionH.
func QuestionA(ds *dataset.Dataset) (Section, CountrySet) {
	set := CountriesEndingInA(ds)
	return Section{Label: "a", Lines: []string{strconv.Itoa(set.Len())}}, set
}

// CityPopulations groups by city name keeping the largest integer population
func CityPopulations(ds *dataset.Dataset) []Entry[int64] {
	agg := newAggregate[int64]()
	for _, row := range records(ds) {
		city := row.Get(dataset.FieldCityName)
		if pop, ok := parseInt(row.Raw(dataset.FieldCityPopulation)); ok {
			agg.max(city, pop)
		}
	}
	return agg.ranked()
}

// QuestionB lists the n most populous cities
func QuestionB(ds *dataset.Dataset, n int) Section {
	return Section{Label: "b", Lines: formatLines(top(CityPopulations(ds), n), formatInt)}
}

// CountryLandMasses groups by country name keeping the largest integer land mass
func CountryLandMasses(ds *dataset.Dataset) []Entry[int64] {
	agg := newAggregate[int64]()
	for _, row := range records(ds) {
		country := row.Get(dataset.FieldCountryName)
		if lm, ok := parseInt(row.Raw(dataset.FieldLandMass)); ok {
			agg.max(country, lm)
		}
	}
	return agg.ranked()
}

// QuestionC lists the n largest countries by land mass
func QuestionC(ds *dataset.Dataset, n int) Section {
	return Section{Label: "c", Lines: formatLines(top(CountryLandMasses(ds), n), formatInt)}
}

// IndependentBetween collects distinct countries whose integer IndepYear
// lies in [from, to]. Empty or non-numeric years are ignored.
func IndependentBetween(ds *dataset.Dataset, from, to int64) CountrySet {
	set := make(CountrySet)
	for _, row := range records(ds) {
		year, ok := parseInt(row.Raw(dataset.FieldIndepYear))
		if !ok || year < from || year > to {
			continue
		}
		set[row.Get(dataset.FieldCountryName)] = struct{}{}
	}
	return set
}

// QuestionD counts countries independent between 1960 and 1980
func QuestionD(ds *dataset.Dataset) Section {
	set := IndependentBetween(ds, ModernIndependenceFrom, ModernIndependenceTo)
	return Section{Label: "d", Lines: []string{strconv.Itoa(set.Len())}}
}

// QuestionE lists countries independent between 1830 and 1850
func QuestionE(ds *dataset.Dataset) Section {
	set := IndependentBetween(ds, EarlyIndependenceFrom, EarlyIndependenceTo)
	return Section{Label: "e", Lines: []string{strings.Join(set.Sorted(), ", ")}}
}

// AfricanLifeExpectancy groups African rows by country keeping the highest
// life expectancy. Continent must trim to exactly "Africa".
func AfricanLifeExpectancy(ds *dataset.Dataset) []Entry[float64] {
	agg := newAggregate[float64]()
	for _, row := range records(ds) {
		if row.Get(dataset.FieldContinent) != "Africa" {
			continue
		}
		if le, ok := parseFloat(row.Raw(dataset.FieldLifeExpectancy)); ok {
			agg.max(row.Get(dataset.FieldCountryName), le)
		}
	}
	return agg.ranked()
}

// QuestionF lists the n African countries with the highest life expectancy
func QuestionF(ds *dataset.Dataset, n int) Section {
	return Section{Label: "f", Lines: formatLines(top(AfricanLifeExpectancy(ds), n), formatNativeFloat)}
}

// LanguageRanking selects how QuestionG ranks languages
type LanguageRanking string

const (
	// RankNormalized ranks each language's share of the grand total, in percent
	RankNormalized LanguageRanking = "normalized"
	// RankRawSum ranks the summed Percentage column directly.
	//
	// Deprecated: shares from RankNormalized are comparable across inputs.
	RankRawSum LanguageRanking = "raw"
)

// languageTotals sums Percentage per language over rows where both the
// language and the percentage are non-blank
func languageTotals(ds *dataset.Dataset) *aggregate[float64] {
	agg := newAggregate[float64]()
	for _, row := range records(ds) {
		lang := row.Get(dataset.FieldLanguage)
		perc := row.Get(dataset.FieldPercentage)
		if lang == "" || perc == "" {
			continue
		}
		if v, ok := parseFloat(perc); ok {
			agg.add(lang, v)
		}
	}
	return agg
}

// LanguageShares returns every language with its share of the grand total
// of summed percentages, times 100, ranked descending. A zero grand total
// yields no languages.
func LanguageShares(ds *dataset.Dataset) []Entry[float64] {
	agg := languageTotals(ds)
	if agg.size() == 0 {
		return nil
	}

	total, err := stats.Sum(agg.values())
	if err != nil || total == 0 {
		return nil
	}

	shares := make([]Entry[float64], agg.size())
	for i, e := range agg.entries {
		shares[i] = Entry[float64]{Key: e.Key, Value: (e.Value / total) * 100}
	}
	sortDescending(shares)
	return shares
}

// LanguageRawTotals returns the summed Percentage per language, ranked descending
func LanguageRawTotals(ds *dataset.Dataset) []Entry[float64] {
	return languageTotals(ds).ranked()
}

// QuestionG lists the n leading languages as "Name: 12.34%"
func QuestionG(ds *dataset.Dataset, n int, ranking LanguageRanking) Section {
	var entries []Entry[float64]
	switch ranking {
	case RankRawSum:
		entries = LanguageRawTotals(ds)
	default:
		entries = LanguageShares(ds)
	}
	return Section{Label: "g", Lines: formatLines(top(entries, n), formatPercent)}
}

// QuestionH re-presents the set from QuestionA sorted and comma separated
func QuestionH(countries CountrySet) Section {
	return Section{Label: "h", Lines: []string{strings.Join(countries.Sorted(), ", ")}}
}

func records(ds *dataset.Dataset) []dataset.Record {
	if ds == nil {
		return nil
	}
	return ds.Records
}
