package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordGet(t *testing.T) {
	r := Record{FieldCountryName: "  Angola \t", FieldIndepYear: ""}

	assert.Equal(t, "Angola", r.Get(FieldCountryName))
	assert.Equal(t, "  Angola \t", r.Raw(FieldCountryName))
	assert.Equal(t, "", r.Get(FieldIndepYear))
	assert.Equal(t, "", r.Get(FieldLanguage))
}

func TestDatasetColumns(t *testing.T) {
	ds := &Dataset{Headers: []string{FieldCountryName, FieldCityName}}

	assert.True(t, ds.HasColumn(FieldCityName))
	assert.False(t, ds.HasColumn(FieldLanguage))
	assert.Equal(t, []string{FieldLanguage, FieldPercentage},
		ds.MissingColumns(FieldCountryName, FieldLanguage, FieldPercentage))
}

func TestNilDataset(t *testing.T) {
	var ds *Dataset
	assert.Equal(t, 0, ds.Len())
	assert.True(t, ds.IsEmpty())
	assert.False(t, ds.HasColumn(FieldCountryName))
}
