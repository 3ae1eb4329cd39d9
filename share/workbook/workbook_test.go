package workbook

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/bitmark-inc/variant-dashboard/schema"
)

func TestWrite(t *testing.T) {
	sheets := []Sheet{
		{
			Name: "Variants",
			Series: []schema.ChartSeries{
				{Label: "Alpha", X: []string{"2021-01-01", "2021-01-15"}, Y: []float64{8, 7}},
				{Label: "Beta", X: []string{}, Y: []float64{}},
				{Label: "Delta", X: []string{"2021-01-08"}, Y: []float64{4}},
			},
		},
		{
			Name:   "Cases",
			Series: []schema.ChartSeries{},
		},
	}

	var buf bytes.Buffer
	err := Write(&buf, sheets)
	if !assert.Nil(t, err, "write workbook") {
		return
	}

	f, err := excelize.OpenReader(&buf)
	if !assert.Nil(t, err, "open workbook") {
		return
	}
	defer f.Close()

	assert.Equal(t, []string{"Variants", "Cases"}, f.GetSheetList())

	rows, err := f.GetRows("Variants")
	assert.Nil(t, err)
	assert.Equal(t, [][]string{
		{"Series", "Date", "Value"},
		{"Alpha", "2021-01-01", "8"},
		{"Alpha", "2021-01-15", "7"},
		{"Delta", "2021-01-08", "4"},
	}, rows)

	rows, err = f.GetRows("Cases")
	assert.Nil(t, err)
	assert.Equal(t, [][]string{{"Series", "Date", "Value"}}, rows)
}

func TestWriteWithoutSheet(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil)
	assert.Equal(t, ErrNoSheet, err)
	assert.Equal(t, 0, buf.Len())
}

func TestWriteMalformedSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Sheet{
		{
			Name: "Cases",
			Series: []schema.ChartSeries{
				{Label: "US", X: []string{"2021-01-01"}, Y: []float64{}},
			},
		},
	})
	assert.True(t, errors.Is(err, ErrMalformedChart), "wrong error")
}
