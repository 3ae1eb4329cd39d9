package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/variant-dashboard/schema"
	"github.com/bitmark-inc/variant-dashboard/series"
	"github.com/bitmark-inc/variant-dashboard/share/workbook"
)

var ErrUnknownLocation = fmt.Errorf("location not in datasets")

// chartSheets builds the three charts of location as worksheets
func chartSheets(dashboard series.Builder, location string) ([]workbook.Sheet, error) {
	found := false
	for _, l := range dashboard.Locations() {
		if l == location {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}

	cases := []schema.ChartSeries{}
	if c := dashboard.Cases(location); !c.Empty() {
		cases = append(cases, c)
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "location": location}).Info("export charts")
	return []workbook.Sheet{
		{Name: "Variants", Series: dashboard.Variants(location)},
		{Name: "Cases", Series: cases},
		{Name: "Vaccinations", Series: dashboard.Vaccinations(location)},
	}, nil
}
