package series

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	gseries "github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/variant-dashboard/consts"
	"github.com/bitmark-inc/variant-dashboard/schema"
	"github.com/bitmark-inc/variant-dashboard/store"
	"github.com/bitmark-inc/variant-dashboard/utils"
)

const logPrefix = "series"

// vaccination chart series, in display order
var vaccinationSeries = []struct {
	metric     string
	label      string
	colorIndex int
}{
	{schema.ColumnPeopleVaccinated, "People Vaccinated", consts.VaccinatedColorIndex},
	{schema.ColumnPeopleFullyVaccinated, "People Fully Vaccinated", consts.FullyVaccinatedColorIndex},
}

// Builder - chart series of the dashboard views
type Builder interface {
	// Locations - location domain sorted for display
	Locations() []string
	// Options - dropdown entries of the location domain
	Options() []schema.Option
	// Variants - one series per tracked variant, in stacking order
	Variants(location string) []schema.ChartSeries
	// Cases - daily new cases
	Cases(location string) schema.ChartSeries
	// Vaccinations - vaccinated and fully vaccinated percentages
	Vaccinations(location string) []schema.ChartSeries
}

type builder struct {
	tables    *store.Tables
	locations []string
}

// New - series builder over loaded tables
func New(tables *store.Tables) Builder {
	return &builder{
		tables:    tables,
		locations: utils.SortLocations(tables.Locations()),
	}
}

func (b *builder) Locations() []string {
	locations := make([]string, len(b.locations))
	copy(locations, b.locations)
	return locations
}

func (b *builder) Options() []schema.Option {
	options := make([]schema.Option, len(b.locations))
	for i, l := range b.locations {
		options[i] = schema.Option{Label: l, Value: l}
	}
	return options
}

func (b *builder) Variants(location string) []schema.ChartSeries {
	if !b.tables.HasLocation(location) {
		log.WithFields(log.Fields{"prefix": logPrefix, "location": location}).Debug("unknown location")
		return []schema.ChartSeries{}
	}

	rows := filterEqual(b.tables.Variants(), schema.ColumnLocation, location)

	// every variant keeps its slot, so stacking order and colors stay aligned
	// even when a variant has no data for the location
	result := make([]schema.ChartSeries, len(consts.Variants))
	for i, variant := range consts.Variants {
		variantRows := filterEqual(rows, schema.ColumnVariant, variant)
		result[i] = sumByDate(variantRows, schema.ColumnNumSequences, variant, i)
	}
	return result
}

func (b *builder) Cases(location string) schema.ChartSeries {
	if !b.tables.HasLocation(location) {
		log.WithFields(log.Fields{"prefix": logPrefix, "location": location}).Debug("unknown location")
		return newChartSeries(location, consts.CaseColorIndex)
	}

	rows := filterEqual(b.tables.Cases(), schema.ColumnLocation, location)
	return sumByDate(rows, schema.ColumnNewCases, location, consts.CaseColorIndex)
}

func (b *builder) Vaccinations(location string) []schema.ChartSeries {
	if !b.tables.HasLocation(location) {
		log.WithFields(log.Fields{"prefix": logPrefix, "location": location}).Debug("unknown location")
		return []schema.ChartSeries{}
	}

	rows := filterEqual(b.tables.Vaccinations(), schema.ColumnLocation, location)

	result := make([]schema.ChartSeries, len(vaccinationSeries))
	for i, v := range vaccinationSeries {
		result[i] = sumByDate(rows, v.metric, v.label, v.colorIndex)
	}
	return result
}

func newChartSeries(label string, colorIndex int) schema.ChartSeries {
	color, err := consts.Color(colorIndex)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "label": label, "error": err}).Error("color of series")
	}

	return schema.ChartSeries{
		Label:      label,
		X:          []string{},
		Y:          []float64{},
		ColorIndex: colorIndex,
		Color:      color,
	}
}

func filterEqual(df dataframe.DataFrame, column, value string) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	return df.Filter(dataframe.F{
		Colname:    column,
		Comparator: gseries.Eq,
		Comparando: value,
	})
}

// sumByDate groups rows by date and sums the metric of each group. Rows
// missing the metric do not contribute, so a date with no value at all has
// no point. Only the metric column is summed.
func sumByDate(df dataframe.DataFrame, metric, label string, colorIndex int) schema.ChartSeries {
	s := newChartSeries(label, colorIndex)
	if nil != df.Err {
		log.WithFields(log.Fields{"prefix": logPrefix, "label": label, "error": df.Err}).Error("filter rows")
		return s
	}

	missing := df.Col(metric).IsNaN()
	indexes := make([]int, 0, len(missing))
	for i, m := range missing {
		if !m {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return s
	}
	if len(indexes) < df.Nrow() {
		df = df.Subset(indexes)
	}

	sumColumn := fmt.Sprintf("%s_%s", metric, dataframe.Aggregation_SUM)
	grouped := df.GroupBy(schema.ColumnDate).
		Aggregation([]dataframe.AggregationType{dataframe.Aggregation_SUM}, []string{metric})
	if nil != grouped.Err {
		log.WithFields(log.Fields{"prefix": logPrefix, "label": label, "error": grouped.Err}).Error("sum by date")
		return s
	}

	// groups come back in map order, dates in DateLayout sort chronologically
	sorted := grouped.Arrange(dataframe.Sort(schema.ColumnDate))
	if nil != sorted.Err {
		log.WithFields(log.Fields{"prefix": logPrefix, "label": label, "error": sorted.Err}).Error("sort by date")
		return s
	}

	s.X = sorted.Col(schema.ColumnDate).Records()
	s.Y = sorted.Col(sumColumn).Float()
	return s
}
