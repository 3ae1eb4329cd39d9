package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/variant-dashboard/consts"
	"github.com/bitmark-inc/variant-dashboard/external/owid"
	"github.com/bitmark-inc/variant-dashboard/schema"
)

const logPrefix = "store"

var (
	ErrMissingSource  = fmt.Errorf("missing dataset source")
	ErrReadDataset    = fmt.Errorf("read dataset fail")
	ErrSchemaMismatch = fmt.Errorf("dataset schema mismatch")
)

// Sources - where the three datasets are retrieved from
type Sources struct {
	Variants     owid.Source
	Cases        owid.Source
	Vaccinations owid.Source
}

// Tables - datasets held in memory for the lifetime of the process. Frames
// are never modified after Parse returns; every gota operation applied by
// readers produces a new frame.
type Tables struct {
	variants     dataframe.DataFrame
	cases        dataframe.DataFrame
	vaccinations dataframe.DataFrame
	locations    []string
	locationSet  map[string]struct{}
}

// Variants - variant table, restricted to tracked variants
func (t *Tables) Variants() dataframe.DataFrame {
	return t.variants
}

// Cases - case table, restricted to the location domain
func (t *Tables) Cases() dataframe.DataFrame {
	return t.cases
}

// Vaccinations - vaccination table, restricted to the location domain
func (t *Tables) Vaccinations() dataframe.DataFrame {
	return t.vaccinations
}

// Locations - location domain in order of first appearance in the variant
// table
func (t *Tables) Locations() []string {
	locations := make([]string, len(t.locations))
	copy(locations, t.locations)
	return locations
}

// HasLocation - exact match against the location domain
func (t *Tables) HasLocation(location string) bool {
	_, ok := t.locationSet[location]
	return ok
}

// Load - fetch all datasets in parallel and parse them. The first failure
// cancels the remaining fetches.
func Load(ctx context.Context, sources Sources) (*Tables, error) {
	if sources.Variants == nil || sources.Cases == nil || sources.Vaccinations == nil {
		return nil, ErrMissingSource
	}

	var variants, cases, vaccinations []byte
	g, ctx := errgroup.WithContext(ctx)

	fetch := func(name string, s owid.Source, dst *[]byte) {
		g.Go(func() error {
			start := time.Now()
			data, err := s.Fetch(ctx)
			if nil != err {
				return fmt.Errorf("fetch %s dataset: %w", name, err)
			}
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"dataset": name,
				"bytes":   len(data),
				"elapsed": time.Since(start),
			}).Info("dataset fetched")
			*dst = data
			return nil
		})
	}

	fetch(schema.VariantSchema.Name, sources.Variants, &variants)
	fetch(schema.CaseSchema.Name, sources.Cases, &cases)
	fetch(schema.VaccinationSchema.Name, sources.Vaccinations, &vaccinations)

	if err := g.Wait(); nil != err {
		return nil, err
	}

	return Parse(bytes.NewReader(variants), bytes.NewReader(cases), bytes.NewReader(vaccinations))
}

// Parse - read the three csv datasets and apply load time filtering:
// incomplete rows are dropped, the variant table keeps tracked variants only
// and the other two tables keep the locations present in the variant table.
func Parse(variants, cases, vaccinations io.Reader) (*Tables, error) {
	v, err := readTable(variants, schema.VariantSchema)
	if nil != err {
		return nil, err
	}

	c, err := readTable(cases, schema.CaseSchema)
	if nil != err {
		return nil, err
	}

	vac, err := readTable(vaccinations, schema.VaccinationSchema)
	if nil != err {
		return nil, err
	}

	// only the variant table requires its metric, the other tables are
	// sparse and missing values are skipped per series
	v = dropIncomplete(v, schema.VariantSchema, true)
	c = dropIncomplete(c, schema.CaseSchema, false)
	vac = dropIncomplete(vac, schema.VaccinationSchema, false)

	if v.Nrow() > 0 {
		v = v.Filter(dataframe.F{
			Colname:    schema.ColumnVariant,
			Comparator: series.In,
			Comparando: consts.Variants,
		})
		if nil != v.Err {
			return nil, fmt.Errorf("%w: filter variants: %s", ErrReadDataset, v.Err)
		}
	}

	locations := unique(v.Col(schema.ColumnLocation).Records())
	locationSet := make(map[string]struct{}, len(locations))
	for _, l := range locations {
		locationSet[l] = struct{}{}
	}

	c = keepLocations(c, locationSet)
	vac = keepLocations(vac, locationSet)

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"locations":    len(locations),
		"variants":     v.Nrow(),
		"cases":        c.Nrow(),
		"vaccinations": vac.Nrow(),
	}).Info("datasets loaded")

	return &Tables{
		variants:     v,
		cases:        c,
		vaccinations: vac,
		locations:    locations,
		locationSet:  locationSet,
	}, nil
}

func readTable(r io.Reader, s schema.TableSchema) (dataframe.DataFrame, error) {
	types := make(map[string]series.Type)
	for _, column := range s.Strings {
		types[column] = series.String
	}
	for _, column := range s.Metrics {
		types[column] = series.Float
	}

	data, err := ioutil.ReadAll(r)
	if nil != err {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %s", ErrReadDataset, s.Name, err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data), dataframe.WithTypes(types))
	if nil != df.Err {
		// gota refuses a header without records, which is still a valid table
		empty, ok := emptyTable(data, types)
		if !ok {
			log.WithFields(log.Fields{"prefix": logPrefix, "dataset": s.Name, "error": df.Err}).Error("read csv")
			return df, fmt.Errorf("%w: %s: %s", ErrReadDataset, s.Name, df.Err)
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "dataset": s.Name}).Warn("dataset has no records")
		df = empty
	}

	names := make(map[string]struct{})
	for _, name := range df.Names() {
		names[name] = struct{}{}
	}
	for _, column := range s.Columns() {
		if _, ok := names[column]; !ok {
			return df, fmt.Errorf("%w: %s has no column %q", ErrSchemaMismatch, s.Name, column)
		}
	}

	df = df.Select(s.Columns())
	if nil != df.Err {
		return df, fmt.Errorf("%w: %s: %s", ErrReadDataset, s.Name, df.Err)
	}
	return df, nil
}

// emptyTable builds a frame without rows from data holding only a header line
func emptyTable(data []byte, types map[string]series.Type) (dataframe.DataFrame, bool) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if nil != err || len(records) != 1 || len(records[0]) == 0 {
		return dataframe.DataFrame{}, false
	}

	columns := make([]series.Series, len(records[0]))
	for i, name := range records[0] {
		t, ok := types[name]
		if !ok {
			t = series.String
		}
		columns[i] = series.New([]string{}, t, name)
	}

	df := dataframe.New(columns...)
	if nil != df.Err {
		return df, false
	}
	return df, true
}

// dropIncomplete removes rows with an empty identifying column or a date
// not in schema.DateLayout, and with requireMetrics also rows missing any
// metric
func dropIncomplete(df dataframe.DataFrame, s schema.TableSchema, requireMetrics bool) dataframe.DataFrame {
	keep := make([]bool, df.Nrow())
	for i := range keep {
		keep[i] = true
	}

	for _, column := range s.Strings {
		for i, value := range df.Col(column).Records() {
			if value == "" || value == "NaN" {
				keep[i] = false
			}
		}
	}

	for i, value := range df.Col(schema.ColumnDate).Records() {
		if _, err := time.Parse(schema.DateLayout, value); nil != err {
			keep[i] = false
		}
	}

	if requireMetrics {
		for _, column := range s.Metrics {
			for i, missing := range df.Col(column).IsNaN() {
				if missing {
					keep[i] = false
				}
			}
		}
	}

	dropped := subset(df, func(i int) bool { return keep[i] })
	if diff := df.Nrow() - dropped.Nrow(); diff > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "dataset": s.Name, "rows": diff}).Warn("drop incomplete rows")
	}
	return dropped
}

func keepLocations(df dataframe.DataFrame, locations map[string]struct{}) dataframe.DataFrame {
	records := df.Col(schema.ColumnLocation).Records()
	return subset(df, func(i int) bool {
		_, ok := locations[records[i]]
		return ok
	})
}

// subset keeps the rows accepted by fn, in their original order
func subset(df dataframe.DataFrame, fn func(i int) bool) dataframe.DataFrame {
	indexes := make([]int, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		if fn(i) {
			indexes = append(indexes, i)
		}
	}

	if len(indexes) == df.Nrow() {
		return df
	}
	return df.Subset(indexes)
}

func unique(values []string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
