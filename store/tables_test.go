package store

import (
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/variant-dashboard/external/mocks"
	"github.com/bitmark-inc/variant-dashboard/schema"
)

type TablesTestSuite struct {
	suite.Suite
	fixtureDir   string
	variants     []byte
	cases        []byte
	vaccinations []byte
}

func NewTablesTestSuite(fixtureDir string) *TablesTestSuite {
	return &TablesTestSuite{
		fixtureDir: fixtureDir,
	}
}

func (s *TablesTestSuite) SetupSuite() {
	var err error
	if s.variants, err = s.LoadFixture("variants.csv"); err != nil {
		s.T().Fatal(err)
	}
	if s.cases, err = s.LoadFixture("cases.csv"); err != nil {
		s.T().Fatal(err)
	}
	if s.vaccinations, err = s.LoadFixture("vaccinations.csv"); err != nil {
		s.T().Fatal(err)
	}
}

// LoadFixture reads a csv fixture into memory
func (s *TablesTestSuite) LoadFixture(name string) ([]byte, error) {
	return ioutil.ReadFile(filepath.Join(s.fixtureDir, name))
}

func (s *TablesTestSuite) parseFixtures() *Tables {
	tables, err := Parse(
		strings.NewReader(string(s.variants)),
		strings.NewReader(string(s.cases)),
		strings.NewReader(string(s.vaccinations)),
	)
	s.Require().NoError(err)
	return tables
}

func (s *TablesTestSuite) TestParseLocationDomain() {
	tables := s.parseFixtures()

	s.Equal([]string{"United States", "France"}, tables.Locations())
	s.True(tables.HasLocation("United States"))
	s.True(tables.HasLocation("France"))
	s.False(tables.HasLocation("Peru"), "location with untracked variants only")
	s.False(tables.HasLocation("Germany"), "location without variant data")
	s.False(tables.HasLocation(""), "empty location")
	s.False(tables.HasLocation("united states"), "match should be exact")
}

func (s *TablesTestSuite) TestParseVariants() {
	tables := s.parseFixtures()
	variants := tables.Variants()

	s.Equal(6, variants.Nrow())
	s.Equal(schema.VariantSchema.Columns(), variants.Names())
	s.NotContains(variants.Col(schema.ColumnVariant).Records(), "B.1.1.277")
	s.NotContains(variants.Col(schema.ColumnVariant).Records(), "non_who")
	for _, missing := range variants.Col(schema.ColumnNumSequences).IsNaN() {
		s.False(missing)
	}
}

func (s *TablesTestSuite) TestParseCases() {
	tables := s.parseFixtures()
	cases := tables.Cases()

	s.Equal(5, cases.Nrow())
	s.NotContains(cases.Col(schema.ColumnLocation).Records(), "Germany")
	s.NotContains(cases.Col(schema.ColumnDate).Records(), "not-a-date")

	// missing metrics are kept at load time
	missing := 0
	for _, m := range cases.Col(schema.ColumnNewCases).IsNaN() {
		if m {
			missing++
		}
	}
	s.Equal(1, missing)
}

func (s *TablesTestSuite) TestParseVaccinations() {
	tables := s.parseFixtures()
	vaccinations := tables.Vaccinations()

	s.Equal(3, vaccinations.Nrow())
	s.Equal(schema.VaccinationSchema.Columns(), vaccinations.Names())
	s.NotContains(vaccinations.Col(schema.ColumnLocation).Records(), "Germany")
}

func (s *TablesTestSuite) TestLocationsIsCopy() {
	tables := s.parseFixtures()

	locations := tables.Locations()
	locations[0] = "Atlantis"
	s.Equal("United States", tables.Locations()[0])
}

func (s *TablesTestSuite) TestParseSchemaMismatch() {
	_, err := Parse(
		strings.NewReader("location,date,num_sequences\nFrance,2021-01-01,4\n"),
		strings.NewReader(string(s.cases)),
		strings.NewReader(string(s.vaccinations)),
	)
	s.Error(err)
	s.True(errors.Is(err, ErrSchemaMismatch))

	_, err = Parse(
		strings.NewReader(string(s.variants)),
		strings.NewReader(string(s.cases)),
		strings.NewReader("location,date,people_vaccinated_per_hundred\nFrance,2021-01-01,4\n"),
	)
	s.Error(err)
	s.True(errors.Is(err, ErrSchemaMismatch))
}

func (s *TablesTestSuite) TestParseHeaderOnly() {
	tables, err := Parse(
		strings.NewReader(string(s.variants)),
		strings.NewReader("date,location,new_cases,new_deaths\n"),
		strings.NewReader(string(s.vaccinations)),
	)
	s.Require().NoError(err)
	s.Equal([]string{"United States", "France"}, tables.Locations())
	s.Equal(0, tables.Cases().Nrow())
	s.Equal(schema.CaseSchema.Columns(), tables.Cases().Names())
	s.Equal(3, tables.Vaccinations().Nrow())

	tables, err = Parse(
		strings.NewReader("location,date,variant,num_sequences"),
		strings.NewReader(string(s.cases)),
		strings.NewReader(string(s.vaccinations)),
	)
	s.Require().NoError(err)
	s.Empty(tables.Locations(), "no variant records, no domain")
	s.Equal(0, tables.Cases().Nrow())
	s.Equal(0, tables.Vaccinations().Nrow())
}

func (s *TablesTestSuite) TestParseHeaderOnlySchemaMismatch() {
	_, err := Parse(
		strings.NewReader(string(s.variants)),
		strings.NewReader("date,location\n"),
		strings.NewReader(string(s.vaccinations)),
	)
	s.True(errors.Is(err, ErrSchemaMismatch))
}

func (s *TablesTestSuite) TestParseEmptyFile() {
	_, err := Parse(
		strings.NewReader(string(s.variants)),
		strings.NewReader(""),
		strings.NewReader(string(s.vaccinations)),
	)
	s.True(errors.Is(err, ErrReadDataset))
}

func (s *TablesTestSuite) TestLoad() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	variants := mocks.NewMockSource(ctrl)
	cases := mocks.NewMockSource(ctrl)
	vaccinations := mocks.NewMockSource(ctrl)

	variants.EXPECT().Fetch(gomock.Any()).Return(s.variants, nil).Times(1)
	cases.EXPECT().Fetch(gomock.Any()).Return(s.cases, nil).Times(1)
	vaccinations.EXPECT().Fetch(gomock.Any()).Return(s.vaccinations, nil).Times(1)

	tables, err := Load(context.Background(), Sources{
		Variants:     variants,
		Cases:        cases,
		Vaccinations: vaccinations,
	})
	s.NoError(err)
	s.Equal([]string{"United States", "France"}, tables.Locations())
	s.Equal(5, tables.Cases().Nrow())
}

func (s *TablesTestSuite) TestLoadFetchFail() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	fetchErr := errors.New("connection refused")

	variants := mocks.NewMockSource(ctrl)
	cases := mocks.NewMockSource(ctrl)
	vaccinations := mocks.NewMockSource(ctrl)

	variants.EXPECT().Fetch(gomock.Any()).Return(s.variants, nil).AnyTimes()
	cases.EXPECT().Fetch(gomock.Any()).Return(nil, fetchErr).Times(1)
	vaccinations.EXPECT().Fetch(gomock.Any()).Return(s.vaccinations, nil).AnyTimes()

	tables, err := Load(context.Background(), Sources{
		Variants:     variants,
		Cases:        cases,
		Vaccinations: vaccinations,
	})
	s.Nil(tables)
	s.True(errors.Is(err, fetchErr))
	s.Contains(err.Error(), "cases")
}

func (s *TablesTestSuite) TestLoadMissingSource() {
	_, err := Load(context.Background(), Sources{})
	s.Equal(ErrMissingSource, err)
}

func TestTablesTestSuite(t *testing.T) {
	suite.Run(t, NewTablesTestSuite("fixtures"))
}
