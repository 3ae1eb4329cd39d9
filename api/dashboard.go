package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/variant-dashboard/schema"
	"github.com/bitmark-inc/variant-dashboard/utils"
)

// english texts used when a message file lacks an entry
const (
	variantTitle     = "{{.Location}} COVID Variant Trends"
	caseTitle        = "{{.Location}} New COVID Cases"
	vaccinationTitle = "{{.Location}} Vaccination Rates"
	dateAxisTitle    = "Date"
	variantAxisTitle = "Number of Sequences"
	caseAxisTitle    = "New Cases"
	vaccinationAxis  = "Percent of Population"
	variantIsolate   = "Double-click on variant to isolate<br>Single-click to remove from plot"
	dateZoomHint     = "Slide dates on x-axis to update chart zoom"
)

type chartQuery struct {
	Location string `form:"location"`
}

// selectedLocation is the configured default when the datasets have it,
// otherwise the first location of the dropdown
func (s *Server) selectedLocation() string {
	options := s.dashboard.Options()
	for _, o := range options {
		if o.Value == s.defaultLocation {
			return o.Value
		}
	}

	if len(options) > 0 {
		return options[0].Value
	}
	return ""
}

func (s *Server) getLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":   s.selectedLocation(),
		"locations": s.dashboard.Options(),
	})
}

// chartLocation reads the required location query parameter, it aborts the
// request when the parameter is absent
func (s *Server) chartLocation(c *gin.Context) (string, bool) {
	var q chartQuery
	if err := c.ShouldBindQuery(&q); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return "", false
	}

	if q.Location == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return "", false
	}

	return q.Location, true
}

func (s *Server) localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(s.bundle, c.GetHeader("Accept-Language"))
}

func (s *Server) variantChart(c *gin.Context) {
	location, ok := s.chartLocation(c)
	if !ok {
		return
	}

	loc := s.localizer(c)
	data := map[string]interface{}{"Location": location}

	c.JSON(http.StatusOK, schema.ChartView{
		Title:      utils.Localize(loc, "variant_chart_title", variantTitle, data),
		XAxisTitle: utils.Localize(loc, "date_axis_title", dateAxisTitle, nil),
		YAxisTitle: utils.Localize(loc, "variant_axis_title", variantAxisTitle, nil),
		Hints: []string{
			utils.Localize(loc, "variant_isolate_hint", variantIsolate, nil),
			utils.Localize(loc, "date_zoom_hint", dateZoomHint, nil),
		},
		Series: s.dashboard.Variants(location),
	})
}

func (s *Server) caseChart(c *gin.Context) {
	location, ok := s.chartLocation(c)
	if !ok {
		return
	}

	loc := s.localizer(c)
	data := map[string]interface{}{"Location": location}

	// a location without case data answers with no series, like the other
	// charts do for unknown locations
	cases := s.dashboard.Cases(location)
	traces := []schema.ChartSeries{}
	if !cases.Empty() {
		traces = append(traces, cases)
	}

	c.JSON(http.StatusOK, schema.ChartView{
		Title:      utils.Localize(loc, "case_chart_title", caseTitle, data),
		XAxisTitle: utils.Localize(loc, "date_axis_title", dateAxisTitle, nil),
		YAxisTitle: utils.Localize(loc, "case_axis_title", caseAxisTitle, nil),
		Hints: []string{
			utils.Localize(loc, "date_zoom_hint", dateZoomHint, nil),
		},
		Series: traces,
	})
}

func (s *Server) vaccinationChart(c *gin.Context) {
	location, ok := s.chartLocation(c)
	if !ok {
		return
	}

	loc := s.localizer(c)
	data := map[string]interface{}{"Location": location}

	c.JSON(http.StatusOK, schema.ChartView{
		Title:      utils.Localize(loc, "vaccination_chart_title", vaccinationTitle, data),
		XAxisTitle: utils.Localize(loc, "date_axis_title", dateAxisTitle, nil),
		YAxisTitle: utils.Localize(loc, "vaccination_axis_title", vaccinationAxis, nil),
		Hints: []string{
			utils.Localize(loc, "date_zoom_hint", dateZoomHint, nil),
		},
		Series: s.dashboard.Vaccinations(location),
	})
}
