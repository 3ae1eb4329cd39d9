package schema

// ChartSeries - one trace of a chart. X holds dates in DateLayout, ascending.
type ChartSeries struct {
	Label      string    `json:"label"`
	X          []string  `json:"x"`
	Y          []float64 `json:"y"`
	ColorIndex int       `json:"color_index"`
	Color      string    `json:"color"`
}

// Empty - series has no points
func (s ChartSeries) Empty() bool {
	return len(s.X) == 0
}

// ChartView - series of one chart together with its display texts
type ChartView struct {
	Title      string        `json:"title"`
	XAxisTitle string        `json:"x_axis_title"`
	YAxisTitle string        `json:"y_axis_title"`
	Hints      []string      `json:"hints"`
	Series     []ChartSeries `json:"series"`
}

// Option - an entry of the location dropdown
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
