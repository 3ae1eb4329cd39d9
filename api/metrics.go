package api

import (
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uber-go/tally"
)

const (
	metricsPrefix         = "dashboard"
	metricsReportInterval = time.Second
)

type counterSample struct {
	Name  string            `json:"name"`
	Tags  map[string]string `json:"tags"`
	Value int64             `json:"value"`
}

type timerSample struct {
	Name  string            `json:"name"`
	Tags  map[string]string `json:"tags"`
	Count int64             `json:"count"`
	Mean  float64           `json:"mean_ms"`
	Max   float64           `json:"max_ms"`

	total time.Duration
	max   time.Duration
}

// requestStats is a tally reporter holding one aggregate per metric name and
// tag set. Individual samples are folded in and never kept.
type requestStats struct {
	sync.Mutex
	counters map[string]*counterSample
	timers   map[string]*timerSample
}

func newRequestStats() *requestStats {
	return &requestStats{
		counters: make(map[string]*counterSample),
		timers:   make(map[string]*timerSample),
	}
}

// newMetricsScope returns a root scope reporting into stats. Timers are
// reported as they are recorded, counters once per interval.
func newMetricsScope(prefix string, interval time.Duration) (tally.Scope, *requestStats, io.Closer) {
	stats := newRequestStats()
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Reporter: stats,
	}, interval)
	return scope, stats, closer
}

func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags))
	for k, v := range tags {
		result[k] = v
	}
	return result
}

func (r *requestStats) ReportCounter(name string, tags map[string]string, value int64) {
	r.Lock()
	defer r.Unlock()

	key := name + tagString(tags)
	c, ok := r.counters[key]
	if !ok {
		c = &counterSample{Name: name, Tags: copyTags(tags)}
		r.counters[key] = c
	}
	c.Value += value
}

func (r *requestStats) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.Lock()
	defer r.Unlock()

	key := name + tagString(tags)
	t, ok := r.timers[key]
	if !ok {
		t = &timerSample{Name: name, Tags: copyTags(tags)}
		r.timers[key] = t
	}
	t.Count++
	t.total += interval
	if interval > t.max {
		t.max = interval
	}
}

// gauges and histograms are not collected
func (r *requestStats) ReportGauge(name string, tags map[string]string, value float64) {}

func (r *requestStats) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound float64,
	samples int64) {
}

func (r *requestStats) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound time.Duration,
	samples int64) {
}

func (r *requestStats) Capabilities() tally.Capabilities {
	return r
}

func (r *requestStats) Reporting() bool {
	return true
}

func (r *requestStats) Tagging() bool {
	return true
}

func (r *requestStats) Flush() {}

// snapshot copies the aggregates sorted by name and tags
func (r *requestStats) snapshot() ([]counterSample, []timerSample) {
	r.Lock()
	defer r.Unlock()

	counters := make([]counterSample, 0, len(r.counters))
	for _, c := range r.counters {
		counters = append(counters, counterSample{
			Name:  c.Name,
			Tags:  copyTags(c.Tags),
			Value: c.Value,
		})
	}
	sort.Slice(counters, func(i, j int) bool {
		return counters[i].Name+tagString(counters[i].Tags) < counters[j].Name+tagString(counters[j].Tags)
	})

	timers := make([]timerSample, 0, len(r.timers))
	for _, t := range r.timers {
		sample := timerSample{
			Name:  t.Name,
			Tags:  copyTags(t.Tags),
			Count: t.Count,
			Max:   float64(t.max) / float64(time.Millisecond),
		}
		if t.Count > 0 {
			sample.Mean = float64(t.total) / float64(time.Millisecond) / float64(t.Count)
		}
		timers = append(timers, sample)
	}
	sort.Slice(timers, func(i, j int) bool {
		return timers[i].Name+tagString(timers[i].Tags) < timers[j].Name+tagString(timers[j].Tags)
	})

	return counters, timers
}

// metricsMiddleware records the latency of every request per route and
// status. Timers reach the reporter at once, so the timer count doubles as
// the request count.
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		start := time.Now()
		c.Next()

		s.metrics.Tagged(map[string]string{
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Timer("latency").Record(time.Since(start))
	}
}

// metricSnapshot dumps the aggregated request metrics
func (s *Server) metricSnapshot(c *gin.Context) {
	if s.stats == nil {
		abortWithEncoding(c, http.StatusNotImplemented, errorMetricsUnavailable)
		return
	}

	counters, timers := s.stats.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"counters": counters,
		"timers":   timers,
	})
}

func tagString(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := ""
	for _, k := range keys {
		result += "," + k + "=" + tags[k]
	}
	return result
}
