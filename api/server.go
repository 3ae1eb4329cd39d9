package api

import (
	"context"
	"io"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/variant-dashboard/consts"
	"github.com/bitmark-inc/variant-dashboard/series"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// chart data of the loaded datasets
	dashboard series.Builder

	// chart texts
	bundle *i18n.Bundle

	// request metrics
	metrics       tally.Scope
	stats         *requestStats
	metricsCloser io.Closer

	// preferred dropdown selection
	defaultLocation string
}

// NewServer new instance of server
func NewServer(
	dashboard series.Builder,
	bundle *i18n.Bundle) *Server {
	metrics, stats, closer := newMetricsScope(metricsPrefix, metricsReportInterval)

	return &Server{
		dashboard:       dashboard,
		bundle:          bundle,
		metrics:         metrics,
		stats:           stats,
		metricsCloser:   closer,
		defaultLocation: viper.GetString("dashboard.default_location"),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(ginrus("API"))
	apiRoute.Use(s.metricsMiddleware())
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin", "Accept-Language"},
		ExposeHeaders:   []string{"Content-Length", requestIDHeader},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	locationRoute := apiRoute.Group("/locations")
	{
		locationRoute.GET("", s.getLocations)
	}

	chartRoute := apiRoute.Group("/charts")
	{
		chartRoute.GET("/variants", s.variantChart)
		chartRoute.GET("/cases", s.caseChart)
		chartRoute.GET("/vaccinations", s.vaccinationChart)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", s.metricSnapshot)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.metricsCloser != nil {
		if err := s.metricsCloser.Close(); nil != err {
			log.WithField("error", err).Error("close metrics scope")
		}
	}

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"version":   viper.GetString("server.version"),
		"locations": len(s.dashboard.Locations()),
	})
}

func (s *Server) information(c *gin.Context) {
	variants := make([]gin.H, len(consts.Variants))
	for i, v := range consts.Variants {
		color, err := consts.Color(i)
		if nil != err {
			log.WithField("variant", v).Error(err)
		}
		variants[i] = gin.H{
			"name":  v,
			"color": color,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"default_location": s.selectedLocation(),
			"variants":         variants,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
