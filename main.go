package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/variant-dashboard/api"
	"github.com/bitmark-inc/variant-dashboard/series"
	"github.com/bitmark-inc/variant-dashboard/utils"
)

var server *api.Server

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	utils.LoadConfig(configFile)

	utils.InitLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Datasets are loaded once, a failure stops the process before serving
	tables, err := utils.LoadTables(initialCtx)
	if err != nil {
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		log.WithField("prefix", "init").Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded datasets")

	bundle, err := utils.NewI18NBundle(viper.GetString("i18n.dir"))
	if err != nil {
		log.WithField("prefix", "init").Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded message files")

	// Init http server
	server = api.NewServer(
		series.New(tables),
		bundle)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
