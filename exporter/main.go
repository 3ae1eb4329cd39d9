package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/variant-dashboard/series"
	"github.com/bitmark-inc/variant-dashboard/share/workbook"
	"github.com/bitmark-inc/variant-dashboard/utils"
)

const logPrefix = "exporter"

var (
	configFile string
	location   string
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Export the dashboard charts of a location to an xlsx workbook",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig(configFile)
		utils.InitLog()

		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              viper.GetString("sentry.dsn"),
			AttachStacktrace: true,
			Environment:      viper.GetString("sentry.environment"),
			Dist:             viper.GetString("sentry.dist"),
		}); err != nil {
			log.Error(err)
		}
	},
	RunE: runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config.yaml", "[optional] path of configuration file")
	rootCmd.Flags().StringVarP(&location, "location", "l", "", "location to export (default: dashboard.default_location)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "path of the workbook (default: <location>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if location == "" {
		location = viper.GetString("dashboard.default_location")
	}
	if output == "" {
		output = location + ".xlsx"
	}

	tables, err := utils.LoadTables(context.Background())
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("load datasets")
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		return err
	}

	// location is checked before the output file is created
	sheets, err := chartSheets(series.New(tables), location)
	if nil != err {
		return err
	}

	f, err := os.Create(output)
	if nil != err {
		return err
	}

	w := bufio.NewWriter(f)
	if err := workbook.Write(w, sheets); nil != err {
		f.Close()
		os.Remove(output)
		return err
	}

	if err := w.Flush(); nil != err {
		f.Close()
		return err
	}
	if err := f.Close(); nil != err {
		return err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "location": location, "output": output}).Info("workbook written")
	return nil
}

func main() {
	if err := rootCmd.Execute(); nil != err {
		os.Exit(1)
	}
}
