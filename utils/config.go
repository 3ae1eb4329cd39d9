package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/variant-dashboard/external/owid"
)

const envPrefix = "dashboard"

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.version", "dev")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("dataset.variants", owid.VariantsURL)
	viper.SetDefault("dataset.cases", owid.CasesURL)
	viper.SetDefault("dataset.vaccinations", owid.VaccinationsURL)
	viper.SetDefault("dataset.timeout", 5*time.Minute)
	viper.SetDefault("dashboard.default_location", "United States")
	viper.SetDefault("i18n.dir", "./i18n")
}

// LoadConfig - read the yaml config file, then let environment variables
// such as DASHBOARD_SERVER_PORT override it
func LoadConfig(file string) {
	setDefaults()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// InitLog - logrus with the level of `log.level`
func InitLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}
