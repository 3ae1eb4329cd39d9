package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/variant-dashboard/external/owid"
)

func TestLoadConfig(t *testing.T) {
	defer viper.Reset()

	dir, err := ioutil.TempDir("", "config")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9090\ndataset:\n  cases: ./cases.csv\n")
	assert.Nil(t, ioutil.WriteFile(file, content, 0600))

	os.Setenv("DASHBOARD_DASHBOARD_DEFAULT_LOCATION", "France")
	defer os.Unsetenv("DASHBOARD_DASHBOARD_DEFAULT_LOCATION")

	LoadConfig(file)

	assert.Equal(t, "9090", viper.GetString("server.port"), "value from file")
	assert.Equal(t, "./cases.csv", viper.GetString("dataset.cases"), "value from file")
	assert.Equal(t, owid.VariantsURL, viper.GetString("dataset.variants"), "default value")
	assert.Equal(t, "France", viper.GetString("dashboard.default_location"), "value from env")
}
