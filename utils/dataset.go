package utils

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/variant-dashboard/external/owid"
	"github.com/bitmark-inc/variant-dashboard/store"
)

// LoadTables - download or read the datasets configured under `dataset.*`
// and load them into memory, bounded by `dataset.timeout`
func LoadTables(ctx context.Context) (*store.Tables, error) {
	timeout := viper.GetDuration("dataset.timeout")
	client := &http.Client{
		Timeout: timeout,
	}

	var sources store.Sources
	for _, d := range []struct {
		key string
		dst *owid.Source
	}{
		{"dataset.variants", &sources.Variants},
		{"dataset.cases", &sources.Cases},
		{"dataset.vaccinations", &sources.Vaccinations},
	} {
		s, err := owid.New(viper.GetString(d.key), client)
		if nil != err {
			log.WithFields(log.Fields{"prefix": "init", "key": d.key, "error": err}).Error("dataset source")
			return nil, err
		}
		*d.dst = s
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return store.Load(ctx, sources)
}
