package utils

import (
	"fmt"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// NewI18NBundle - message bundle with english as default language, loaded
// from every yaml file in dir. The file name is the language tag.
func NewI18NBundle(dir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if nil != err {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no message file in %s", dir)
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); nil != err {
			return nil, fmt.Errorf("load message file %s: %w", f, err)
		}
	}

	return bundle, nil
}

// NewLocalizer - localizer for the preferred languages, which may be given as
// Accept-Language header values
func NewLocalizer(bundle *i18n.Bundle, langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize - message of id, or the fallback template when no file defines it
func Localize(loc *i18n.Localizer, id, fallback string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if nil != err {
		log.WithFields(log.Fields{"prefix": "i18n", "id": id, "error": err}).Warn("localize message")
		if msg != "" {
			return msg
		}
		return fallback
	}
	return msg
}
