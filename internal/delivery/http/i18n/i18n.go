// Package i18n localizes the user-facing error messages of the HTTP surface.
// Message catalogs are YAML files keyed by business error code, embedded
// into the binary.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator resolves business error codes to messages in the caller's
// language. Safe for concurrent use.
type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator loads every embedded locale catalog. English is the fallback.
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, err
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Localize translates the message identified by code into the best match
// for the Accept-Language value. When no catalog carries the code, the
// fallback is returned unchanged.
func (t *Translator) Localize(acceptLanguage, code, fallback string) string {
	localizer := i18n.NewLocalizer(t.bundle, acceptLanguage)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: code})
	if err != nil {
		return fallback
	}

	return msg
}
