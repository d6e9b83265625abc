// Package i18n resolves message identifiers to display text. Catalogs are
// embedded YAML files, one per locale, registered with a universal translator.
package i18n

import (
	"embed"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var catalogFS embed.FS

// Translator looks up the text for a message identifier. Unknown identifiers
// come back unchanged.
type Translator interface {
	T(id string) string
	Locale() string
}

type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback string
}

func Load(fallback string) (*Catalog, error) {
	supported := []locales.Translator{en.New(), pl.New()}
	uni := ut.New(supported[0], supported...)

	for _, loc := range supported {
		trans, ok := uni.GetTranslator(loc.Locale())
		if !ok {
			return nil, fmt.Errorf("translator for %s not registered", loc.Locale())
		}

		data, err := catalogFS.ReadFile(path.Join("locales", loc.Locale()+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", loc.Locale(), err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", loc.Locale(), err)
		}

		for id, text := range messages {
			if err := trans.Add(id, text, false); err != nil {
				return nil, fmt.Errorf("add %s to catalog %s: %w", id, loc.Locale(), err)
			}
		}
	}

	if _, ok := uni.GetTranslator(fallback); !ok {
		return nil, fmt.Errorf("no catalog for default language %q", fallback)
	}

	return &Catalog{uni: uni, fallback: fallback}, nil
}

// Translator returns the first catalog matching one of langs, or the default
// language. Region subtags are ignored, so "pl-PL" resolves to "pl".
func (c *Catalog) Translator(langs ...string) Translator {
	for _, lang := range langs {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" {
			continue
		}
		if i := strings.IndexAny(lang, "-_"); i > 0 {
			lang = lang[:i]
		}
		if trans, ok := c.uni.GetTranslator(lang); ok {
			return translator{trans: trans}
		}
	}

	trans, _ := c.uni.GetTranslator(c.fallback)
	return translator{trans: trans}
}

// FromRequest picks the catalog from the lang query parameter, then the
// Accept-Language header.
func (c *Catalog) FromRequest(r *http.Request) Translator {
	langs := []string{r.URL.Query().Get("lang")}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(part, ";")
		langs = append(langs, tag)
	}

	return c.Translator(langs...)
}

type translator struct {
	trans ut.Translator
}

func (t translator) T(id string) string {
	text, err := t.trans.T(id)
	if err != nil || text == "" {
		return id
	}
	return text
}

func (t translator) Locale() string {
	return t.trans.Locale()
}
