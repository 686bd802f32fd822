// Package i18n holds the translation bundle. Locale files are embedded and
// parsed once at startup; lookups after that are read-only, so a single
// bundle is safe to share across requests.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localeFS embed.FS

type Bundle struct {
	defaultLang string
	langs       map[string]map[string]string
}

func New(defaultLang string) (*Bundle, error) {
	b := &Bundle{
		defaultLang: defaultLang,
		langs:       make(map[string]map[string]string),
	}

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), ".yml")

		raw, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		msgs := make(map[string]string)

		err = yaml.Unmarshal(raw, &msgs)
		if err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}

		b.langs[lang] = msgs
	}

	if _, ok := b.langs[defaultLang]; !ok {
		return nil, fmt.Errorf("default lang %q has no locale file", defaultLang)
	}

	return b, nil
}

// Supported reports whether a locale file exists for lang.
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.langs[lang]
	return ok
}

func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.langs))
	for l := range b.langs {
		langs = append(langs, l)
	}

	sort.Strings(langs)

	return langs
}

// T resolves key in lang, falling back to the default language and then
// to the key itself.
func (b *Bundle) T(lang, key string) string {
	if msgs, ok := b.langs[lang]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}

	if msgs, ok := b.langs[b.defaultLang]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}

	return key
}
