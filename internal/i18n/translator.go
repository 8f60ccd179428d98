// Package i18n resolves text identifiers (card prompts, stat names, ending
// titles) to localized strings. Locale files are flat yaml maps embedded at
// build time.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator looks up localized strings by key for one loaded language.
type Translator struct {
	lang string
	data map[string]string
}

// New returns a translator with no language loaded. T falls back to the key
// itself until Load succeeds.
func New() *Translator {
	return &Translator{data: map[string]string{}}
}

// Load replaces the active language with the embedded locale lang.
func (t *Translator) Load(lang string) error {
	raw, err := localeFS.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return fmt.Errorf("locale %q: %w", lang, err)
	}
	data := map[string]string{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("locale %q: %w", lang, err)
	}
	t.lang = lang
	t.data = data
	return nil
}

// Lang returns the loaded language code, or "" before any Load.
func (t *Translator) Lang() string { return t.lang }

// T resolves key, formatting with args when given. Unknown keys resolve to
// the key itself so missing text is visible instead of fatal.
func (t *Translator) T(key string, args ...any) string {
	s, ok := t.data[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

// Languages lists the embedded locale codes, sorted.
func Languages() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			langs = append(langs, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(langs)
	return langs
}
