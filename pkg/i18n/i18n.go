// Package i18n looks up translated UI strings. Keys are the English text, so
// a missing entry falls back to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// DefaultLocale is used when nothing else names a supported language.
const DefaultLocale = "en"

// Translator resolves keys for a single locale.
type Translator struct {
	locale string
	dict   map[string]string
}

// New loads the dictionary for locale. Unknown locales fall back to English.
func New(locale string) (*Translator, error) {
	base := Normalize(locale)
	data, err := locales.ReadFile("locales/" + base + ".yaml")
	if err != nil {
		base = DefaultLocale
		data, err = locales.ReadFile("locales/" + base + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read default dictionary: %w", err)
		}
	}
	dict := map[string]string{}
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse %s dictionary: %w", base, err)
	}
	return &Translator{locale: base, dict: dict}, nil
}

// Locale returns the base language in use.
func (t *Translator) Locale() string {
	return t.locale
}

// T translates key and replaces %{name} placeholders with the given
// name/value pairs.
func (t *Translator) T(key string, pairs ...string) string {
	out := key
	if t != nil {
		if v, ok := t.dict[key]; ok && v != "" {
			out = v
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		out = strings.ReplaceAll(out, "%{"+pairs[i]+"}", pairs[i+1])
	}
	return out
}

// Normalize turns a locale such as "es_ES.UTF-8" into its base language.
func Normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	return base.String()
}

// Detect picks the locale: override, then COCO_LOCALE, LC_ALL, LC_MESSAGES
// and LANG.
func Detect(override string) string {
	if strings.TrimSpace(override) != "" {
		return Normalize(override)
	}
	for _, env := range []string{"COCO_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return Normalize(v)
		}
	}
	return DefaultLocale
}
