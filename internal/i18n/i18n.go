// Package i18n resolves display strings for the supported locales.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// FallbackLocale is used when a requested locale or key is unavailable.
const FallbackLocale = "en"

// supported lists the locales with full catalogs. English must stay first so
// the matcher falls back to it for unknown tags.
var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys for one locale, falling back to English
// when a key is missing from the locale's catalog.
type Translator struct {
	locale string
}

// New returns a Translator for the closest supported locale. Unparseable or
// unsupported locales resolve to the fallback locale.
func New(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		return &Translator{locale: FallbackLocale}
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return &Translator{locale: FallbackLocale}
	}
	base, _ := supported[idx].Base()
	return &Translator{locale: base.String()}
}

// Locale returns the resolved locale code.
func (t *Translator) Locale() string {
	return t.locale
}

// T resolves a message key and formats it with the given arguments.
// Missing keys fall back to English; a key absent from every catalog is
// returned verbatim so the gap stays visible instead of failing.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := catalogs[t.locale][key]
	if !ok {
		msg, ok = catalogs[FallbackLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Supported returns the locale codes with full catalogs.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	return out
}
