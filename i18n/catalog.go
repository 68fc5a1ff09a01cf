package i18n

import (
	"golang.org/x/text/language"
)

// Key identifies a user-facing message.
type Key string

// Supported locales. Persian is the product's primary language.
const (
	Persian = "fa"
	English = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.Persian, language.English})

// Catalog resolves message keys for a locale, falling back to its
// default locale and finally to the key itself.
type Catalog struct {
	fallback string
	messages map[string]map[Key]string
}

func NewCatalog(defaultLocale string) *Catalog {
	if defaultLocale != English {
		defaultLocale = Persian
	}
	return &Catalog{
		fallback: defaultLocale,
		messages: map[string]map[Key]string{
			Persian: persian,
			English: english,
		},
	}
}

func (c *Catalog) Default() string { return c.fallback }

// Negotiate picks a supported locale from an Accept-Language header.
func (c *Catalog) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return c.fallback
	}
	if idx == 1 {
		return English
	}
	return Persian
}

func (c *Catalog) T(locale string, key Key) string {
	if msg, ok := c.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := c.messages[c.fallback][key]; ok {
		return msg
	}
	return string(key)
}
