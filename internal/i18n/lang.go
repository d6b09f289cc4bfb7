// Package i18n provides the bilingual string table, the active language and
// text direction, and locale-aware formatting for English and Arabic.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is an interface language.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Supported lists the interface languages in matcher preference order.
var Supported = []Lang{English, Arabic}

// ParseLang accepts "en" or "ar" in any case.
func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// IsRTL reports whether the language is written right to left.
func (l Lang) IsRTL() bool {
	return l == Arabic
}

// Dir returns the HTML dir attribute value for the language.
func (l Lang) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Tag returns the BCP 47 tag of the language.
func (l Lang) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

func (l Lang) String() string {
	return string(l)
}

// Context holds the language of one rendering. Toggling flips both the
// language and the direction derived from it.
type Context struct {
	Lang Lang
}

// NewContext starts a Context at initial, or English when initial is unknown.
func NewContext(initial Lang) *Context {
	if _, ok := ParseLang(string(initial)); !ok {
		initial = English
	}
	return &Context{Lang: initial}
}

func (c *Context) Toggle() {
	c.Lang = c.Lang.Other()
}

func (c *Context) IsRTL() bool {
	return c.Lang.IsRTL()
}

func (c *Context) Dir() string {
	return c.Lang.Dir()
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Negotiate picks the supported language that best matches an
// Accept-Language header, or fallback when nothing matches.
func Negotiate(acceptLanguage string, fallback Lang) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Supported[index]
}
