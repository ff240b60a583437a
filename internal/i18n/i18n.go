// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n negotiates the display language (French or Arabic) of a
// request and exposes the text direction for it.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"

	"ngocms/internal/models"
)

// Default is the language used when nothing else matches.
const Default = models.LangFR

// CookieName is the cookie that remembers a visitor's language choice.
const CookieName = "language"

var (
	supported = []language.Tag{language.French, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// Normalize maps any tag-like string ("ar-TN", "fr_FR", "AR") to a
// supported language code, or "" if it matches neither.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	switch base.String() {
	case models.LangFR:
		return models.LangFR
	case models.LangAR:
		return models.LangAR
	}
	return ""
}

// Negotiate picks the language for r: the lang query parameter, then the
// language cookie, then Accept-Language, then Default.
func Negotiate(r *http.Request) string {
	if lang := Normalize(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if lang := Normalize(c.Value); lang != "" {
			return lang
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, index, conf := matcher.Match(tags...)
			if conf != language.No {
				return languageCode(supported[index])
			}
		}
	}
	return Default
}

func languageCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Dir returns the text direction of lang: "rtl" for Arabic, else "ltr".
func Dir(lang string) string {
	if lang == models.LangAR {
		return "rtl"
	}
	return "ltr"
}
