// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the bilingual content records shared by the
// storage, API, and seed layers. Every user-facing string is a Text pair
// carrying both a French and an Arabic value.
package models

import "strings"

// Language codes supported by the site.
const (
	LangFR = "fr"
	LangAR = "ar"
)

// Text is a bilingual string. Both keys are always serialized, even when
// one translation is still empty.
type Text struct {
	FR string `json:"fr" yaml:"fr"`
	AR string `json:"ar" yaml:"ar"`
}

// T builds a Text from its French and Arabic values.
func T(fr, ar string) Text {
	return Text{FR: fr, AR: ar}
}

// In returns the value for lang, falling back to the other language when
// the requested one is empty. Unknown languages read as French.
func (t Text) In(lang string) string {
	if lang == LangAR {
		if t.AR != "" {
			return t.AR
		}
		return t.FR
	}
	if t.FR != "" {
		return t.FR
	}
	return t.AR
}

// IsZero reports whether both translations are blank.
func (t Text) IsZero() bool {
	return strings.TrimSpace(t.FR) == "" && strings.TrimSpace(t.AR) == ""
}

// Complete reports whether both translations are filled in.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.FR) != "" && strings.TrimSpace(t.AR) != ""
}
