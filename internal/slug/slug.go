// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for French and Arabic
// titles. Latin accents are folded to their base letter; Arabic letters
// are kept as-is (browsers percent-encode them in URLs).
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold decomposes characters and drops combining marks, so "é" becomes
// "e" and Arabic harakat disappear.
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate creates a URL-friendly slug from the given string.
// Example: "Journée des droits, 2026" → "journee-des-droits-2026"
func Generate(s string) string {
	folded, _, err := transform.String(fold, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(s))
	}

	var b strings.Builder
	hyphen := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '\'' || r == '’':
			if b.Len() > 0 && !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Or returns Generate(s), or fallback when s yields an empty slug.
func Or(s, fallback string) string {
	if out := Generate(s); out != "" {
		return out
	}
	return fallback
}
