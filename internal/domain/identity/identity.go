// Package identity canonicalizes official identities.
//
// Assignment records synced from the document store sometimes carry only a
// free-text name without a stable identifier, so a normalized name acts as
// the identity key wherever an ID is absent. The normalization lives here,
// isolated, so a stable-ID source can replace it without touching the
// engine packages that merge records by key.
package identity

import (
	"strings"
	"unicode"

	"github.com/touchline/touchline/internal/domain/model"
)

// Key returns the canonical identity key for a free-text official name:
// lowercased, trimmed, inner whitespace collapsed to single spaces.
func Key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// KeyFor returns the canonical identity key for a role slot occupant.
// A stable identifier wins over the name-derived key when present.
func KeyFor(o model.OfficialRef) string {
	if o.ID != "" {
		return o.ID
	}
	return Key(o.Name)
}

// PreferredName picks the better display variant between two spellings of
// the same identity: one whose first rune is uppercase beats one that is
// not. Among equally-cased variants the current one is kept.
func PreferredName(current, candidate string) string {
	current = strings.TrimSpace(current)
	candidate = strings.TrimSpace(candidate)
	if current == "" {
		return candidate
	}
	if candidate == "" {
		return current
	}
	if !capitalized(current) && capitalized(candidate) {
		return candidate
	}
	return current
}

func capitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
