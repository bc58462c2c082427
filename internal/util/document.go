// Package util contains small shared helpers.
package util

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode"
)

// NormalizeDocument strips everything but digits from a CNPJ/CPF-like tax
// document. An empty or digit-free input yields an empty string; callers must
// reject empty documents before lookups.
func NormalizeDocument(raw string) string {
	var digits strings.Builder
	digits.Grow(len(raw))

	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// HashDocument produces the salted one-way hash stored on push subscriptions.
// The raw document never leaves the registration record.
func HashDocument(normalized, salt string) string {
	sum := sha256.Sum256([]byte(salt + normalized))

	return fmt.Sprintf("%x", sum)
}
