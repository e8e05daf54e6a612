// SPDX-License-Identifier: MIT

package bow

import "strings"

// punctuation is the canonical ASCII punctuation set; every occurrence is
// split off into a token of its own.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ExtractWords normalizes one document into an ordered token sequence:
// each punctuation rune is isolated with surrounding spaces, the whole
// string is lowercased, and the result is split on whitespace runs.
// Empty or all-whitespace input yields an empty sequence.
//
// The normalization is idempotent: tokenizing the already-normalized form
// of a document reproduces the same token sequence.
func ExtractWords(s string) []string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(punctuation, r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	return strings.Fields(strings.ToLower(b.String()))
}
