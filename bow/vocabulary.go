// SPDX-License-Identifier: MIT

package bow

// Vocabulary maps tokens to stable integer indices in first-seen order.
// It is append-only during construction and read-only afterwards; indices
// are never removed or reassigned.
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// BuildVocabulary scans the corpus top to bottom and registers every
// distinct token at the next free index. Rebuilding over the same corpus
// always yields the same mapping.
func BuildVocabulary(lines []string) *Vocabulary {
	v := NewVocabulary()
	for _, line := range lines {
		for _, tok := range ExtractWords(line) {
			v.Add(tok)
		}
	}

	return v
}

// Add registers tok if unseen and returns its index.
func (v *Vocabulary) Add(tok string) int {
	if i, ok := v.index[tok]; ok {
		return i
	}
	i := len(v.tokens)
	v.index[tok] = i
	v.tokens = append(v.tokens, tok)

	return i
}

// Index returns the index of tok and whether it is present.
func (v *Vocabulary) Index(tok string) (int, bool) {
	i, ok := v.index[tok]
	return i, ok
}

// Len reports the number of distinct tokens.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Tokens returns the tokens in index order. The slice is a copy; mutating
// it does not affect the vocabulary.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)

	return out
}

// FromTokens rebuilds a vocabulary from a token list previously obtained
// via Tokens (index i maps to tokens[i]).
func FromTokens(tokens []string) *Vocabulary {
	v := NewVocabulary()
	for _, tok := range tokens {
		v.Add(tok)
	}

	return v
}
