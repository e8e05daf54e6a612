// SPDX-License-Identifier: MIT

package bow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/svmlab/bow"
)

// TestExtractWords_PunctuationIsolated verifies that punctuation marks are
// split off as their own tokens and everything is lowercased.
func TestExtractWords_PunctuationIsolated(t *testing.T) {
	got := bow.ExtractWords("It's working... isn't it?")
	want := []string{"it", "'", "s", "working", ".", ".", ".", "isn", "'", "t", "it", "?"}
	assert.Equal(t, want, got)
}

// TestExtractWords_Empty verifies empty and all-whitespace inputs tokenize
// to an empty sequence.
func TestExtractWords_Empty(t *testing.T) {
	assert.Empty(t, bow.ExtractWords(""))
	assert.Empty(t, bow.ExtractWords("   \t  "))
}

// TestExtractWords_Idempotent verifies that tokenizing the normalized form
// of a string yields the same sequence as tokenizing the original.
func TestExtractWords_Idempotent(t *testing.T) {
	original := "Wait -- really?! #1 (yes)"
	once := bow.ExtractWords(original)

	normalized := ""
	for i, tok := range once {
		if i > 0 {
			normalized += " "
		}
		normalized += tok
	}
	assert.Equal(t, once, bow.ExtractWords(normalized))
}

// TestBuildVocabulary_FirstSeenOrder verifies insertion-ordered indices
// across document boundaries.
func TestBuildVocabulary_FirstSeenOrder(t *testing.T) {
	lines := []string{"the cat", "the dog!"}
	v := bow.BuildVocabulary(lines)

	require.Equal(t, 4, v.Len())
	for want, tok := range []string{"the", "cat", "dog", "!"} {
		i, ok := v.Index(tok)
		require.True(t, ok, "token %q must be present", tok)
		assert.Equal(t, want, i, "token %q index", tok)
	}
}

// TestBuildVocabulary_Deterministic verifies rebuilding over the same corpus
// reproduces the identical mapping.
func TestBuildVocabulary_Deterministic(t *testing.T) {
	lines := []string{"a b c", "c b a", "d!"}
	first := bow.BuildVocabulary(lines)
	second := bow.BuildVocabulary(lines)

	require.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Tokens(), second.Tokens())
}

// TestVocabulary_RoundTrip verifies Tokens/FromTokens preserve the mapping.
func TestVocabulary_RoundTrip(t *testing.T) {
	v := bow.BuildVocabulary([]string{"x y z y"})
	rebuilt := bow.FromTokens(v.Tokens())

	require.Equal(t, v.Len(), rebuilt.Len())
	for _, tok := range v.Tokens() {
		wantIdx, _ := v.Index(tok)
		gotIdx, ok := rebuilt.Index(tok)
		require.True(t, ok)
		assert.Equal(t, wantIdx, gotIdx)
	}
}

// TestFeatureMatrix_ShapeAndPresence verifies the (n×d) shape, the {0,1}
// value domain, and that duplicate tokens stay at 1.
func TestFeatureMatrix_ShapeAndPresence(t *testing.T) {
	lines := []string{"spam spam eggs", "eggs", "ham?"}
	v := bow.BuildVocabulary(lines)

	x, err := bow.FeatureMatrix(lines, v)
	require.NoError(t, err)

	rows, cols := x.Dims()
	require.Equal(t, len(lines), rows)
	require.Equal(t, v.Len(), cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Contains(t, []float64{0, 1}, x.At(i, j))
		}
	}

	spamIdx, _ := v.Index("spam")
	assert.Equal(t, 1.0, x.At(0, spamIdx), "duplicate token still marks presence, not count")
	assert.Equal(t, 0.0, x.At(1, spamIdx))
}

// TestFeatureMatrix_UnknownToken verifies a token outside the fixed
// vocabulary aborts the build.
func TestFeatureMatrix_UnknownToken(t *testing.T) {
	v := bow.BuildVocabulary([]string{"known words only"})

	_, err := bow.FeatureMatrix([]string{"known words only", "surprise"}, v)
	assert.ErrorIs(t, err, bow.ErrUnknownToken)
}

// TestFeatureMatrix_EmptyInputs verifies empty corpus or vocabulary errors.
func TestFeatureMatrix_EmptyInputs(t *testing.T) {
	v := bow.BuildVocabulary([]string{"a"})

	_, err := bow.FeatureMatrix(nil, v)
	assert.ErrorIs(t, err, bow.ErrEmptyCorpus)

	_, err = bow.FeatureMatrix([]string{"a"}, bow.NewVocabulary())
	assert.ErrorIs(t, err, bow.ErrEmptyCorpus)
}
