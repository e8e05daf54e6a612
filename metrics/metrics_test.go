// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/svmlab/metrics"
)

// The fixture exercises both binarization rules at once: a zero decision
// value (maps to +1) and a sign mismatch.
//
//	yTrue  = [ 1,  1, -1, -1]
//	yScore = [ 2,  0, -1,  1]   →  binarized [1, 1, -1, 1]
//	counts: TP=2 FN=0 FP=1 TN=1
var (
	fixtureTrue  = []float64{1, 1, -1, -1}
	fixtureScore = []float64{2.0, 0.0, -1.0, 1.0}
)

// TestScore_Fixture pins the exact value of every metric on the fixture.
func TestScore_Fixture(t *testing.T) {
	cases := []struct {
		metric metrics.Metric
		want   float64
	}{
		{metrics.Accuracy, 0.75},
		{metrics.Precision, 2.0 / 3.0},
		{metrics.Sensitivity, 1.0},
		{metrics.Specificity, 0.5},
		{metrics.F1Score, 0.8},
		// raw ranking: 3 of the 4 (positive, negative) pairs are ordered
		// correctly, no ties
		{metrics.AUROC, 0.75},
	}
	for _, tc := range cases {
		t.Run(string(tc.metric), func(t *testing.T) {
			got, err := metrics.Score(fixtureTrue, fixtureScore, tc.metric)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestBinarize_ZeroIsPositive pins the tie-break convention.
func TestBinarize_ZeroIsPositive(t *testing.T) {
	got := metrics.Binarize([]float64{-0.3, 0, 0.3})
	assert.Equal(t, []float64{-1, 1, 1}, got)
}

// TestScore_SensitivityZeroGuard verifies the all-negative corpus returns
// exactly 0 instead of a division error.
func TestScore_SensitivityZeroGuard(t *testing.T) {
	yTrue := []float64{-1, -1, -1}
	yScore := []float64{-2, 3, -1}

	got, err := metrics.Score(yTrue, yScore, metrics.Sensitivity)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestScore_SpecificityZeroGuard verifies the all-positive corpus returns
// exactly 0 instead of a division error.
func TestScore_SpecificityZeroGuard(t *testing.T) {
	yTrue := []float64{1, 1, 1}
	yScore := []float64{1, -1, 1}

	got, err := metrics.Score(yTrue, yScore, metrics.Specificity)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestScore_F1ZeroGuard verifies f1 returns 0 when precision and recall are
// both 0 (everything predicted negative, one actual positive).
func TestScore_F1ZeroGuard(t *testing.T) {
	got, err := metrics.Score([]float64{1, -1}, []float64{-1, -1}, metrics.F1Score)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestScore_AUROCPerfectAndReversed checks the two ranking extremes.
func TestScore_AUROCPerfectAndReversed(t *testing.T) {
	yTrue := []float64{1, 1, -1, -1}

	perfect, err := metrics.Score(yTrue, []float64{0.9, 0.4, -0.2, -0.7}, metrics.AUROC)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-12)

	reversed, err := metrics.Score(yTrue, []float64{-0.9, -0.4, 0.2, 0.7}, metrics.AUROC)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, reversed, 1e-12)
}

// TestScore_AUROCTiedScores verifies a fully tied ranking scores exactly
// at chance level.
func TestScore_AUROCTiedScores(t *testing.T) {
	got, err := metrics.Score([]float64{1, -1}, []float64{0.5, 0.5}, metrics.AUROC)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

// TestScore_AUROCSingleClass verifies the undefined case is surfaced.
func TestScore_AUROCSingleClass(t *testing.T) {
	_, err := metrics.Score([]float64{-1, -1}, []float64{0.1, 0.2}, metrics.AUROC)
	assert.ErrorIs(t, err, metrics.ErrSingleClass)
}

// TestScore_InputValidation covers unknown names, length mismatch and
// empty input.
func TestScore_InputValidation(t *testing.T) {
	_, err := metrics.Score(fixtureTrue, fixtureScore, metrics.Metric("brier"))
	assert.ErrorIs(t, err, metrics.ErrUnknownMetric)

	_, err = metrics.Score([]float64{1}, []float64{1, 2}, metrics.Accuracy)
	assert.ErrorIs(t, err, metrics.ErrLengthMismatch)

	_, err = metrics.Score(nil, nil, metrics.Accuracy)
	assert.ErrorIs(t, err, metrics.ErrEmptyInput)
}

// TestParseMetric accepts all six canonical names and rejects the rest.
func TestParseMetric(t *testing.T) {
	for _, m := range metrics.All() {
		got, err := metrics.ParseMetric(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := metrics.ParseMetric("f1")
	assert.ErrorIs(t, err, metrics.ErrUnknownMetric)
}
