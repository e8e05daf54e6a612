// SPDX-License-Identifier: MIT

package metrics

import "errors"

var (
	// ErrUnknownMetric is returned for a metric name outside the six
	// supported ones. There is no silent fallback metric.
	ErrUnknownMetric = errors.New("metrics: unknown metric")

	// ErrLengthMismatch indicates yTrue and yScore differ in length.
	ErrLengthMismatch = errors.New("metrics: label and score lengths differ")

	// ErrEmptyInput indicates there is nothing to score.
	ErrEmptyInput = errors.New("metrics: empty input")

	// ErrSingleClass is returned by AUROC when only one class is present;
	// a ranking metric is undefined without both classes.
	ErrSingleClass = errors.New("metrics: auroc requires both classes present")
)

// Metric names one scalar performance measure. The string values match the
// conventional spelling used in experiment configs and on the CLI.
type Metric string

const (
	Accuracy    Metric = "accuracy"
	F1Score     Metric = "f1-score"
	AUROC       Metric = "auroc"
	Precision   Metric = "precision"
	Sensitivity Metric = "sensitivity"
	Specificity Metric = "specificity"
)

// All lists the supported metrics in reporting order.
func All() []Metric {
	return []Metric{Accuracy, F1Score, AUROC, Precision, Sensitivity, Specificity}
}

// ParseMetric validates a metric name coming from config or CLI input.
func ParseMetric(s string) (Metric, error) {
	for _, m := range All() {
		if s == string(m) {
			return m, nil
		}
	}

	return "", ErrUnknownMetric
}

// Binarize maps continuous decision values to hard labels by sign.
// Exactly-zero values map to +1 — the positive tie-break convention used
// throughout this package.
func Binarize(scores []float64) []float64 {
	labels := make([]float64, len(scores))
	for i, s := range scores {
		if s < 0 {
			labels[i] = -1
		} else {
			labels[i] = 1
		}
	}

	return labels
}

// confusion holds the positive-class confusion counts for labels in {+1, -1}.
type confusion struct {
	tp, fp, tn, fn int
}

func confusionCounts(yTrue, yLabel []float64) confusion {
	var c confusion
	for i := range yTrue {
		switch {
		case yTrue[i] > 0 && yLabel[i] > 0:
			c.tp++
		case yTrue[i] > 0 && yLabel[i] < 0:
			c.fn++
		case yTrue[i] < 0 && yLabel[i] > 0:
			c.fp++
		default:
			c.tn++
		}
	}

	return c
}

// Score computes metric m over true labels and continuous decision values.
// See the package documentation for the binarization and zero-count
// conventions. Unknown metrics return ErrUnknownMetric.
func Score(yTrue, yScore []float64, m Metric) (float64, error) {
	if len(yTrue) != len(yScore) {
		return 0, ErrLengthMismatch
	}
	if len(yTrue) == 0 {
		return 0, ErrEmptyInput
	}
	if m == AUROC {
		return rocAUC(yTrue, yScore)
	}

	yLabel := Binarize(yScore)
	c := confusionCounts(yTrue, yLabel)

	switch m {
	case Accuracy:
		return float64(c.tp+c.tn) / float64(len(yTrue)), nil
	case Precision:
		return precision(c), nil
	case Sensitivity:
		return sensitivity(c), nil
	case Specificity:
		// TN / (TN+FP); 0 when no negative-actual cases exist.
		if c.tn+c.fp == 0 {
			return 0, nil
		}
		return float64(c.tn) / float64(c.tn+c.fp), nil
	case F1Score:
		p, r := precision(c), sensitivity(c)
		if p+r == 0 {
			return 0, nil
		}
		return 2 * p * r / (p + r), nil
	default:
		return 0, ErrUnknownMetric
	}
}

// precision is TP / (TP+FP), 0 when nothing was predicted positive.
func precision(c confusion) float64 {
	if c.tp+c.fp == 0 {
		return 0
	}

	return float64(c.tp) / float64(c.tp+c.fp)
}

// sensitivity (recall) is TP / (TP+FN), 0 when no actual positives exist.
func sensitivity(c confusion) float64 {
	if c.tp+c.fn == 0 {
		return 0
	}

	return float64(c.tp) / float64(c.tp+c.fn)
}
