package ndt

import (
	"fmt"
	"math"
)

// ConfusionCounts holds the four outcomes of comparing predicted against
// true binary labels. Values are set once at construction; TP+FP+TN+FN
// equals the number of compared pairs.
type ConfusionCounts struct {
	TP int // predicted positive, actually positive
	FP int // predicted positive, actually negative
	TN int // predicted negative, actually negative
	FN int // predicted negative, actually positive
}

// Total returns the number of label pairs the counts were derived from.
func (c ConfusionCounts) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// MetricsReport holds the standard ratios derived from confusion counts,
// along with the counts themselves. Every ratio lies in [0, 1].
type MetricsReport struct {
	Counts      ConfusionCounts
	Accuracy    float64
	Precision   float64
	Recall      float64
	Specificity float64
	F1          float64
	FPR         float64
	FNR         float64
}

// Value returns the named metric, for consumers that address metrics by
// name (report tables, column selection). The bool reports whether the name
// is known.
func (m MetricsReport) Value(name string) (float64, bool) {
	switch name {
	case "accuracy":
		return m.Accuracy, true
	case "precision":
		return m.Precision, true
	case "recall":
		return m.Recall, true
	case "specificity":
		return m.Specificity, true
	case "f1":
		return m.F1, true
	case "fpr":
		return m.FPR, true
	case "fnr":
		return m.FNR, true
	}
	return 0, false
}

// Confusion computes TP/FP/TN/FN for binary label sequences.
//
// A label is positive when it equals the configured positive label. Under
// StrictLabels any value that is neither the positive nor the negative
// label fails with ErrLabelDomain; under LenientLabels every non-positive
// value counts as negative. The sequences must align one-to-one.
func Confusion(yTrue, yPred []int, opts ...Option) (ConfusionCounts, error) {
	cfg := resolveConfig(opts)

	if len(yTrue) != len(yPred) {
		return ConfusionCounts{}, fmt.Errorf("%w: y_true has %d, y_pred has %d",
			ErrLengthMismatch, len(yTrue), len(yPred))
	}

	var counts ConfusionCounts
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]

		if cfg.validation == StrictLabels {
			if err := cfg.checkDomain("y_true", i, t); err != nil {
				return ConfusionCounts{}, err
			}
			if err := cfg.checkDomain("y_pred", i, p); err != nil {
				return ConfusionCounts{}, err
			}
		}

		tPos := t == cfg.positiveLabel
		pPos := p == cfg.positiveLabel

		switch {
		case tPos && pPos:
			counts.TP++
		case !tPos && pPos:
			counts.FP++
		case !tPos && !pPos:
			counts.TN++
		default:
			counts.FN++
		}
	}

	return counts, nil
}

func (c config) checkDomain(name string, i, v int) error {
	if v != c.positiveLabel && v != c.negativeLabel {
		return fmt.Errorf("%w: %s[%d]=%d is not in {%d, %d}",
			ErrLabelDomain, name, i, v, c.negativeLabel, c.positiveLabel)
	}
	return nil
}

// Metrics derives the standard performance ratios from the counts. Safe
// division keeps every degenerate case defined: any ratio with a zero
// denominator is 0.0, including f1 when precision+recall is 0.
func (c ConfusionCounts) Metrics() MetricsReport {
	tp := float64(c.TP)
	fp := float64(c.FP)
	tn := float64(c.TN)
	fn := float64(c.FN)

	precision := safeDiv(tp, tp+fp)
	recall := safeDiv(tp, tp+fn)

	return MetricsReport{
		Counts:      c,
		Accuracy:    safeDiv(tp+tn, tp+fp+tn+fn),
		Precision:   precision,
		Recall:      recall,
		Specificity: safeDiv(tn, tn+fp),
		F1:          safeDiv(2*precision*recall, precision+recall),
		FPR:         safeDiv(fp, fp+tn),
		FNR:         safeDiv(fn, fn+tp),
	}
}

// BinaryMetrics computes confusion counts and derives the metrics report in
// one step.
func BinaryMetrics(yTrue, yPred []int, opts ...Option) (MetricsReport, error) {
	counts, err := Confusion(yTrue, yPred, opts...)
	if err != nil {
		return MetricsReport{}, err
	}
	return counts.Metrics(), nil
}

// IntLabels converts a numeric sequence into integer labels. Any element
// that is not exactly representable as an int fails with ErrNonIntegerLabel
// identifying the sequence name and index. Sources that decode numbers as
// floats (YAML, JSON) go through this before label comparison.
func IntLabels(values []float64, name string) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
			v < math.MinInt || v >= math.MaxInt {
			return nil, fmt.Errorf("%w: %s[%d]=%v", ErrNonIntegerLabel, name, i, v)
		}
		out[i] = int(v)
	}
	return out, nil
}

func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return n / d
}
