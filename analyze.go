package ndt

// Analysis bundles everything produced by evaluating one threshold:
// the threshold itself, the decisions it induced, and how those decisions
// score against ground truth. Constructed once and never mutated.
type Analysis struct {
	Threshold   float64
	Predictions []int
	Counts      ConfusionCounts
	Metrics     MetricsReport
}

// AnalyzeThreshold applies a decision threshold to scores and evaluates the
// resulting predictions against ground truth.
//
// The pipeline is thresholding, then confusion counts, then the derived
// report; this function only sequences the steps and adds no computation of
// its own. Errors from the underlying steps propagate unwrapped, so a
// scores/yTrue length mismatch surfaces as ErrLengthMismatch.
func AnalyzeThreshold(scores []float64, yTrue []int, threshold float64, opts ...Option) (Analysis, error) {
	yPred := ApplyThreshold(scores, threshold, opts...)

	counts, err := Confusion(yTrue, yPred, opts...)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Threshold:   threshold,
		Predictions: yPred,
		Counts:      counts,
		Metrics:     counts.Metrics(),
	}, nil
}

// Sweep evaluates the same scores and ground truth across multiple
// thresholds. Results come back in the exact order supplied, one per
// threshold, with no sorting or deduplication. The first failing threshold
// aborts the whole sweep.
func Sweep(scores []float64, yTrue []int, thresholds []float64, opts ...Option) ([]Analysis, error) {
	results := make([]Analysis, 0, len(thresholds))
	for _, t := range thresholds {
		r, err := AnalyzeThreshold(scores, yTrue, t, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
