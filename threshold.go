package ndt

// ApplyThreshold converts numeric scores into binary decisions using a fixed
// cutoff. Element i of the result is the positive label when
// scores[i] >= threshold, the negative label otherwise.
//
// Equality at the threshold is a positive decision. Threshold systems
// commonly disagree on this exact case, so the convention is explicit here
// and must not change.
func ApplyThreshold(scores []float64, threshold float64, opts ...Option) []int {
	cfg := resolveConfig(opts)

	decisions := make([]int, len(scores))
	for i, score := range scores {
		if score >= threshold {
			decisions[i] = cfg.positiveLabel
		} else {
			decisions[i] = cfg.negativeLabel
		}
	}
	return decisions
}

// ThresholdRange generates threshold values from min up to (excluding) max
// with the given step. A non-positive step yields nil.
func ThresholdRange(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var thresholds []float64
	for t := min; t < max; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}
