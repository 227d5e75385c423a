// Package ndt provides binary decision analysis for numeric classifier
// scores: thresholding, confusion counts, and the standard derived metrics.
//
// # Quick Start
//
//	scores := []float64{0.12, 0.43, 0.55, 0.78, 0.91}
//	yTrue := []int{0, 0, 1, 1, 1}
//
//	result, err := ndt.AnalyzeThreshold(scores, yTrue, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("accuracy=%.2f f1=%.2f\n", result.Metrics.Accuracy, result.Metrics.F1)
//
// # Conventions
//
// A score equal to the threshold classifies as positive. Every derived ratio
// uses safe division: a zero denominator yields 0.0, never NaN or an error.
// Both conventions are deliberate and stable; downstream comparisons depend
// on them.
//
// # Thread Safety
//
// All operations are pure functions over their inputs. They allocate only
// local data and return owned, immutable values, so concurrent calls need no
// coordination.
package ndt
