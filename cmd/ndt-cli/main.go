package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	ndt "github.com/jamesainslie/go-ndt"
	"github.com/jamesainslie/go-ndt/internal/dataset"
)

func main() {
	var (
		datasetPath = flag.String("dataset", "", "Path to YAML dataset file (required)")
		threshold   = flag.Float64("threshold", 0.5, "Decision threshold")
		sweep       = flag.Bool("sweep", false, "Sweep thresholds instead of evaluating one")
		sweepMin    = flag.Float64("sweep-min", 0.1, "Sweep minimum threshold")
		sweepMax    = flag.Float64("sweep-max", 1.0, "Sweep maximum threshold")
		sweepStep   = flag.Float64("sweep-step", 0.1, "Sweep step size")
		positive    = flag.Int("positive", 1, "Positive label value")
		negative    = flag.Int("negative", 0, "Negative label value")
		lenient     = flag.Bool("lenient", false, "Treat labels other than the positive label as negative")
		bestBy      = flag.String("best", "f1", "Metric used to pick the best sweep threshold")
	)
	flag.Parse()

	if *datasetPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ndt-cli -dataset FILE [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ds, err := dataset.Load(*datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading dataset: %v\n", err)
		os.Exit(1)
	}

	opts := []ndt.Option{
		ndt.WithPositiveLabel(*positive),
		ndt.WithNegativeLabel(*negative),
	}
	if *lenient {
		opts = append(opts, ndt.WithLabelValidation(ndt.LenientLabels))
	}

	if *sweep {
		// Dataset-supplied thresholds win over the generated range.
		thresholds := ds.Thresholds
		if len(thresholds) == 0 {
			thresholds = ndt.ThresholdRange(*sweepMin, *sweepMax, *sweepStep)
		}
		runSweep(ds, thresholds, *bestBy, opts)
	} else {
		runSingle(ds, *threshold, opts)
	}
}

func runSingle(ds *dataset.Dataset, threshold float64, opts []ndt.Option) {
	result, err := ndt.AnalyzeThreshold(ds.Scores, ds.Labels, threshold, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if ds.Name != "" {
		fmt.Printf("Dataset: %s (%d samples)\n", ds.Name, len(ds.Scores))
	}
	fmt.Printf("Threshold: %.3f\n", result.Threshold)
	fmt.Printf("Counts: tp=%d fp=%d tn=%d fn=%d\n",
		result.Counts.TP, result.Counts.FP, result.Counts.TN, result.Counts.FN)
	fmt.Printf("Accuracy:    %.4f\n", result.Metrics.Accuracy)
	fmt.Printf("Precision:   %.4f\n", result.Metrics.Precision)
	fmt.Printf("Recall:      %.4f\n", result.Metrics.Recall)
	fmt.Printf("Specificity: %.4f\n", result.Metrics.Specificity)
	fmt.Printf("F1:          %.4f\n", result.Metrics.F1)
	fmt.Printf("FPR:         %.4f\n", result.Metrics.FPR)
	fmt.Printf("FNR:         %.4f\n", result.Metrics.FNR)
}

func runSweep(ds *dataset.Dataset, thresholds []float64, bestBy string, opts []ndt.Option) {
	if _, ok := (ndt.MetricsReport{}).Value(bestBy); !ok {
		fmt.Fprintf(os.Stderr, "unknown metric: %s\n", bestBy)
		os.Exit(1)
	}

	results, err := ndt.Sweep(ds.Scores, ds.Labels, thresholds, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	if ds.Name != "" {
		fmt.Printf("Dataset: %s (%d samples)\n", ds.Name, len(ds.Scores))
	}
	fmt.Printf("Threshold Sweep Results\n")
	fmt.Println(strings.Repeat("-", 58))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s %-8s\n",
		"Thresh", "Acc", "Prec", "Rec", "Spec", "F1")

	for _, r := range results {
		fmt.Printf("%-8.3f %-8.4f %-8.4f %-8.4f %-8.4f %-8.4f\n",
			r.Threshold, r.Metrics.Accuracy, r.Metrics.Precision,
			r.Metrics.Recall, r.Metrics.Specificity, r.Metrics.F1)
	}

	fmt.Println(strings.Repeat("-", 58))
	if len(results) == 0 {
		fmt.Println("No thresholds evaluated")
		return
	}

	best := results[0]
	bestValue, _ := best.Metrics.Value(bestBy)
	for _, r := range results[1:] {
		if v, _ := r.Metrics.Value(bestBy); v > bestValue {
			best, bestValue = r, v
		}
	}
	fmt.Printf("Best by %s: threshold=%.3f (%s=%.4f)\n",
		bestBy, best.Threshold, bestBy, bestValue)
}
