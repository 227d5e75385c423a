package ndt

import "testing"

func TestApplyThreshold(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		threshold float64
		opts      []Option
		want      []int
	}{
		{
			name:      "basic split",
			scores:    []float64{0.2, 0.7, 0.4, 0.9},
			threshold: 0.5,
			want:      []int{0, 1, 0, 1},
		},
		{
			name:      "equality is positive",
			scores:    []float64{0.5},
			threshold: 0.5,
			want:      []int{1},
		},
		{
			name:      "all below",
			scores:    []float64{0.1, 0.2},
			threshold: 0.9,
			want:      []int{0, 0},
		},
		{
			name:      "empty input",
			scores:    []float64{},
			threshold: 0.5,
			want:      []int{},
		},
		{
			name:      "negative scores and threshold",
			scores:    []float64{-1.5, -0.5, 0.0},
			threshold: -0.5,
			want:      []int{0, 1, 1},
		},
		{
			name:      "custom labels",
			scores:    []float64{0.2, 0.7},
			threshold: 0.5,
			opts:      []Option{WithPositiveLabel(5), WithNegativeLabel(-5)},
			want:      []int{-5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyThreshold(tt.scores, tt.threshold, tt.opts...)

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("decision[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplyThreshold_EqualityAnyValue(t *testing.T) {
	// The equality-positive convention must hold at arbitrary cutoffs.
	for _, cutoff := range []float64{-3.7, 0.0, 0.025, 1.0, 42.5} {
		got := ApplyThreshold([]float64{cutoff}, cutoff)
		if len(got) != 1 || got[0] != 1 {
			t.Errorf("ApplyThreshold([%v], %v) = %v, want [1]", cutoff, cutoff, got)
		}
	}
}

func TestThresholdRange(t *testing.T) {
	thresholds := ThresholdRange(0.01, 0.1, 0.02)

	want := []float64{0.01, 0.03, 0.05, 0.07, 0.09}
	if len(thresholds) != len(want) {
		t.Errorf("got %d thresholds, want %d", len(thresholds), len(want))
		t.Logf("got: %v", thresholds)
		return
	}

	for i := range want {
		diff := thresholds[i] - want[i]
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("threshold[%d] = %v, want %v", i, thresholds[i], want[i])
		}
	}
}

func TestThresholdRange_BadStep(t *testing.T) {
	if got := ThresholdRange(0, 1, 0); got != nil {
		t.Errorf("zero step: got %v, want nil", got)
	}
	if got := ThresholdRange(0, 1, -0.1); got != nil {
		t.Errorf("negative step: got %v, want nil", got)
	}
}
