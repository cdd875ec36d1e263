package trainer

import "math"

import "github.com/neurlang/earlystop/datasets"
import "github.com/neurlang/earlystop/parallel"

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if significance == 0 || significance >= 100 || N <= 1 {
		return N
	}

	z := zScoreFromAlpha(100 - significance)

	// worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	correctedSS := ss * float64(N) / (float64(N) - 1 + ss)

	if n := int(math.Ceil(correctedSS)); n < N {
		return n
	}
	return N
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

// NewEvaluateFunc returns a func measuring the accuracy of the model on a
// statistically sufficient sample of samples, spread evenly over them.
// It returns 0 when there are no samples.
func NewEvaluateFunc(model Learner, samples []datasets.Sample, significance byte, threads int) func() float64 {
	var n = sampleSize(len(samples), significance)
	return func() float64 {
		if n == 0 {
			return 0
		}
		correct := parallel.Count(n, threads, func(i int) bool {
			s := samples[i*len(samples)/n]
			return model.Predict(s.Feature) == s.Output
		})
		return float64(correct) / float64(n)
	}
}
