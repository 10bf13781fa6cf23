package newton

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrorStats summarizes the pointwise absolute error |approx(t) - reference(t)|
// between two sampled curves.
type ErrorStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Max    float64

	// Samples is the number of pairs on which the statistics were computed.
	Samples int
	// Skipped is the number of pairs dropped because one side was not finite.
	Skipped int
}

// CompareCurves returns statistics on the absolute difference between
// reference and approx, sampled at the same points. Pairs where either
// value is NaN or infinite are skipped.
// Returns ErrLengthMismatch if the curves have different lengths and ErrEmpty
// if no finite pair remains.
func CompareCurves(reference, approx []float64) (st ErrorStats, err error) {

	if len(reference) != len(approx) {
		return st, fmt.Errorf("cannot CompareCurves: %w: len(reference)=%d != len(approx)=%d", ErrLengthMismatch, len(reference), len(approx))
	}

	diff := make(stats.Float64Data, 0, len(reference))

	for i := range reference {
		d := math.Abs(approx[i] - reference[i])
		if math.IsNaN(d) || math.IsInf(d, 0) {
			st.Skipped++
			continue
		}
		diff = append(diff, d)
	}

	if st.Samples = len(diff); st.Samples == 0 {
		return st, fmt.Errorf("cannot CompareCurves: %w: no finite sample", ErrEmpty)
	}

	if st.Mean, err = stats.Mean(diff); err != nil {
		return st, fmt.Errorf("stats.Mean: %w", err)
	}

	if st.Median, err = stats.Median(diff); err != nil {
		return st, fmt.Errorf("stats.Median: %w", err)
	}

	if st.StdDev, err = stats.StandardDeviation(diff); err != nil {
		return st, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	if st.Max, err = stats.Max(diff); err != nil {
		return st, fmt.Errorf("stats.Max: %w", err)
	}

	return st, nil
}
