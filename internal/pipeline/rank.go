package pipeline

import (
	"math"
	"sort"
)

// PercentileRank converts values to fractional percentile ranks in (0, 1].
// Values are ranked ascending; ties share the average of the ranks they span,
// and each rank is divided by the number of ranked values. NaN entries are not
// ranked and stay NaN.
func PercentileRank(values []float64) []float64 {
	out := make([]float64, len(values))
	order := make([]int, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	n := float64(len(order))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && values[order[end]] == values[order[start]] {
			end++
		}
		// positions start..end-1 cover the 1-based ranks start+1..end
		avg := float64(start+1+end) / 2
		for _, i := range order[start:end] {
			out[i] = avg / n
		}
		start = end
	}
	return out
}
