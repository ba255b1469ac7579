package analysis

import (
	"math"
	"sort"
)

// Moments are the aggregate statistics over a sequence of per-line
// indentation depths. Score is the mean of squared depths, not the
// variance: by skipping the mean subtraction it rewards deep single
// outliers more than variance does. The identity
// score = variance + mean^2 holds for every non-empty input.
type Moments struct {
	Score     float64
	Sum       int
	Mean      float64
	Variance  float64
	StdDev    float64
	Median    float64
	Max       int
	Histogram map[int]int
}

// ComputeMoments derives every statistic from the same depth sequence.
// Empty input yields zero values rather than NaN.
func ComputeMoments(depths []int) Moments {
	m := Moments{Histogram: make(map[int]int)}
	n := len(depths)
	if n == 0 {
		return m
	}

	sumSq := 0
	for _, d := range depths {
		m.Sum += d
		sumSq += d * d
		if d > m.Max {
			m.Max = d
		}
		m.Histogram[d]++
	}

	count := float64(n)
	m.Mean = float64(m.Sum) / count
	m.Score = float64(sumSq) / count

	var devSq float64
	for _, d := range depths {
		dev := float64(d) - m.Mean
		devSq += dev * dev
	}
	// population variance: divide by n, not n-1
	m.Variance = devSq / count
	m.StdDev = math.Sqrt(m.Variance)

	sorted := append([]int(nil), depths...)
	sort.Ints(sorted)
	mid := n / 2
	if n%2 == 1 {
		m.Median = float64(sorted[mid])
	} else {
		m.Median = float64(sorted[mid-1]+sorted[mid]) / 2
	}

	return m
}
