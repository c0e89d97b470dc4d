// Copyright Geoffrey Challen, 2026. All rights reserved.

package parity

import (
	"math"
	"sort"
	"strings"
)

// Stats holds descriptive statistics for one salary population. StdDev is a
// sample standard deviation and is only meaningful when Count >= 2.
type Stats struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Describe computes descriptive statistics over values. A nil or empty slice
// yields the zero Stats.
func Describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	s := Stats{
		Count:  len(sorted),
		Mean:   mean,
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(len(sorted)-1))
	}
	return s
}

// median of an already-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// money formats an amount with thousands separators and two decimals,
// e.g. 1234567.8 -> "1,234,567.80".
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	// Round to cents first so grouping sees the final digits.
	cents := int64(math.Round(v * 100))
	intPart := cents / 100
	frac := cents % 100

	digits := []byte{}
	if intPart == 0 {
		digits = []byte{'0'}
	}
	for intPart > 0 {
		digits = append([]byte{byte('0' + intPart%10)}, digits...)
		intPart /= 10
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(d)
	}
	b.WriteByte('.')
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))
	return b.String()
}
