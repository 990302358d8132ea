// sim/metrics_utils.go
package sim

import "math"

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculateMean returns the arithmetic mean of a data list, 0 when empty.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}
	return sum / float64(len(numbers))
}

// CalculateStdev returns the sample standard deviation of a data list,
// 0 when fewer than two samples.
func CalculateStdev[T IntOrFloat64](numbers []T) float64 {
	n := len(numbers)
	if n < 2 {
		return 0.0
	}
	mean := CalculateMean(numbers)
	var sumSq float64
	for _, number := range numbers {
		d := float64(number) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}
