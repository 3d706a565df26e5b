package services

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// sampleMeanStd returns the mean and the unbiased (n-1) standard deviation.
// ok is false with fewer than two values, in which case std is NaN.
func sampleMeanStd(values []float64) (mean, std float64, ok bool) {
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN(), false
	case 1:
		return values[0], math.NaN(), false
	}
	mean, std = stat.MeanStdDev(values, nil)
	return mean, std, true
}

// populationMeanStd is sampleMeanStd with the population (n) standard deviation.
func populationMeanStd(values []float64) (mean, std float64, ok bool) {
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN(), false
	case 1:
		return values[0], math.NaN(), false
	}
	mean, std = stat.PopMeanStdDev(values, nil)
	return mean, std, true
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}
