package empirical

import (
	"math"

	"github.com/uyouii/heuncert/common"
)

// WeightedMean is sum(w*v) / sum(w). Pairs where either side is
// non-finite are left out of both sums.
func WeightedMean(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, common.ErrorInvalidParameter
	}

	var sumW, sumWV float64
	for i := range values {
		if !IsFinite(values[i]) || !IsFinite(weights[i]) {
			continue
		}
		sumW += weights[i]
		sumWV += weights[i] * values[i]
	}

	if sumW <= 0 || !IsFinite(sumW) {
		return 0, common.ErrorDegenerateWeights
	}
	return sumWV / sumW, nil
}

// WeightedStd is the weighted population standard deviation,
// sqrt(sum(w*(v-mean)^2) / sum(w)). Population normalization,
// no Bessel correction: divide by the weight sum, not by an
// effective count minus one.
func WeightedStd(values, weights []float64) (float64, error) {
	mean, err := WeightedMean(values, weights)
	if err != nil {
		return 0, err
	}

	var sumW, sumWD float64
	for i := range values {
		if !IsFinite(values[i]) || !IsFinite(weights[i]) {
			continue
		}
		d := values[i] - mean
		sumW += weights[i]
		sumWD += weights[i] * d * d
	}
	return math.Sqrt(sumWD / sumW), nil
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
