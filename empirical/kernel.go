package empirical

import (
	"math"

	"github.com/uyouii/heuncert/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianKernel weights grains by their eU distance to a center grain.
// The gaussian normalization constant cancels inside the weighted
// statistics, only the weight ratios matter.
type GaussianKernel struct {
	bandwidth float64
	norm      distuv.Normal
}

func NewGaussianKernel(bandwidth float64) (*GaussianKernel, error) {
	if bandwidth <= 0 || math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return nil, common.ErrorInvalidParameter
	}
	return &GaussianKernel{
		bandwidth: bandwidth,
		norm: distuv.Normal{
			Mu:    0,
			Sigma: bandwidth,
		},
	}, nil
}

func (k *GaussianKernel) Bandwidth() float64 {
	return k.bandwidth
}

// Weight is the gaussian density of x around center.
// A non-finite x yields NaN so that the weighted statistics
// exclude the pair instead of poisoning the sums.
func (k *GaussianKernel) Weight(x, center float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	return k.norm.Prob(x - center)
}

// WeightVector evaluates Weight for every covariate against one center.
func (k *GaussianKernel) WeightVector(xs []float64, center float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = k.Weight(x, center)
	}
	return res
}
