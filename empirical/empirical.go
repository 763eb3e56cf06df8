package empirical

import (
	"context"
	"math"
	"runtime"

	"github.com/uyouii/heuncert/common"
	"golang.org/x/sync/errgroup"
)

// Estimator widens the reported analytical error of each grain by the
// kernel-weighted scatter of ages among grains with similar eU.
type Estimator struct {
	kernel       *GaussianKernel
	maxGrainCnt  int
	parallelism  int
	strictFinite bool
}

// NewEstimator builds an estimator with the given kernel bandwidth.
// maxGrainCnt and parallelism fall back to defaults when <= 0.
// With strictFinite set, non-finite ages, errors or covariates reject
// the whole batch instead of being excluded from the weighted sums.
func NewEstimator(bandwidth float64, maxGrainCnt, parallelism int, strictFinite bool) (*Estimator, error) {
	kernel, err := NewGaussianKernel(bandwidth)
	if err != nil {
		return nil, err
	}
	if maxGrainCnt <= 0 {
		maxGrainCnt = DefaultMaxGrainCount
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Estimator{
		kernel:       kernel,
		maxGrainCnt:  maxGrainCnt,
		parallelism:  parallelism,
		strictFinite: strictFinite,
	}, nil
}

// Estimate computes one empirical sigma per grain.
//
// For grain i the weight vector over all covariates is centered on
// covariates[i], the self weight included, and the weighted population
// standard deviation of values under those weights is the external
// scatter. The result is the quadrature sum of the external scatter
// and internalSigmas[i], so it never narrows the reported error.
//
// Each grain only reads the shared input slices and writes its own
// output slot, so the loop runs on an errgroup without locking.
func (e *Estimator) Estimate(ctx context.Context,
	values, internalSigmas, covariates []float64) ([]float64, error) {
	n := len(values)
	if n == 0 || len(internalSigmas) != n || len(covariates) != n {
		return nil, common.ErrorInvalidParameter
	}
	if n > e.maxGrainCnt {
		return nil, common.ErrorTooManyGrains
	}
	if err := e.checkInputs(values, internalSigmas, covariates); err != nil {
		return nil, err
	}

	res := make([]float64, n)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.parallelism)

	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			// a grain without a usable covariate has no neighborhood,
			// keep its reported error unchanged
			if !IsFinite(covariates[i]) {
				res[i] = internalSigmas[i]
				return nil
			}

			weights := e.kernel.WeightVector(covariates, covariates[i])
			sigmaExternal, err := WeightedStd(values, weights)
			if err != nil {
				return err
			}
			res[i] = math.Hypot(sigmaExternal, internalSigmas[i])
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Estimator) checkInputs(values, internalSigmas, covariates []float64) error {
	for i := range values {
		if internalSigmas[i] < 0 {
			return common.ErrorInvalidParameter
		}
		if IsFinite(covariates[i]) && covariates[i] < 0 {
			return common.ErrorInvalidParameter
		}
		if !e.strictFinite {
			continue
		}
		if !IsFinite(values[i]) || !IsFinite(internalSigmas[i]) || !IsFinite(covariates[i]) {
			return common.ErrorInvalidValue
		}
	}
	return nil
}
