package empirical

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/heuncert/common"
	"gonum.org/v1/gonum/stat"
)

func newTestEstimator(t *testing.T, bandwidth float64) *Estimator {
	t.Helper()
	estimator, err := NewEstimator(bandwidth, 0, 0, false)
	require.NoError(t, err)
	return estimator
}

func TestEstimateSinglePointDegeneracy(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	res, err := estimator.Estimate(context.Background(),
		[]float64{71.3}, []float64{1.8}, []float64{50})
	require.NoError(t, err)
	require.Len(t, res, 1)

	// one grain has zero scatter around itself
	assert.Equal(t, 1.8, res[0])
}

func TestEstimateMonotonicWidening(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	values := []float64{71.3, 68.9, 74.2, 66.1, 62.7, 58.4}
	sigmas := []float64{1.8, 1.6, 2.1, 1.9, 1.4, 1.7}
	covariates := []float64{19.4, 23.4, 28.7, 37.7, 49.2, 59.4}

	res, err := estimator.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)
	require.Len(t, res, len(values))

	for i := range res {
		assert.GreaterOrEqual(t, res[i], sigmas[i], "grain %d narrowed", i)
	}
}

func TestEstimateIdenticalCovariateCollapse(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	values := []float64{10, 12, 14, 20}
	sigmas := []float64{1, 1, 1, 1}
	covariates := []float64{55, 55, 55, 55}

	res, err := estimator.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)

	// equal covariates make every weight equal, the external scatter is
	// the plain population standard deviation of the ages
	popStd := math.Sqrt(stat.PopVariance(values, nil))
	want := math.Hypot(popStd, 1)
	for i := range res {
		assert.InDelta(t, want, res[i], 1e-9)
	}
}

func TestEstimateBandwidthLimits(t *testing.T) {
	values := []float64{10, 12, 14, 20}
	sigmas := []float64{1, 1, 1, 1}
	covariates := []float64{5, 40, 90, 300}

	// a huge bandwidth flattens the weights, same result as equal covariates
	wide := newTestEstimator(t, 1e9)
	res, err := wide.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)

	popStd := math.Sqrt(stat.PopVariance(values, nil))
	want := math.Hypot(popStd, 1)
	for i := range res {
		assert.InDelta(t, want, res[i], 1e-6)
	}

	// a tiny bandwidth leaves only the self weight, no external scatter
	narrow := newTestEstimator(t, 1e-6)
	res, err = narrow.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)
	for i := range res {
		assert.InDelta(t, sigmas[i], res[i], 1e-9)
	}
}

func TestEstimateQuadratureExactness(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	// equal covariates, population std of [0,6] is exactly 3,
	// sqrt(3^2 + 4^2) = 5
	res, err := estimator.Estimate(context.Background(),
		[]float64{0, 6}, []float64{4, 4}, []float64{50, 50})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res[0], 1e-12)
	assert.InDelta(t, 5.0, res[1], 1e-12)
}

func TestEstimateIsolatedGrain(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	values := []float64{100, 102, 200}
	sigmas := []float64{1, 1, 1}
	covariates := []float64{0, 0, 1000}

	res, err := estimator.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)

	// the grain at eU 1000 is ten bandwidths from its neighbors and
	// effectively alone, its error stays analytical
	assert.InDelta(t, 1.0, res[2], 1e-6)

	// the two grains at eU 0 see each other fully, population std of
	// [100,102] is 1, widened to sqrt(2)
	assert.InDelta(t, math.Sqrt2, res[0], 1e-6)
	assert.InDelta(t, math.Sqrt2, res[1], 1e-6)
}

func TestEstimateInvalidInputs(t *testing.T) {
	for _, bandwidth := range []float64{0, -5} {
		_, err := NewEstimator(bandwidth, 0, 0, false)
		assert.ErrorIs(t, err, common.ErrorInvalidParameter)
	}

	estimator := newTestEstimator(t, 100)
	ctx := context.Background()

	_, err := estimator.Estimate(ctx, []float64{1, 2}, []float64{1}, []float64{10, 20})
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	_, err = estimator.Estimate(ctx, []float64{1, 2}, []float64{1, 1}, []float64{10})
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	_, err = estimator.Estimate(ctx, nil, nil, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	// negative analytical error is a caller bug
	_, err = estimator.Estimate(ctx, []float64{1, 2}, []float64{1, -1}, []float64{10, 20})
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	// negative covariate is a caller bug
	_, err = estimator.Estimate(ctx, []float64{1, 2}, []float64{1, 1}, []float64{10, -20})
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)
}

func TestEstimateTooManyGrains(t *testing.T) {
	estimator, err := NewEstimator(100, 2, 0, false)
	require.NoError(t, err)

	_, err = estimator.Estimate(context.Background(),
		[]float64{1, 2, 3}, []float64{1, 1, 1}, []float64{10, 20, 30})
	assert.ErrorIs(t, err, common.ErrorTooManyGrains)
}

func TestEstimateStrictFinite(t *testing.T) {
	strict, err := NewEstimator(100, 0, 0, true)
	require.NoError(t, err)

	_, err = strict.Estimate(context.Background(),
		[]float64{100, math.NaN(), 102}, []float64{1, 1, 1}, []float64{50, 50, 50})
	assert.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = strict.Estimate(context.Background(),
		[]float64{100, 101, 102}, []float64{1, 1, 1}, []float64{50, math.Inf(1), 50})
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestEstimateExcludesNonFiniteAge(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	// the NaN age drops out of every weighted sum, the two finite ages
	// see each other as if the set had two grains
	res, err := estimator.Estimate(context.Background(),
		[]float64{100, math.NaN(), 102}, []float64{1, 1, 1}, []float64{50, 50, 50})
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt2, res[0], 1e-9)
	assert.InDelta(t, math.Sqrt2, res[2], 1e-9)
}

func TestEstimateNonFiniteCovariate(t *testing.T) {
	estimator := newTestEstimator(t, 100)

	values := []float64{100, 102, 104}
	sigmas := []float64{1, 1, 1}
	covariates := []float64{50, math.NaN(), 50}

	res, err := estimator.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)

	// a grain without a covariate has no neighborhood, its error is
	// passed through unchanged
	assert.Equal(t, 1.0, res[1])

	// and it is excluded from the other grains' scatter
	want := math.Hypot(2, 1) // population std of [100,104] is 2
	assert.InDelta(t, want, res[0], 1e-9)
	assert.InDelta(t, want, res[2], 1e-9)
}

func TestEstimateSerialMatchesParallel(t *testing.T) {
	values := []float64{71.3, 68.9, 74.2, 66.1, 62.7, 58.4, 61.0, 55.8}
	sigmas := []float64{1.8, 1.6, 2.1, 1.9, 1.4, 1.7, 2.3, 1.5}
	covariates := []float64{19.4, 23.4, 28.7, 37.7, 49.2, 59.4, 68.9, 79.5}

	serial, err := NewEstimator(100, 0, 1, false)
	require.NoError(t, err)
	parallel, err := NewEstimator(100, 0, 8, false)
	require.NoError(t, err)

	res1, err := serial.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)
	res2, err := parallel.Estimate(context.Background(), values, sigmas, covariates)
	require.NoError(t, err)

	for i := range res1 {
		assert.Equal(t, res1[i], res2[i])
	}
}
