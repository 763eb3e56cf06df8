package empirical

import (
	"context"

	"github.com/uyouii/heuncert/common"
	"github.com/uyouii/heuncert/model"
	"github.com/uyouii/heuncert/utils"
	"go.uber.org/zap"
)

type Config struct {
	BandwidthEU   float64
	MaxGrainCount int
	Parallelism   int
	StrictFinite  bool
}

func DefaultConfig() *Config {
	return &Config{
		BandwidthEU:   DefaultBandwidthEU,
		MaxGrainCount: DefaultMaxGrainCount,
	}
}

// CalculateEmpiricalErrors runs the estimator over a grain set and
// pairs every grain with its widened uncertainty, rounded for report
// output. The whole batch fails on the first invalid input, no partial
// results are returned.
func CalculateEmpiricalErrors(ctx context.Context, grainSet *model.GrainSet,
	config *Config) ([]model.EmpiricalResult, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("CalculateEmpiricalErrors recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("grainSet", grainSet))
		}
	}()

	if grainSet.IsEmpty() {
		logger.Error("grain set is empty, skip calculate")
		return nil, common.ErrorInvalidValue
	}

	if config == nil {
		config = DefaultConfig()
	}

	estimator, err := NewEstimator(config.BandwidthEU,
		config.MaxGrainCount, config.Parallelism, config.StrictFinite)
	if err != nil {
		logger.Error("NewEstimator failed", zap.Error(err),
			zap.Float64("bandwidth", config.BandwidthEU))
		return nil, err
	}

	empiricalErrs, err := estimator.Estimate(ctx,
		grainSet.Ages(), grainSet.AgeErrs(), grainSet.EUs())
	if err != nil {
		logger.Error("Estimate failed", zap.Error(err),
			zap.Int("grainCount", grainSet.Len()))
		return nil, err
	}

	res := make([]model.EmpiricalResult, 0, grainSet.Len())
	for i, grain := range grainSet.Grains {
		res = append(res, model.EmpiricalResult{
			Grain:          grain,
			EmpiricalErrMa: utils.FormatFloat(empiricalErrs[i], ResultRoundDigits),
		})
	}

	logger.Info("calculate empirical errors success",
		zap.Int("grainCount", grainSet.Len()),
		zap.Float64("bandwidth", estimator.kernel.Bandwidth()))

	return res, nil
}
