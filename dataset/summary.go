package dataset

import (
	"github.com/montanaflynn/stats"
	"github.com/uyouii/heuncert/common"
	"github.com/uyouii/heuncert/model"
	"github.com/uyouii/heuncert/utils"
	gonumstat "gonum.org/v1/gonum/stat"
)

// Summarize profiles a grain set before estimation, so the run log
// shows what the estimator was fed.
func Summarize(grainSet *model.GrainSet) (*model.DatasetSummary, error) {
	if grainSet.IsEmpty() {
		return nil, common.ErrorInvalidValue
	}

	ages, eus := grainSet.Ages(), grainSet.EUs()

	medianAge, err := stats.Median(ages)
	if err != nil {
		return nil, err
	}
	medianEU, err := stats.Median(eus)
	if err != nil {
		return nil, err
	}
	euLow, err := stats.Percentile(eus, 10)
	if err != nil {
		return nil, err
	}
	euHigh, err := stats.Percentile(eus, 90)
	if err != nil {
		return nil, err
	}

	res := &model.DatasetSummary{
		GrainCount:  grainSet.Len(),
		MeanAge:     utils.FormatFloat(gonumstat.Mean(ages, nil), 3),
		MedianAge:   utils.FormatFloat(medianAge, 3),
		StddevAge:   utils.FormatFloat(gonumstat.StdDev(ages, nil), 3),
		MeanEU:      utils.FormatFloat(gonumstat.Mean(eus, nil), 3),
		MedianEU:    utils.FormatFloat(medianEU, 3),
		EURangeLow:  utils.FormatFloat(euLow, 3),
		EURangeHigh: utils.FormatFloat(euHigh, 3),
	}
	return res, nil
}
