package model

// EmpiricalResult pairs one grain with its widened uncertainty.
type EmpiricalResult struct {
	Grain          Grain   `json:"grain"`
	EmpiricalErrMa float64 `json:"empirical_err,omitempty"`
}

type DatasetSummary struct {
	GrainCount  int     `json:"grain_count,omitempty"`
	MeanAge     float64 `json:"mean_age,omitempty"`
	MedianAge   float64 `json:"median_age,omitempty"`
	StddevAge   float64 `json:"stddev_age,omitempty"`
	MeanEU      float64 `json:"mean_eu,omitempty"`
	MedianEU    float64 `json:"median_eu,omitempty"`
	EURangeLow  float64 `json:"eu_range_low,omitempty"`  // 10th percentile
	EURangeHigh float64 `json:"eu_range_high,omitempty"` // 90th percentile
}
