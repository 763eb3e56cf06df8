package empirical

const (
	// default kernel bandwidth in eU units (ppm),
	// the covariate distance over which grains are assumed
	// to share a common underlying age
	DefaultBandwidthEU = 100.0

	// the estimate is O(N^2), bound the input size
	DefaultMaxGrainCount = 10000

	ResultRoundDigits = 3
)
