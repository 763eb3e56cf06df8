package common

import "errors"

var (
	ErrorInvalidValue      = errors.New("invalid value")
	ErrorInvalidParameter  = errors.New("invalid parameter")
	ErrorDegenerateWeights = errors.New("degenerate weights")
	ErrorTooManyGrains     = errors.New("too many grains")
)
