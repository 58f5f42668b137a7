package billrate

import "errors"

var (
	ErrEstimateNotFound = errors.New("bill rate estimate not found")
)
