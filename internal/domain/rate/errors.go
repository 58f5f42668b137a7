package rate

import "errors"

var (
	ErrRateRecordNotFound = errors.New("rate record not found")
	ErrRateRecordExists   = errors.New("rate record already exists for this client, unit and designation")
)
