package billing

import "errors"

var (
	ErrUnknownComponent  = errors.New("component key not in catalogue")
	ErrNegativeComponent = errors.New("component amount must not be negative")
	ErrNegativeRate      = errors.New("rule rate must not be negative")
	ErrInvalidBasis      = errors.New("rule basis is invalid")
	ErrInvalidMonthDays  = errors.New("month days must be greater than zero")
	ErrInvalidHeadCount  = errors.New("head count must be greater than zero")
	ErrInvalidLineItem   = errors.New("invoice line requires duty and month days greater than zero")
	ErrInvalidPeriod     = errors.New("payroll period is invalid")
	ErrNoMatchingRate    = errors.New("no matching rate record")
)
