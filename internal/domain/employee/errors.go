package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeCodeExists    = errors.New("employee code already exists")
	ErrEmployeeResigned      = errors.New("employee already resigned")
	ErrEmployeeNotResignable = errors.New("resign date must not precede join date")
)
