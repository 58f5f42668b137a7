package invoice

import "errors"

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrEmptyInvoice     = errors.New("invoice must contain at least one line item")
	ErrLineItemRejected = errors.New("line item rejected")
	ErrAlreadyIssued    = errors.New("invoice already issued")
)
