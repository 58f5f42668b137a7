package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enum
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice - one bill to a client for a period, with its line items and
// the computed footer totals persisted verbatim.
type Invoice struct {
	ID          string
	InvoiceNo   string
	ClientID    string
	UnitID      *string
	PeriodMonth int
	PeriodYear  int
	Status      InvoiceStatus
	LineItems   []LineItem

	CGSTPercent decimal.Decimal
	SGSTPercent decimal.Decimal
	IGSTPercent decimal.Decimal
	TDSPercent  decimal.Decimal
	Others      decimal.Decimal

	SubTotal   decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTAmount decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	TDSAmount  decimal.Decimal
	NetAmount  decimal.Decimal

	IssuedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ClientName      *string
	ClientStateCode *string
	ClientGSTIN     *string
	UnitName        *string
}

// LineItem - one billed service line with its statutory snapshot and
// computed amounts.
type LineItem struct {
	ID        string
	InvoiceID string
	Service   string
	NOP       int
	Duty      int
	Rate      decimal.Decimal
	MonthDays int

	SCPercent  decimal.Decimal
	PFPercent  decimal.Decimal
	ESIPercent decimal.Decimal
	LWFRate    decimal.Decimal
	LevyRate   decimal.Decimal

	Amount     decimal.Decimal
	SCAmount   decimal.Decimal
	PFAmount   decimal.Decimal
	ESIAmount  decimal.Decimal
	LWFAmount  decimal.Decimal
	LevyAmount decimal.Decimal
}
