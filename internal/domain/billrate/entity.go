package billrate

import (
	"time"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/shopspring/decimal"
)

// BillRateEstimate - a saved bill-rate computation: the inputs that fed
// the engine plus the derived totals snapshot, persisted verbatim.
type BillRateEstimate struct {
	ID           string
	ClientID     string
	UnitID       *string
	RateRecordID *string
	Designation  string
	Nos          int
	MonthDays    int
	Components   billing.EarningComponents
	Rules        billing.RuleSet
	PFBasis      billing.PFBasis

	Gross         decimal.Decimal
	Statutory     billing.RuleAmounts
	SubTotal      decimal.Decimal
	ServiceCharge decimal.Decimal
	PerHeadTotal  decimal.Decimal
	GrandTotal    decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ClientName *string
	UnitName   *string
}
