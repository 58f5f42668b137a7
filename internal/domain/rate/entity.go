package rate

import (
	"time"

	"github.com/garudasec/billing-backend-go/internal/billing"
)

// RateRecord - the master rate card for a (client, unit, designation).
// A nil UnitID means the record applies to all units of the client.
type RateRecord struct {
	ID           string
	ClientID     string
	UnitID       *string
	Designation  string
	Components   billing.EarningComponents
	Rules        billing.RuleSet
	PFBasis      billing.PFBasis
	RoomRentType billing.RoomRentType
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ClientName *string
	UnitName   *string
}

// Clone deep-copies the record so a working estimate never mutates the
// stored master rate.
func (r RateRecord) Clone() RateRecord {
	out := r
	out.Components = r.Components.Clone()
	out.Rules = r.Rules.Clone()
	return out
}
