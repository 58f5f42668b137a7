package billing

import (
	"strings"
	"time"
)

// RateCandidate is the scope of one stored rate record, as seen by the
// resolver. A nil UnitID means the record applies to every unit of the
// client.
type RateCandidate struct {
	ID          string
	UnitID      *string
	Designation string
	UpdatedAt   time.Time
}

// Resolution names the chosen record. Conflict is set when more than
// one candidate matched at the winning specificity, which the
// uniqueness invariant should prevent; the caller logs it.
type Resolution struct {
	ID       string
	Conflict bool
}

// ResolveRate picks the most specific record for a (unit, designation)
// pair: a unit-specific record always wins over a client-wide one. Ties
// resolve deterministically to the most recently updated record.
func ResolveRate(candidates []RateCandidate, unitID *string, designation string) (Resolution, error) {
	var unitMatches, clientWide []RateCandidate
	for _, c := range candidates {
		if !strings.EqualFold(c.Designation, designation) {
			continue
		}
		switch {
		case c.UnitID == nil:
			clientWide = append(clientWide, c)
		case unitID != nil && *c.UnitID == *unitID:
			unitMatches = append(unitMatches, c)
		}
	}

	pool := unitMatches
	if len(pool) == 0 {
		pool = clientWide
	}
	if len(pool) == 0 {
		return Resolution{}, ErrNoMatchingRate
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.UpdatedAt.After(best.UpdatedAt) {
			best = c
		}
	}

	return Resolution{ID: best.ID, Conflict: len(pool) > 1}, nil
}
