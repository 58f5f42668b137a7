package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComponentKey identifies one named earning component.
type ComponentKey string

const (
	ComponentBasic           ComponentKey = "basic"
	ComponentDA              ComponentKey = "da"
	ComponentHRA             ComponentKey = "hra"
	ComponentConveyance      ComponentKey = "conveyance"
	ComponentUniform         ComponentKey = "uniform"
	ComponentWashing         ComponentKey = "washing"
	ComponentMedical         ComponentKey = "medical"
	ComponentSpecial         ComponentKey = "special"
	ComponentBonus           ComponentKey = "bonus"
	ComponentGratuity        ComponentKey = "gratuity"
	ComponentNH              ComponentKey = "nh"
	ComponentRelievingCharge ComponentKey = "relieving_charge"
	ComponentOther           ComponentKey = "other"
)

// Catalogue is the closed key set active for one context. Bill-rate
// estimation and employee salary use overlapping but not identical sets.
type Catalogue string

const (
	CatalogueBillRate Catalogue = "bill_rate"
	CatalogueSalary   Catalogue = "salary"
)

var catalogueKeys = map[Catalogue][]ComponentKey{
	CatalogueBillRate: {
		ComponentBasic, ComponentDA, ComponentHRA, ComponentConveyance,
		ComponentUniform, ComponentWashing, ComponentBonus, ComponentGratuity,
		ComponentNH, ComponentRelievingCharge, ComponentOther,
	},
	CatalogueSalary: {
		ComponentBasic, ComponentDA, ComponentHRA, ComponentConveyance,
		ComponentMedical, ComponentSpecial, ComponentWashing, ComponentBonus,
		ComponentOther,
	},
}

// Keys returns the component keys valid for the catalogue.
func (c Catalogue) Keys() []ComponentKey {
	return catalogueKeys[c]
}

// Contains reports whether the key belongs to the catalogue.
func (c Catalogue) Contains(key ComponentKey) bool {
	for _, k := range catalogueKeys[c] {
		if k == key {
			return true
		}
	}
	return false
}

// EarningComponents maps component name to a non-negative amount.
// Absent keys are treated as zero.
type EarningComponents map[ComponentKey]decimal.Decimal

// Validate rejects keys outside the active catalogue and negative
// amounts. Amounts are never clamped.
func (ec EarningComponents) Validate(cat Catalogue) error {
	for key, amount := range ec {
		if !cat.Contains(key) {
			return fmt.Errorf("component %q: %w (catalogue %s)", key, ErrUnknownComponent, cat)
		}
		if amount.IsNegative() {
			return fmt.Errorf("component %q: %w", key, ErrNegativeComponent)
		}
	}
	return nil
}

// Clone returns an independent copy so edits to a working estimate never
// mutate the stored master rate.
func (ec EarningComponents) Clone() EarningComponents {
	out := make(EarningComponents, len(ec))
	for k, v := range ec {
		out[k] = v
	}
	return out
}

// Get returns the amount for a key, zero when absent.
func (ec EarningComponents) Get(key ComponentKey) decimal.Decimal {
	if v, ok := ec[key]; ok {
		return v
	}
	return decimal.Zero
}

// BasicDA returns basic plus dearness allowance, the EPF basis.
func (ec EarningComponents) BasicDA() decimal.Decimal {
	return ec.Get(ComponentBasic).Add(ec.Get(ComponentDA))
}

// Aggregate sums every present component into the gross figure. The key
// set is open: a key added to a catalogue later is summed automatically.
func Aggregate(ec EarningComponents) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range ec {
		total = total.Add(amount)
	}
	return total
}
