package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestAggregate_SumsAllPresentKeys(t *testing.T) {
	t.Parallel()

	ec := EarningComponents{
		ComponentBasic:      dec("15000"),
		ComponentDA:         dec("3000"),
		ComponentHRA:        dec("4000"),
		ComponentConveyance: dec("500"),
	}

	assertDec(t, "22500", Aggregate(ec))
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	ec := EarningComponents{
		ComponentBasic:   dec("10000"),
		ComponentUniform: dec("250"),
		ComponentNH:      dec("400"),
	}

	first := Aggregate(ec)
	second := Aggregate(ec)

	assert.True(t, first.Equal(second))
	assertDec(t, "10650", first)
}

func TestAggregate_EmptyIsZero(t *testing.T) {
	t.Parallel()

	assertDec(t, "0", Aggregate(EarningComponents{}))
	assertDec(t, "0", Aggregate(nil))
}

func TestEarningComponents_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		catalogue Catalogue
		ec        EarningComponents
		wantErr   error
	}{
		{
			name:      "valid bill-rate set",
			catalogue: CatalogueBillRate,
			ec: EarningComponents{
				ComponentBasic:           dec("12000"),
				ComponentRelievingCharge: dec("300"),
			},
		},
		{
			name:      "relieving charge not in salary catalogue",
			catalogue: CatalogueSalary,
			ec: EarningComponents{
				ComponentBasic:           dec("12000"),
				ComponentRelievingCharge: dec("300"),
			},
			wantErr: ErrUnknownComponent,
		},
		{
			name:      "medical not in bill-rate catalogue",
			catalogue: CatalogueBillRate,
			ec:        EarningComponents{ComponentMedical: dec("100")},
			wantErr:   ErrUnknownComponent,
		},
		{
			name:      "negative amount rejected, not clamped",
			catalogue: CatalogueBillRate,
			ec:        EarningComponents{ComponentBasic: dec("-1")},
			wantErr:   ErrNegativeComponent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ec.Validate(tt.catalogue)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEarningComponents_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	master := EarningComponents{ComponentBasic: dec("10000")}
	working := master.Clone()

	working[ComponentBasic] = dec("99999")
	working[ComponentHRA] = dec("4000")

	assertDec(t, "10000", master.Get(ComponentBasic))
	_, ok := master[ComponentHRA]
	assert.False(t, ok)
}

func TestEarningComponents_BasicDA(t *testing.T) {
	t.Parallel()

	ec := EarningComponents{
		ComponentBasic: dec("15000"),
		ComponentDA:    dec("3000"),
		ComponentHRA:   dec("4000"),
	}
	assertDec(t, "18000", ec.BasicDA())

	// DA absent defaults to zero
	require.NotContains(t, EarningComponents{ComponentBasic: dec("500")}, ComponentDA)
	assertDec(t, "500", EarningComponents{ComponentBasic: dec("500")}.BasicDA())
}
