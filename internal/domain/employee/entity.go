package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusResigned EmployeeStatus = "resigned"
)

// Employee - a deployed guard or supervisor on the agency's rolls.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Designation  string
	UnitID       *string
	GrossSalary  decimal.Decimal
	Status       EmployeeStatus
	JoinDate     time.Time
	ResignDate   *time.Time

	// Statutory identifiers
	PAN    *string
	UAN    *string
	ESICNo *string

	// Bank details for salary disbursement
	BankName      *string
	BankAccountNo *string
	BankIFSC      *string

	Phone   *string
	Address *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	UnitName   *string
	ClientName *string
}

func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
