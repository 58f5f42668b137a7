package employee

import (
	"time"

	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Designation  string          `json:"designation"`
	UnitID       *string         `json:"unit_id,omitempty"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	JoinDate     string          `json:"join_date"`
	PAN          *string         `json:"pan,omitempty"`
	UAN          *string         `json:"uan,omitempty"`
	ESICNo       *string         `json:"esic_no,omitempty"`
	BankName     *string         `json:"bank_name,omitempty"`
	BankAccount  *string         `json:"bank_account_no,omitempty"`
	BankIFSC     *string         `json:"bank_ifsc,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Address      *string         `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the NNNN-NNNN format",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if !validator.IsNonNegativeAmount(r.GrossSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must not be negative",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName    *string          `json:"full_name,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	UnitID      *string          `json:"unit_id,omitempty"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	PAN         *string          `json:"pan,omitempty"`
	UAN         *string          `json:"uan,omitempty"`
	ESICNo      *string          `json:"esic_no,omitempty"`
	BankName    *string          `json:"bank_name,omitempty"`
	BankAccount *string          `json:"bank_account_no,omitempty"`
	BankIFSC    *string          `json:"bank_ifsc,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation must not be empty",
		})
	}
	if r.GrossSalary != nil && !validator.IsNonNegativeAmount(*r.GrossSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResignEmployeeRequest struct {
	ResignDate string `json:"resign_date"`
}

func (r *ResignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ResignDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "resign_date",
			Message: "resign_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ResignDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "resign_date",
			Message: "resign_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Designation  string          `json:"designation"`
	UnitID       *string         `json:"unit_id,omitempty"`
	UnitName     *string         `json:"unit_name,omitempty"`
	ClientName   *string         `json:"client_name,omitempty"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Status       string          `json:"status"`
	JoinDate     string          `json:"join_date"`
	ResignDate   *string         `json:"resign_date,omitempty"`
	PAN          *string         `json:"pan,omitempty"`
	UAN          *string         `json:"uan,omitempty"`
	ESICNo       *string         `json:"esic_no,omitempty"`
	BankName     *string         `json:"bank_name,omitempty"`
	BankAccount  *string         `json:"bank_account_no,omitempty"`
	BankIFSC     *string         `json:"bank_ifsc,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Address      *string         `json:"address,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type ListEmployeeFilter struct {
	UnitID      string
	Designation string
	Status      string
	Search      string
	Page        int
	Limit       int
}
