package client

import "github.com/garudasec/billing-backend-go/internal/pkg/validator"

type CreateClientRequest struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	StateCode   string  `json:"state_code"`
	GSTIN       *string `json:"gstin,omitempty"`
	PAN         *string `json:"pan,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}
	if validator.IsEmpty(r.StateCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "state_code",
			Message: "state_code is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	StateCode   *string `json:"state_code,omitempty"`
	GSTIN       *string `json:"gstin,omitempty"`
	PAN         *string `json:"pan,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StateCode != nil && validator.IsEmpty(*r.StateCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "state_code",
			Message: "state_code must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateUnitRequest struct {
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
}

func (r *CreateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClientResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	StateCode   string  `json:"state_code"`
	GSTIN       *string `json:"gstin,omitempty"`
	PAN         *string `json:"pan,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type UnitResponse struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	IsActive bool    `json:"is_active"`
}
