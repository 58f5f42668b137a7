package response

import (
	"errors"
	"net/http"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/auth"
	"github.com/garudasec/billing-backend-go/internal/domain/billrate"
	"github.com/garudasec/billing-backend-go/internal/domain/client"
	"github.com/garudasec/billing-backend-go/internal/domain/document"
	"github.com/garudasec/billing-backend-go/internal/domain/employee"
	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
	"github.com/garudasec/billing-backend-go/internal/domain/rate"
	"github.com/garudasec/billing-backend-go/internal/domain/user"
	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthAccountNotFound):
		Unauthorized(w, "No account linked to this identity")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Master data errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client with this name already exists")
	case errors.Is(err, client.ErrUnitNotFound):
		NotFound(w, "Unit not found")
	case errors.Is(err, client.ErrUnitNameExists):
		Conflict(w, "Unit with this name already exists")
	case errors.Is(err, rate.ErrRateRecordNotFound):
		NotFound(w, "Rate record not found")
	case errors.Is(err, rate.ErrRateRecordExists):
		Conflict(w, "A rate record already exists for this scope")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeResigned):
		Conflict(w, "Employee already resigned")
	case errors.Is(err, employee.ErrEmployeeNotResignable):
		UnprocessableEntity(w, err.Error())

	// Billing errors
	case errors.Is(err, billrate.ErrEstimateNotFound):
		NotFound(w, "Estimate not found")
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrAlreadyIssued):
		Conflict(w, "Invoice already issued")
	case errors.Is(err, invoice.ErrEmptyInvoice),
		errors.Is(err, invoice.ErrLineItemRejected),
		errors.Is(err, billing.ErrUnknownComponent),
		errors.Is(err, billing.ErrNegativeComponent),
		errors.Is(err, billing.ErrNegativeRate),
		errors.Is(err, billing.ErrInvalidBasis),
		errors.Is(err, billing.ErrInvalidMonthDays),
		errors.Is(err, billing.ErrInvalidHeadCount),
		errors.Is(err, billing.ErrInvalidLineItem),
		errors.Is(err, billing.ErrInvalidPeriod):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, billing.ErrNoMatchingRate):
		NotFound(w, "No matching rate record")

	// Payroll errors
	case errors.Is(err, payroll.ErrSlipNotFound):
		NotFound(w, "Payroll slip not found")
	case errors.Is(err, payroll.ErrSlipExists):
		Conflict(w, "Payroll already generated for this period")
	case errors.Is(err, payroll.ErrSlipAlreadyPaid):
		Conflict(w, "Payroll slip already paid")
	case errors.Is(err, payroll.ErrPeriodOutOfRange),
		errors.Is(err, payroll.ErrNoEligibleStaff):
		UnprocessableEntity(w, err.Error())

	// Document errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, "File exceeds the maximum allowed size", nil)
	case errors.Is(err, document.ErrUnsupportedType):
		BadRequest(w, "Unsupported document type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
