package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the platform's business-logic errors.
Repository-level sentinels (gorm.ErrRecordNotFound and friends) are converted
into these at the service boundary.
*/

// --- Factory functions (wrap an underlying error) ---

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Factory functions (fresh errors) ---

// ErrInvalidOperation flags an operation that is not allowed in context.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an operation not allowed in the entity's current status.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Predefined variables (frequent, static errors) ---

// ErrInsufficientPermissions is returned when the caller is not the entitled
// actor for a mutating operation.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrInvalidUserRole is returned when the operation is not defined for the
// caller's role at all.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Interests ---

// ErrInterestNotPending is returned when a status transition is attempted on
// an interest that has already left the pending state. Terminal states are
// final; the conditional write reports zero rows affected and no side effects
// have occurred.
var ErrInterestNotPending = New(
	CodeInvalidStatus,
	"interest",
	"Interest has already been responded to",
	http.StatusConflict,
)

// ErrInterestAlreadyExists is returned when the investor already declared
// interest in the round.
var ErrInterestAlreadyExists = New(
	CodeAlreadyExists,
	"interest",
	"Interest for this round already exists",
	http.StatusConflict,
)

// --- Rounds ---

// ErrInvalidRoundStatus is returned for operations not allowed in the round's
// current status.
var ErrInvalidRoundStatus = New(
	CodeInvalidStatus,
	"round",
	"Operation not allowed for the current round status",
	http.StatusConflict,
)

// ErrRoundNotOpen is returned when an interest is submitted against a round
// that is not accepting declarations.
var ErrRoundNotOpen = New(
	CodeInvalidStatus,
	"round",
	"Round is not open for investment interest",
	http.StatusConflict,
)

// ErrCurrencyMismatch is returned when a contribution's currency differs from
// the round's currency.
var ErrCurrencyMismatch = New(
	CodeValidationFailed,
	"round",
	"Contribution currency does not match the round currency",
	http.StatusBadRequest,
)

// --- Profiles ---

// ErrProfileAlreadyExists is returned when the actor already onboarded a
// profile of that kind.
var ErrProfileAlreadyExists = New(
	CodeAlreadyExists,
	"profile",
	"Profile for this account already exists",
	http.StatusConflict,
)

// ErrCannotFollowOwnCompany is returned when a company owner tries to follow
// their own company.
var ErrCannotFollowOwnCompany = New(
	CodeInvalidOperation,
	"follow",
	"Cannot follow your own company",
	http.StatusBadRequest,
)
