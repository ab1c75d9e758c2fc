package apperrors

import "net/http"

// Predefined domain errors. Each business-rule failure the core can
// produce has its own variable so callers can match on identity and
// surface a precise reason.

// --- Authorization ---

var ErrNotOwner = New(
	CodeForbidden,
	"auth",
	"You do not own this resource",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Posting lifecycle ---

var ErrHotelNotVerified = New(
	CodeInvalidOperation,
	"posting",
	"Hotel is not verified",
	http.StatusForbidden,
)

var ErrStartNotInFuture = New(
	CodeValidationFailed,
	"posting",
	"Shift start time must be in the future",
	http.StatusBadRequest,
)

var ErrInvalidShiftTimes = New(
	CodeValidationFailed,
	"posting",
	"Shift end time must be after start time",
	http.StatusBadRequest,
)

var ErrPostingClosed = New(
	CodeInvalidStatus,
	"posting",
	"Posting is closed or no longer accepting applications",
	http.StatusConflict,
)

var ErrPostingFilled = New(
	CodeConflict,
	"posting",
	"Posting has already been filled",
	http.StatusConflict,
)

// --- Applications ---

var ErrWorkerSuspended = New(
	CodeForbidden,
	"application",
	"Worker account is banned or inactive",
	http.StatusForbidden,
)

var ErrWorkerNotVerified = New(
	CodeInvalidOperation,
	"application",
	"Worker is not verified",
	http.StatusForbidden,
)

var ErrTrainingIncomplete = New(
	CodeInvalidOperation,
	"application",
	"Training must be completed before applying",
	http.StatusForbidden,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this posting",
	http.StatusConflict,
)

var ErrApplicationNotPending = New(
	CodeInvalidStatus,
	"application",
	"Only pending applications can be cancelled",
	http.StatusConflict,
)

var ErrDeclineLocked = New(
	CodeInvalidOperation,
	"application",
	"Applications cannot be declined within 12 hours of shift start",
	http.StatusConflict,
)

var ErrApplicationConflict = New(
	CodeConflict,
	"application",
	"Application was modified concurrently, please retry",
	http.StatusConflict,
)

// --- Shifts and ratings ---

var ErrShiftNotEnded = New(
	CodeInvalidOperation,
	"shift",
	"Shift has not yet ended",
	http.StatusConflict,
)

var ErrShiftAlreadyCompleted = New(
	CodeInvalidStatus,
	"shift",
	"Shift is already completed",
	http.StatusConflict,
)

var ErrShiftNotCompleted = New(
	CodeInvalidOperation,
	"shift",
	"Shift must be completed before rating",
	http.StatusConflict,
)

var ErrAlreadyRated = New(
	CodeAlreadyExists,
	"shift",
	"This shift has already been rated by you",
	http.StatusConflict,
)

var ErrRatingOutOfRange = New(
	CodeValidationFailed,
	"shift",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)

// --- Factories ---

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into an API-facing 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}
