package services

import "staffhub_backend/pkg/apperrors"

// wrapServiceError passes business failures (AppError) through and
// wraps anything else as a storage failure so infrastructure errors
// stay distinct from business-rule refusals.
func wrapServiceError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr
	}
	return apperrors.DatabaseError(err)
}
