// Package fsm governs application status transitions. The transition
// table is the single source of truth; Apply performs the transition
// as a conditional UPDATE so a concurrent transition on the same row
// loses cleanly instead of overwriting.
package fsm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/models"
)

// ErrConflict is returned when the row was not in the expected source
// status, i.e. another transition won the race.
var ErrConflict = errors.New("application status changed concurrently")

// transitions: PENDING is the only non-terminal status.
var transitions = map[models.ApplicationStatus]map[models.ApplicationStatus]struct{}{
	models.ApplicationPending: {
		models.ApplicationAccepted:  {},
		models.ApplicationDeclined:  {},
		models.ApplicationCancelled: {},
	},
	models.ApplicationAccepted:  {},
	models.ApplicationDeclined:  {},
	models.ApplicationCancelled: {},
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to models.ApplicationStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Apply moves the application from -> to with a response timestamp,
// guarded on the current status. declineReason is recorded only for
// declines.
func Apply(tx *gorm.DB, applicationID string, from, to models.ApplicationStatus, declineReason *string, now time.Time) error {
	if !CanTransition(from, to) {
		return ErrConflict
	}

	updates := map[string]interface{}{
		"status":       to,
		"responded_at": now,
	}
	if to == models.ApplicationDeclined && declineReason != nil {
		updates["decline_reason"] = *declineReason
	}

	res := tx.Model(&models.Application{}).
		Where("id = ? AND status = ?", applicationID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
