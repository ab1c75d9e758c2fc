// Package tier computes a participant's reputation bracket from
// accumulated hours and aggregates ratings. It is pure computation;
// persisting the results is the job of the calling service.
package tier

import (
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/rules"
)

// Promotion describes a tier change detected by Promote.
type Promotion struct {
	From models.Tier `json:"from"`
	To   models.Tier `json:"to"`
}

// For returns the tier bracket containing the given accumulated hours.
func For(hours float64) models.Tier {
	switch {
	case hours >= rules.PlatinumMinHours:
		return models.TierPlatinum
	case hours >= rules.GoldMinHours:
		return models.TierGold
	default:
		return models.TierSilver
	}
}

// Promote compares the stored tier with the bracket for the freshly
// accumulated hours. It returns nil when nothing changed. Hours are
// monotonically non-decreasing, so tiers only ever move upward.
func Promote(current models.Tier, hours float64) *Promotion {
	next := For(hours)
	if next == current {
		return nil
	}
	return &Promotion{From: current, To: next}
}

// Average returns the arithmetic mean of the given ratings, or nil for
// an empty set. "No rating yet" is distinct from "rated zero".
func Average(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}
