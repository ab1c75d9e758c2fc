package models

type UserRole string
type VerificationStatus string
type ApplicationStatus string
type Tier string

const (
	RoleWorker UserRole = "worker"
	RoleHotel  UserRole = "hotel"
	RoleAdmin  UserRole = "admin"

	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationDeclined VerificationStatus = "declined"

	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationDeclined  ApplicationStatus = "declined"
	ApplicationCancelled ApplicationStatus = "cancelled"

	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// DeclineReasonFilled is recorded on pending applications that are
// auto-declined when the last slot of a posting is consumed.
const DeclineReasonFilled = "position filled"
