package models

type UserRole string
type RoundStatus string
type InterestStatus string

const (
	UserRoleCompany  UserRole = "company"
	UserRoleInvestor UserRole = "investor"
	UserRoleAdmin    UserRole = "admin"
	UserRoleNone     UserRole = "none"

	RoundStatusDraft       RoundStatus = "draft"
	RoundStatusUnderReview RoundStatus = "under_review"
	RoundStatusOpen        RoundStatus = "open"
	RoundStatusClosed      RoundStatus = "closed"

	// Interest statuses. accepted and rejected are terminal; an interest
	// leaves pending at most once.
	InterestStatusPending  InterestStatus = "pending"
	InterestStatusAccepted InterestStatus = "accepted"
	InterestStatusRejected InterestStatus = "rejected"
)

// ValidRoundStatus reports whether s is a known round status.
func ValidRoundStatus(s RoundStatus) bool {
	switch s {
	case RoundStatusDraft, RoundStatusUnderReview, RoundStatusOpen, RoundStatusClosed:
		return true
	}
	return false
}

// TerminalInterestStatus reports whether s is a valid transition target.
func TerminalInterestStatus(s InterestStatus) bool {
	return s == InterestStatusAccepted || s == InterestStatusRejected
}
