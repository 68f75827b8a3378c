package models

// InvestorInterest is an investor's formal declaration of intent to invest in
// a round. The profile fields are a snapshot captured at submission time, so
// later profile edits do not rewrite history. Status moves pending ->
// accepted/rejected exactly once and never regresses.
type InvestorInterest struct {
	BaseModel
	RoundID    string `gorm:"not null;index;uniqueIndex:idx_round_investor_interest"`
	CompanyID  string `gorm:"not null;index"`
	InvestorID string `gorm:"not null;uniqueIndex:idx_round_investor_interest"`
	// UserID is the investor's actor id; CompanyUserID the company owner's.
	// Both are resolved server-side at submission, never trusted from the
	// request payload.
	UserID        string `gorm:"not null;index"`
	CompanyUserID string `gorm:"not null;index"`

	// Snapshot of the investor profile at submission
	Name              string
	Email             string
	InvestmentRange   string
	Thesis            string
	Goals             string
	Experience        string
	ContactPreference string

	Status InterestStatus `gorm:"type:varchar(20);default:'pending'"`

	// Set once, on the transition out of pending
	ResponseMessage string
	TermSheet       string
}
