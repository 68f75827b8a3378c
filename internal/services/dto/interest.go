package dto

import "time"

type SubmitInterestRequest struct {
	RoundID string `json:"round_id" validate:"required"`
	// Optional; when present it must match the caller's own investor
	// profile. The engine resolves the profile from the authenticated actor
	// either way.
	InvestorID string `json:"investor_id"`

	// Free-form investor-supplied fields; profile values are the defaults.
	InvestmentRange   string `json:"investment_range" validate:"max=120"`
	Thesis            string `json:"thesis" validate:"max=4000"`
	Goals             string `json:"goals" validate:"max=4000"`
	Experience        string `json:"experience" validate:"max=4000"`
	ContactPreference string `json:"contact_preference" validate:"omitempty,oneof=email phone either"`
}

type TransitionInterestRequest struct {
	Status          string `json:"status" validate:"required,oneof=accepted rejected"`
	ResponseMessage string `json:"response_message" validate:"max=4000"`
	TermSheet       string `json:"term_sheet" validate:"max=512"`
}

// Nested references for the denormalized detail view. Absent referents (a
// deleted round, say) leave the pointer nil and the field omitted.
type RoundRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type InvestorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type InterestResponse struct {
	ID            string `json:"id"`
	RoundID       string `json:"round_id"`
	CompanyID     string `json:"company_id"`
	InvestorID    string `json:"investor_id"`
	UserID        string `json:"user_id"`
	CompanyUserID string `json:"company_user_id"`

	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	InvestmentRange   string `json:"investment_range,omitempty"`
	Thesis            string `json:"thesis,omitempty"`
	Goals             string `json:"goals,omitempty"`
	Experience        string `json:"experience,omitempty"`
	ContactPreference string `json:"contact_preference,omitempty"`

	Status          string `json:"status"`
	ResponseMessage string `json:"response_message,omitempty"`
	TermSheet       string `json:"term_sheet,omitempty"`

	Round       *RoundRef    `json:"round,omitempty"`
	CompanyData *CompanyRef  `json:"company_data,omitempty"`
	Investor    *InvestorRef `json:"investor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
