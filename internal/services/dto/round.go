package dto

import "time"

type CreateRoundRequest struct {
	CompanyID   string     `json:"company_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=2,max=160"`
	RoundType   string     `json:"round_type" validate:"max=40"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft under_review open closed"`
	OpenDate    *time.Time `json:"open_date"`
	ClosingDate *time.Time `json:"closing_date"`
	// Currency-formatted, e.g. "USD 2000000"
	FundingGoal string `json:"funding_goal" validate:"required,money"`
}

type UpdateRoundRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=2,max=160"`
	RoundType   *string    `json:"round_type" validate:"omitempty,max=40"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft under_review open closed"`
	OpenDate    *time.Time `json:"open_date"`
	ClosingDate *time.Time `json:"closing_date"`
	FundingGoal *string    `json:"funding_goal" validate:"omitempty,money"`
}

type AddRoundInvestorRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
	// Currency-formatted, must match the round's currency
	Amount string `json:"amount" validate:"required,money"`
}

type RoundInvestorView struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Amount string    `json:"amount"`
	Date   time.Time `json:"date"`
}

type RoundResponse struct {
	ID           string              `json:"id"`
	CompanyID    string              `json:"company_id"`
	Title        string              `json:"title"`
	RoundType    string              `json:"round_type,omitempty"`
	Status       string              `json:"status"`
	OpenDate     *time.Time          `json:"open_date,omitempty"`
	ClosingDate  *time.Time          `json:"closing_date,omitempty"`
	FundingGoal  string              `json:"funding_goal"`
	RaisedAmount string              `json:"raised_amount"`
	Investors    []RoundInvestorView `json:"investors"`
	CreatedAt    time.Time           `json:"created_at"`
}
