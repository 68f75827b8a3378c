package dto

import "time"

type CreateInvestorRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Email           string   `json:"email" validate:"omitempty,email"`
	SectorInterests []string `json:"sector_interests" validate:"max=20,dive,max=80"`
	LogoURL         string   `json:"logo_url" validate:"omitempty,url"`
	InvestmentRange string   `json:"investment_range" validate:"max=120"`
	Thesis          string   `json:"thesis" validate:"max=4000"`
}

type UpdateInvestorRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	SectorInterests []string `json:"sector_interests" validate:"omitempty,max=20,dive,max=80"`
	LogoURL         *string  `json:"logo_url" validate:"omitempty,url"`
	InvestmentRange *string  `json:"investment_range" validate:"omitempty,max=120"`
	Thesis          *string  `json:"thesis" validate:"omitempty,max=4000"`
}

type InvestorResponse struct {
	ID              string    `json:"id"`
	OwnerUserID     string    `json:"owner_user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	SectorInterests []string  `json:"sector_interests,omitempty"`
	LogoURL         string    `json:"logo_url,omitempty"`
	InvestmentRange string    `json:"investment_range,omitempty"`
	Thesis          string    `json:"thesis,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
