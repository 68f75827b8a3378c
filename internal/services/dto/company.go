package dto

import "time"

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Sector      string `json:"sector" validate:"max=80"`
	Stage       string `json:"stage" validate:"max=80"`
	Description string `json:"description" validate:"max=4000"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Sector      *string `json:"sector" validate:"omitempty,max=80"`
	Stage       *string `json:"stage" validate:"omitempty,max=80"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Sector      string    `json:"sector,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Followers   int64     `json:"followers"`
	CreatedAt   time.Time `json:"created_at"`
}
