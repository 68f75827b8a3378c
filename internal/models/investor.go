package models

import (
	"gorm.io/datatypes"
)

type Investor struct {
	BaseModel
	OwnerUserID     string `gorm:"not null;uniqueIndex"`
	Name            string `gorm:"not null"`
	Email           string
	SectorInterests datatypes.JSON `gorm:"type:jsonb"` // ["fintech", "biotech"]
	LogoURL         string
	InvestmentRange string
	Thesis          string
}
