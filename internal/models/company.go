package models

import "time"

type Company struct {
	BaseModel
	OwnerUserID string `gorm:"not null;uniqueIndex"`
	Name        string `gorm:"not null"`
	Sector      string
	Stage       string
	Description string
	LogoURL     string
}

// CompanyFollower is the follow edge between an investor actor and a company.
// The composite unique index makes the toggle a single add-if-absent /
// remove-if-present storage operation rather than a read-then-write.
type CompanyFollower struct {
	CompanyID string    `gorm:"primaryKey"`
	UserID    string    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"default:now()"`
}
