// Package database owns the GORM connection and schema migration.
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venturelink_backend/internal/models"
)

// Connect opens the Postgres connection. TranslateError maps driver errors
// onto gorm.ErrDuplicatedKey and friends, which the repositories rely on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// Migrate applies the schema. The uuid-ossp extension backs the uuid primary
// key defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Company{},
		&models.CompanyFollower{},
		&models.Investor{},
		&models.Round{},
		&models.InvestorInterest{},
		&models.Notification{},
	)
}
