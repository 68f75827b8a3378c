package models

import (
	"time"

	"gorm.io/datatypes"
)

type Round struct {
	BaseModel
	CompanyID   string      `gorm:"not null;index"`
	Title       string      `gorm:"not null"`
	RoundType   string      // "seed", "series_a", ...
	Status      RoundStatus `gorm:"type:varchar(20);default:'draft'"`
	OpenDate    *time.Time
	ClosingDate *time.Time

	// Money is kept in minor units plus a currency code; currency-formatted
	// strings exist only at the API boundary.
	Currency    string `gorm:"type:varchar(3);default:'USD'"`
	FundingGoal int64
	// RaisedAmount is derived by summing recorded contributions and only
	// grows, barring administrative correction via round update.
	RaisedAmount int64

	// Denormalized contribution summaries: [{id, name, amount, date}]
	Investors datatypes.JSON `gorm:"type:jsonb"`
}

// RoundInvestor is one denormalized contribution entry in Round.Investors.
type RoundInvestor struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Amount int64     `json:"amount"` // minor units, in the round's currency
	Date   time.Time `json:"date"`
}
