package models

// Notification is a write-once inbox entry. There is no read flag: a
// recipient acknowledges a notification by deleting it, so the inbox holds
// exactly the pending alerts.
type Notification struct {
	BaseModel
	Type   string `gorm:"not null"` // "new_round", "new_interest", "interest_status", "new_follower"
	Title  string `gorm:"not null"`
	Desc   string
	FromID string `gorm:"index"`
	ToID   string `gorm:"not null;index"`
	URL    string // deep link into the frontend
}
