package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityAction string

const (
	ActionLogin  ActivityAction = "login"
	ActionLogout ActivityAction = "logout"
)

// ActivityLog is an append-only audit row.
type ActivityLog struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(36);index" json:"userId"`
	Email     string         `json:"email"`
	Action    ActivityAction `gorm:"type:varchar(16)" json:"action"`
	Timestamp time.Time      `gorm:"index" json:"timestamp"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	return
}
