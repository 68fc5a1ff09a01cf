package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoLead is captured when a visitor enters the demo.
type DemoLead struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PhoneNumber string    `gorm:"not null" json:"phoneNumber"`
	Role        Role      `gorm:"type:varchar(16)" json:"role"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

func (l *DemoLead) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New().String()
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	return
}
