package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity together with its profile document.
type User struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"type:varchar(16);index;not null" json:"role"`
	FullName     string     `json:"fullName"`
	PhoneNumber  string     `json:"phoneNumber"`
	Job          string     `json:"job"`
	Location     string     `json:"location"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// Profile holds the user-editable fields of a User.
type Profile struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Job         string `json:"job"`
	Location    string `json:"location"`
}

func (u *User) Profile() Profile {
	return Profile{
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Job:         u.Job,
		Location:    u.Location,
	}
}

func (u *User) ApplyProfile(p Profile) {
	u.FullName = strings.TrimSpace(p.FullName)
	u.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	u.Job = strings.TrimSpace(p.Job)
	u.Location = strings.TrimSpace(p.Location)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
