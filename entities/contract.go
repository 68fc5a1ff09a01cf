package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractType string

const (
	ContractRent ContractType = "rent"
	ContractSale ContractType = "sale"
)

func (t ContractType) Valid() bool {
	return t == ContractRent || t == ContractSale
}

type ContractStatus string

const (
	ContractActive  ContractStatus = "active"
	ContractExpired ContractStatus = "expired"
)

// Contract links two users. Rent contracts carry a date range, sale
// contracts a single date.
type Contract struct {
	ID                string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID        string         `gorm:"type:varchar(36);index" json:"propertyId,omitempty"`
	PropertyAddress   string         `json:"propertyAddress"`
	Type              ContractType   `gorm:"type:varchar(8);not null" json:"type"`
	CreatorID         string         `gorm:"type:varchar(36);index;not null" json:"creatorId"`
	CreatorEmail      string         `json:"creatorEmail"`
	CreatorRole       Role           `gorm:"type:varchar(16)" json:"creatorRole"`
	CounterpartyID    string         `gorm:"type:varchar(36);index;not null" json:"counterpartyId"`
	CounterpartyEmail string         `json:"counterpartyEmail"`
	CounterpartyRole  Role           `gorm:"type:varchar(16)" json:"counterpartyRole"`
	StartDate         *time.Time     `json:"startDate,omitempty"`
	EndDate           *time.Time     `json:"endDate,omitempty"`
	Date              *time.Time     `json:"date,omitempty"`
	Amount            float64        `json:"amount"`
	Status            ContractStatus `gorm:"type:varchar(16)" json:"status"`
	CreatedAt         time.Time      `gorm:"index" json:"createdAt"`
}

func (c *Contract) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New().String()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return
}

// HasParticipant reports whether userID is one of the two parties.
func (c *Contract) HasParticipant(userID string) bool {
	return userID != "" && (c.CreatorID == userID || c.CounterpartyID == userID)
}

// ParticipantIDs returns both party ids, creator first.
func (c *Contract) ParticipantIDs() []string {
	return []string{c.CreatorID, c.CounterpartyID}
}

// StatusAt derives the status from the contract's closing date.
func (c *Contract) StatusAt(now time.Time) ContractStatus {
	closing := c.EndDate
	if c.Type == ContractSale {
		closing = c.Date
	}
	if closing != nil && closing.Before(now) {
		return ContractExpired
	}
	return ContractActive
}
