package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyStore     PropertyType = "store"
	PropertyLand      PropertyType = "land"
)

var PropertyTypes = []PropertyType{PropertyApartment, PropertyVilla, PropertyStore, PropertyLand}

func (t PropertyType) Valid() bool {
	for _, candidate := range PropertyTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

type Property struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID     string       `gorm:"type:varchar(36);index;not null" json:"ownerId"`
	Type        PropertyType `gorm:"type:varchar(16);not null" json:"type"`
	Address     string       `gorm:"not null" json:"address"`
	Area        float64      `json:"area"`
	Description string       `gorm:"type:text" json:"description"`
	CreatedAt   time.Time    `gorm:"index" json:"createdAt"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New().String()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return
}
