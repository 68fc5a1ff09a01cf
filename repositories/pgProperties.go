package repositories

import (
	"context"

	"realty-server/db"
	"realty-server/entities"
)

type propertyPgRepository struct {
	db db.Database
}

func NewPropertyPgRepository(database db.Database) PropertyRepository {
	return &propertyPgRepository{db: database}
}

func (r *propertyPgRepository) Create(ctx context.Context, property *entities.Property) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(property).Error)
}

func (r *propertyPgRepository) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	var property entities.Property
	if err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		return nil, translate(err)
	}
	return &property, nil
}

func (r *propertyPgRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]entities.Property, error) {
	properties := []entities.Property{}
	err := r.db.GetDB().WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&properties).Error
	return properties, translate(err)
}
