package repositories

import (
	"context"

	"realty-server/db"
	"realty-server/entities"
)

type leadPgRepository struct {
	db db.Database
}

func NewLeadPgRepository(database db.Database) LeadRepository {
	return &leadPgRepository{db: database}
}

func (r *leadPgRepository) Create(ctx context.Context, lead *entities.DemoLead) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(lead).Error)
}

func (r *leadPgRepository) GetAll(ctx context.Context) ([]entities.DemoLead, error) {
	leads := []entities.DemoLead{}
	err := r.db.GetDB().WithContext(ctx).Order("timestamp DESC").Find(&leads).Error
	return leads, translate(err)
}
