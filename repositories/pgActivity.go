package repositories

import (
	"context"

	"realty-server/db"
	"realty-server/entities"
)

type activityPgRepository struct {
	db db.Database
}

func NewActivityPgRepository(database db.Database) ActivityRepository {
	return &activityPgRepository{db: database}
}

func (r *activityPgRepository) CreateBatch(ctx context.Context, entries []entities.ActivityLog) error {
	if len(entries) == 0 {
		return nil
	}
	return translate(r.db.GetDB().WithContext(ctx).Create(&entries).Error)
}

func (r *activityPgRepository) GetRecent(ctx context.Context, limit int) ([]entities.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	entries := []entities.ActivityLog{}
	err := r.db.GetDB().WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, translate(err)
}
