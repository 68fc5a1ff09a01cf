package repositories

import (
	"context"

	"realty-server/db"
	"realty-server/entities"
)

type contractPgRepository struct {
	db db.Database
}

func NewContractPgRepository(database db.Database) ContractRepository {
	return &contractPgRepository{db: database}
}

func (r *contractPgRepository) Create(ctx context.Context, contract *entities.Contract) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(contract).Error)
}

func (r *contractPgRepository) GetByID(ctx context.Context, id string) (*entities.Contract, error) {
	var contract entities.Contract
	if err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&contract).Error; err != nil {
		return nil, translate(err)
	}
	return &contract, nil
}

func (r *contractPgRepository) GetByParticipantID(ctx context.Context, userID string) ([]entities.Contract, error) {
	contracts := []entities.Contract{}
	err := r.db.GetDB().WithContext(ctx).
		Where("creator_id = ? OR counterparty_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, translate(err)
}

func (r *contractPgRepository) Delete(ctx context.Context, id string) error {
	res := r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(&entities.Contract{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
