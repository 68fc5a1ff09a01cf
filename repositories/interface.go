package repositories

import (
	"context"
	"errors"
	"strings"

	"realty-server/entities"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("record already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	UpdateProfile(ctx context.Context, id string, p entities.Profile) error
	UpdateRole(ctx context.Context, id string, role entities.Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLogin(ctx context.Context, id string) error
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	GetByID(ctx context.Context, id string) (*entities.Property, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]entities.Property, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *entities.Contract) error
	GetByID(ctx context.Context, id string) (*entities.Contract, error)
	GetByParticipantID(ctx context.Context, userID string) ([]entities.Contract, error)
	Delete(ctx context.Context, id string) error
}

type LeadRepository interface {
	Create(ctx context.Context, lead *entities.DemoLead) error
	GetAll(ctx context.Context) ([]entities.DemoLead, error)
}

type ActivityRepository interface {
	CreateBatch(ctx context.Context, entries []entities.ActivityLog) error
	GetRecent(ctx context.Context, limit int) ([]entities.ActivityLog, error)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key value"):
		return ErrAlreadyExists
	}
	return err
}
