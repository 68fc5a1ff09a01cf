package repositories

import (
	"context"
	"time"

	"realty-server/db"
	"realty-server/entities"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(ctx context.Context, user *entities.User) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(user).Error)
}

func (r *userPgRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("email = ?", entities.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userPgRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, translate(err)
}

// UpdateProfile writes only the profile columns so a concurrent password
// or role change is not overwritten.
func (r *userPgRepository) UpdateProfile(ctx context.Context, id string, p entities.Profile) error {
	var fields entities.User
	fields.ApplyProfile(p)
	fields.UpdatedAt = time.Now().UTC()
	return r.updateColumns(ctx, id, &fields, "full_name", "phone_number", "job", "location", "updated_at")
}

func (r *userPgRepository) UpdateRole(ctx context.Context, id string, role entities.Role) error {
	return r.updateColumns(ctx, id, &entities.User{Role: role, UpdatedAt: time.Now().UTC()}, "role", "updated_at")
}

// Select keeps zero values such as an emptied phone number in the write.
func (r *userPgRepository) updateColumns(ctx context.Context, id string, fields *entities.User, columns ...string) error {
	res := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).
		Select(columns).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userPgRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userPgRepository) TouchLogin(ctx context.Context, id string) error {
	return translate(r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).
		Update("last_login_at", time.Now().UTC()).Error)
}
