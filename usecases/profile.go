package usecases

import (
	"context"
	"errors"

	"realty-server/entities"
	"realty-server/repositories"
)

type ProfileUseCase struct {
	users repositories.UserRepository
}

func NewProfileUseCase(users repositories.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Get returns the caller's user record.
func (uc *ProfileUseCase) Get(ctx context.Context, s *Session) (*entities.User, error) {
	userID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return user, err
}

// Update replaces the caller's profile fields. Role and email are not
// editable here.
func (uc *ProfileUseCase) Update(ctx context.Context, s *Session, p entities.Profile) (*entities.User, error) {
	userID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	err = uc.users.UpdateProfile(ctx, userID, p)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, s)
}
