package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"realty-server/auth"
	"realty-server/db"
	"realty-server/entities"
	"realty-server/repositories"
)

// CreateAdmin provisions an administrator account. An existing user with
// the same email is promoted and gets the new password.
func CreateAdmin(ctx context.Context, database db.Database, email, password string) error {
	if len(password) < auth.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	users := repositories.NewUserPgRepository(database)
	email = entities.NormalizeEmail(email)

	err = users.Create(ctx, &entities.User{Email: email, PasswordHash: hash, Role: entities.RoleAdmin})
	if err == nil {
		slog.Info("admin created", "email", email)
		return nil
	}
	if !errors.Is(err, repositories.ErrAlreadyExists) {
		return fmt.Errorf("create admin: %w", err)
	}

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("load existing user: %w", err)
	}
	if err := users.UpdateRole(ctx, user.ID, entities.RoleAdmin); err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	slog.Info("existing user promoted to admin", "email", email)
	return nil
}
