package usecases

import (
	"context"
	"testing"

	"realty-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.register(t, "me@example.com", entities.RoleTenant)

	user, err := f.profile.Get(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, user.FullName)

	updated, err := f.profile.Update(ctx, s, entities.Profile{FullName: "Ali Rezaei", PhoneNumber: "0912", Job: "engineer", Location: "Isfahan"})
	require.NoError(t, err)
	assert.Equal(t, "Isfahan", updated.Location)
	assert.Equal(t, entities.RoleTenant, updated.Role)

	user, err = f.profile.Get(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "Ali Rezaei", user.FullName)
	assert.Equal(t, "engineer", user.Job)

	_, err = f.profile.Get(ctx, &Session{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = f.profile.Get(ctx, &Session{Demo: true, Role: entities.RoleTenant})
	assert.ErrorIs(t, err, ErrDemoForbidden)
}
