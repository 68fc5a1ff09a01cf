package usecases

import (
	"bytes"
	"context"
	"testing"

	"realty-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAdmin_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tenant := f.register(t, "tenant@example.com", entities.RoleTenant)

	_, err := f.admin.ListUsers(ctx, tenant)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.admin.ListLeads(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	demo := &Session{Demo: true, Role: entities.RoleAdmin}
	_, err = f.admin.ListActivity(ctx, demo, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdmin_Users(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tenant := f.register(t, "tenant@example.com", entities.RoleTenant)
	admin := f.seedAdmin(t, "root@example.com")

	users, err := f.admin.ListUsers(ctx, admin)
	require.NoError(t, err)
	require.Len(t, users, 2)

	role := entities.RoleBuyer
	updated, err := f.admin.UpdateUser(ctx, admin, tenant.UserID, UserUpdate{
		Role:    &role,
		Profile: &entities.Profile{FullName: " Sara ", Job: "designer"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleBuyer, updated.Role)
	assert.Equal(t, "Sara", updated.FullName)

	got, err := f.admin.GetUser(ctx, admin, tenant.UserID)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleBuyer, got.Role)

	_, err = f.admin.GetUser(ctx, admin, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	guest := entities.RoleGuest
	_, err = f.admin.UpdateUser(ctx, admin, tenant.UserID, UserUpdate{Role: &guest})
	assert.ErrorIs(t, err, ErrInvalidRole)

	landlord := entities.RoleLandlord
	_, err = f.admin.UpdateUser(ctx, admin, admin.UserID, UserUpdate{Role: &landlord})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdmin_ActivityFlushesBuffer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "a@example.com", entities.RoleLandlord)
	admin := f.seedAdmin(t, "root@example.com")

	assert.Equal(t, 2, f.recorder.Pending())
	logs, err := f.admin.ListActivity(ctx, admin, 50)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, 0, f.recorder.Pending())
}

func TestAdmin_LeadsAndExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "a@example.com", entities.RoleLandlord)
	admin := f.seedAdmin(t, "root@example.com")
	_, err := f.session.StartDemo(ctx, "09121112233", entities.RoleTenant)
	require.NoError(t, err)

	leads, err := f.admin.ListLeads(ctx, admin)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	data, err := f.admin.ExportWorkbook(ctx, admin)
	require.NoError(t, err)

	xlsx, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xlsx.Close()

	rows, err := xlsx.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Email", rows[0][1])
	assert.Equal(t, "a@example.com", rows[1][1])

	rows, err = xlsx.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "09121112233", rows[1][1])
	assert.Equal(t, "tenant", rows[1][2])

	tenant := f.register(t, "t@example.com", entities.RoleTenant)
	_, err = f.admin.ExportWorkbook(ctx, tenant)
	assert.ErrorIs(t, err, ErrForbidden)
}
