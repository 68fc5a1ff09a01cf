package usecases

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"realty-server/auth"
	"realty-server/cache"
	"realty-server/db"
	"realty-server/entities"
	"realty-server/repositories"
	"realty-server/services"
	"realty-server/ws"

	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (m *captureMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tokens == nil {
		m.tokens = make(map[string]string)
	}
	m.tokens[email] = token
	return nil
}

func (m *captureMailer) tokenFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

type fixture struct {
	users     repositories.UserRepository
	props     repositories.PropertyRepository
	contracts repositories.ContractRepository
	leads     repositories.LeadRepository
	activity  repositories.ActivityRepository

	hub      *ws.Manager
	tokens   *auth.TokenManager
	mailer   *captureMailer
	recorder *services.ActivityRecorder

	session    *SessionUseCase
	properties *PropertyUseCase
	contractUC *ContractUseCase
	admin      *AdminUseCase
	profile    *ProfileUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := db.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	f := &fixture{
		users:     repositories.NewUserPgRepository(database),
		props:     repositories.NewPropertyPgRepository(database),
		contracts: repositories.NewContractPgRepository(database),
		leads:     repositories.NewLeadPgRepository(database),
		activity:  repositories.NewActivityPgRepository(database),
		hub:       ws.NewManager(nil),
		tokens:    auth.NewTokenManager("test-secret", "realty-test", time.Hour),
		mailer:    &captureMailer{},
	}
	f.recorder = services.NewActivityRecorder(f.activity, nil, time.Hour)
	f.session = NewSessionUseCase(SessionDeps{
		Users:            f.users,
		Leads:            f.leads,
		Tokens:           f.tokens,
		Revocations:      cache.NewMemoryRevocationStore(),
		ResetTokens:      cache.NewMemoryResetTokenStore(),
		Mailer:           f.mailer,
		Activity:         f.recorder,
		Hub:              f.hub,
		EnforceLoginRole: true,
	})
	f.properties = NewPropertyUseCase(f.props, f.hub)
	f.contractUC = NewContractUseCase(f.contracts, f.users, f.props, f.hub)
	f.admin = NewAdminUseCase(f.users, f.leads, f.activity, f.recorder)
	f.profile = NewProfileUseCase(f.users)
	return f
}

func (f *fixture) register(t *testing.T, email string, role entities.Role) *Session {
	t.Helper()
	s, err := f.session.Register(context.Background(), email, "secret123", role)
	require.NoError(t, err)
	return s
}

// seedAdmin stores an admin directly since admins cannot self-register.
func (f *fixture) seedAdmin(t *testing.T, email string) *Session {
	t.Helper()
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), &entities.User{Email: email, PasswordHash: hash, Role: entities.RoleAdmin}))
	s, err := f.session.Login(context.Background(), email, "secret123", entities.RoleLandlord)
	require.NoError(t, err)
	return s
}

// next reads one envelope from sub and decodes its data into out.
func next(t *testing.T, sub *ws.Subscription, out any) ws.Envelope {
	t.Helper()
	select {
	case raw, ok := <-sub.C():
		require.True(t, ok, "subscription closed")
		var env struct {
			Type  string          `json:"type"`
			Topic string          `json:"topic"`
			Data  json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		if out != nil {
			require.NoError(t, json.Unmarshal(env.Data, out))
		}
		return ws.Envelope{Type: env.Type, Topic: env.Topic}
	case <-time.After(time.Second):
		t.Fatal("no message on subscription")
	}
	return ws.Envelope{}
}

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}
