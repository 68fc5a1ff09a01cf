package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"realty-server/auth"
	"realty-server/cache"
	"realty-server/entities"
	"realty-server/events"
	"realty-server/repositories"
	"realty-server/services"
	"realty-server/ws"
)

// Identity events pushed on the session:<uid> topic.
const (
	EventSignedIn  = "signed_in"
	EventSignedOut = "signed_out"
)

// Session is the resolved state of a signed token. Demo sessions carry
// no user id.
type Session struct {
	ID        string        `json:"sessionId"`
	Token     string        `json:"token,omitempty"`
	UserID    string        `json:"userId,omitempty"`
	Email     string        `json:"email,omitempty"`
	Role      entities.Role `json:"role"`
	Demo      bool          `json:"demo"`
	DemoPhone string        `json:"demoPhone,omitempty"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// RequireIdentity returns the user id of a real (non-demo) session.
func (s *Session) RequireIdentity() (string, error) {
	if s == nil {
		return "", ErrUnauthorized
	}
	if s.Demo || s.UserID == "" {
		return "", ErrDemoForbidden
	}
	return s.UserID, nil
}

func (s *Session) IsAdmin() bool {
	return s != nil && !s.Demo && s.Role == entities.RoleAdmin
}

func sessionFromClaims(token string, c *auth.Claims) *Session {
	return &Session{
		ID:        c.SessionID(),
		Token:     token,
		UserID:    c.UserID(),
		Email:     c.Email,
		Role:      c.Role,
		Demo:      c.Demo,
		DemoPhone: c.DemoPhone,
		ExpiresAt: c.ExpiresAtTime(),
	}
}

// ActivitySink receives login/logout entries.
type ActivitySink interface {
	Record(ctx context.Context, user entities.User, action entities.ActivityAction)
}

type SessionDeps struct {
	Users            repositories.UserRepository
	Leads            repositories.LeadRepository
	Tokens           *auth.TokenManager
	Revocations      cache.RevocationStore
	ResetTokens      cache.ResetTokenStore
	Mailer           services.Mailer
	Activity         ActivitySink
	Publisher        events.Publisher
	Hub              *ws.Manager
	EnforceLoginRole bool
	ResetTokenTTL    time.Duration
}

type SessionUseCase struct {
	SessionDeps
	logger *slog.Logger
}

func NewSessionUseCase(deps SessionDeps) *SessionUseCase {
	if deps.ResetTokenTTL <= 0 {
		deps.ResetTokenTTL = 30 * time.Minute
	}
	return &SessionUseCase{
		SessionDeps: deps,
		logger:      slog.Default().With("module", "session"),
	}
}

// Register creates a user with an empty profile and signs it in.
func (uc *SessionUseCase) Register(ctx context.Context, email, password string, role entities.Role) (*Session, error) {
	email = entities.NormalizeEmail(email)
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: email", ErrInvalidInput)
	}
	if len(password) < auth.MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if !role.IsSelfService() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &entities.User{Email: email, PasswordHash: hash, Role: role}
	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	uc.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", role)
	return uc.signIn(ctx, user)
}

// Login verifies credentials and, when enforced, that the selected role
// matches the stored one. Admins may sign in under any selected role.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string, selectedRole entities.Role) (*Session, error) {
	user, err := uc.Users.GetByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.Role.IsStored() {
		return nil, ErrProfileNotFound
	}
	if uc.EnforceLoginRole && user.Role != entities.RoleAdmin && user.Role != selectedRole {
		uc.logger.InfoContext(ctx, "login role mismatch", "user_id", user.ID, "stored", user.Role, "selected", selectedRole)
		return nil, ErrRoleMismatch
	}

	if err := uc.Users.TouchLogin(ctx, user.ID); err != nil {
		uc.logger.WarnContext(ctx, "touch last login", "error", err, "user_id", user.ID)
	}
	return uc.signIn(ctx, user)
}

func (uc *SessionUseCase) signIn(ctx context.Context, user *entities.User) (*Session, error) {
	raw, claims, err := uc.Tokens.Generate(*user)
	if err != nil {
		return nil, err
	}
	if uc.Activity != nil {
		uc.Activity.Record(ctx, *user, entities.ActionLogin)
	}
	session := sessionFromClaims(raw, claims)
	uc.notify(user.ID, EventSignedIn, session)
	return session, nil
}

// Logout revokes the session until it would have expired anyway. For a
// demo session this ends the demo.
func (uc *SessionUseCase) Logout(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrUnauthorized
	}
	if err := uc.Revocations.MarkRevoked(ctx, s.ID, s.ExpiresAt); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if s.Demo {
		return nil
	}
	if uc.Activity != nil {
		uc.Activity.Record(ctx, entities.User{ID: s.UserID, Email: s.Email}, entities.ActionLogout)
	}
	uc.notify(s.UserID, EventSignedOut, map[string]string{"sessionId": s.ID})
	return nil
}

// Resolve validates a token and refreshes the role from the stored
// user. A missing user record leaves the role empty.
func (uc *SessionUseCase) Resolve(ctx context.Context, raw string) (*Session, error) {
	claims, err := uc.Tokens.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	revoked, err := uc.Revocations.IsRevoked(ctx, claims.SessionID())
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: session revoked", ErrUnauthorized)
	}

	session := sessionFromClaims(raw, claims)
	if session.Demo {
		return session, nil
	}
	user, err := uc.Users.GetByID(ctx, session.UserID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		session.Role = ""
	case err != nil:
		return nil, err
	default:
		session.Role = user.Role
		session.Email = user.Email
	}
	return session, nil
}

// StartDemo records a lead when it can and always returns a demo
// session for role.
func (uc *SessionUseCase) StartDemo(ctx context.Context, phone string, role entities.Role) (*Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number", ErrInvalidInput)
	}
	if !role.IsSelfService() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	uc.captureLead(ctx, phone, role)

	raw, claims, err := uc.Tokens.GenerateDemo(phone, role)
	if err != nil {
		return nil, err
	}
	return sessionFromClaims(raw, claims), nil
}

func (uc *SessionUseCase) captureLead(ctx context.Context, phone string, role entities.Role) {
	if uc.Leads == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	lead := &entities.DemoLead{PhoneNumber: phone, Role: role}
	if err := uc.Leads.Create(ctx, lead); err != nil {
		uc.logger.WarnContext(ctx, "could not save demo lead", "error", err, "role", role)
		return
	}
	if uc.Publisher != nil {
		if err := events.PublishJSON(ctx, uc.Publisher, events.TypeLeadCaptured, lead.ID, lead); err != nil {
			uc.logger.WarnContext(ctx, "publish lead event", "error", err)
		}
	}
}

// RequestPasswordReset issues a single-use token and hands it to the
// mailer.
func (uc *SessionUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.Users.GetByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailed, err)
	}
	token, err := auth.NewOpaqueToken()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailed, err)
	}
	if err := uc.ResetTokens.Save(ctx, token, user.ID, uc.ResetTokenTTL); err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailed, err)
	}
	if err := uc.Mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailed, err)
	}
	return nil
}

func (uc *SessionUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLength {
		return ErrWeakPassword
	}
	userID, err := uc.ResetTokens.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, cache.ErrTokenNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := uc.Users.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	uc.logger.InfoContext(ctx, "password reset", "user_id", userID)
	return nil
}

func (uc *SessionUseCase) notify(userID, event string, data any) {
	if uc.Hub == nil || userID == "" {
		return
	}
	if err := uc.Hub.Notify(ws.UserTopic(ws.TopicSession, userID), event, data); err != nil {
		uc.logger.Warn("notify session event", "error", err, "user_id", userID)
	}
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
