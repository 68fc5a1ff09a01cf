package auth

import (
	"errors"
	"fmt"
	"time"

	"realty-server/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session payload carried by every token. Demo sessions
// have no subject.
type Claims struct {
	Email     string        `json:"email,omitempty"`
	Role      entities.Role `json:"role,omitempty"`
	Demo      bool          `json:"demo,omitempty"`
	DemoPhone string        `json:"demo_phone,omitempty"`
	jwt.RegisteredClaims
}

// SessionID is the token's jti.
func (c *Claims) SessionID() string { return c.ID }

// UserID is empty for demo sessions.
func (c *Claims) UserID() string { return c.Subject }

func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenManager issues and verifies signed session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a token for a signed-in user.
func (t *TokenManager) Generate(user entities.User) (string, *Claims, error) {
	return t.sign(Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	})
}

// GenerateDemo issues an identity-free demo token.
func (t *TokenManager) GenerateDemo(phone string, role entities.Role) (string, *Claims, error) {
	return t.sign(Claims{Role: role, Demo: true, DemoPhone: phone})
}

func (t *TokenManager) sign(claims Claims) (string, *Claims, error) {
	now := t.now()
	claims.Issuer = t.issuer
	claims.ID = uuid.New().String()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, &claims, nil
}

// Parse verifies signature, issuer and lifetime.
func (t *TokenManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || (!claims.Demo && claims.Subject == "") {
		return nil, fmt.Errorf("%w: missing session claims", ErrInvalidToken)
	}
	return claims, nil
}
