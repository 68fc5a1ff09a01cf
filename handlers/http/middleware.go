package httpHandler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxKeyLocale    = "locale"
	ctxKeySession   = "session"
	ctxKeyRequestID = "request_id"
)

// SessionResolver turns a bearer token into a session.
type SessionResolver interface {
	Resolve(ctx context.Context, raw string) (*usecases.Session, error)
}

// RequestLogger tags every request with an id and writes one access log
// line when it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "http")
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, reqID)
		c.Header("X-Request-Id", reqID)

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "http request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Locale picks the response language from Accept-Language.
func Locale(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyLocale, catalog.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func localeOf(c *gin.Context, catalog *i18n.Catalog) string {
	if v, ok := c.Get(ctxKeyLocale); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return catalog.Default()
}

// Authenticate requires a valid bearer token and stores the resolved
// session on the context.
func Authenticate(sessions SessionResolver, catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abortWith(c, catalog, http.StatusUnauthorized, i18n.Unauthorized)
			return
		}
		session, err := sessions.Resolve(c.Request.Context(), raw)
		if err != nil {
			fail(c, catalog, err, authScope)
			return
		}
		c.Set(ctxKeySession, session)
		c.Next()
	}
}

// RequireIdentity rejects demo sessions.
func RequireIdentity(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sessionFrom(c).RequireIdentity(); err != nil {
			fail(c, catalog, err, authScope)
			return
		}
		c.Next()
	}
}

// RequireRole lets through real sessions carrying one of roles.
func RequireRole(catalog *i18n.Catalog, roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)
		if session == nil {
			abortWith(c, catalog, http.StatusUnauthorized, i18n.Unauthorized)
			return
		}
		if !session.Demo {
			for _, role := range roles {
				if session.Role == role {
					c.Next()
					return
				}
			}
		}
		abortWith(c, catalog, http.StatusForbidden, i18n.Forbidden)
	}
}

func sessionFrom(c *gin.Context) *usecases.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*usecases.Session); ok {
			return s
		}
	}
	return nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
