package httpHandler

import (
	"errors"
	"log/slog"
	"net/http"

	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

// scope names the messages a group of endpoints uses for the generic
// error kinds.
type scope struct {
	invalid  i18n.Key
	notFound i18n.Key
	failed   i18n.Key
	profile  i18n.Key
}

var (
	authScope     = scope{invalid: i18n.InvalidRequest, notFound: i18n.UserNotFound, failed: i18n.InternalError}
	propertyScope = scope{invalid: i18n.PropertyInvalid, notFound: i18n.PropertyNotFound, failed: i18n.PropertySaveFailed}
	contractScope = scope{invalid: i18n.ContractInvalid, notFound: i18n.ContractNotFound, failed: i18n.ContractSaveFailed}
	profileScope  = scope{invalid: i18n.InvalidRequest, notFound: i18n.ProfileNotFound, failed: i18n.ProfileSaveFailed, profile: i18n.ProfileNotFound}
	adminScope    = scope{invalid: i18n.InvalidRequest, notFound: i18n.UserNotFound, failed: i18n.InternalError}
	viewScope     = scope{invalid: i18n.InvalidRequest, notFound: i18n.RoleUndefined, failed: i18n.InternalError}
)

func classify(err error, s scope) (int, i18n.Key) {
	switch {
	case errors.Is(err, usecases.ErrUnauthorized):
		return http.StatusUnauthorized, i18n.Unauthorized
	case errors.Is(err, usecases.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.InvalidCredentials
	case errors.Is(err, usecases.ErrRoleMismatch):
		return http.StatusForbidden, i18n.RoleMismatch
	case errors.Is(err, usecases.ErrProfileNotFound):
		if s.profile != "" {
			return http.StatusNotFound, s.profile
		}
		return http.StatusNotFound, i18n.ProfileMissing
	case errors.Is(err, usecases.ErrEmailTaken):
		return http.StatusConflict, i18n.RegisterFailed
	case errors.Is(err, usecases.ErrWeakPassword):
		return http.StatusBadRequest, i18n.WeakPassword
	case errors.Is(err, usecases.ErrInvalidArea):
		return http.StatusBadRequest, i18n.PropertyInvalidArea
	case errors.Is(err, usecases.ErrInvalidRole), errors.Is(err, usecases.ErrInvalidInput):
		return http.StatusBadRequest, s.invalid
	case errors.Is(err, usecases.ErrCounterpartyNotFound):
		return http.StatusNotFound, i18n.CounterpartyNotFound
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound, s.notFound
	case errors.Is(err, usecases.ErrDemoForbidden):
		return http.StatusForbidden, i18n.DemoForbidden
	case errors.Is(err, usecases.ErrForbidden):
		return http.StatusForbidden, i18n.Forbidden
	case errors.Is(err, usecases.ErrResetFailed):
		return http.StatusBadRequest, i18n.ResetFailed
	case errors.Is(err, usecases.ErrResetTokenInvalid):
		return http.StatusBadRequest, i18n.ResetTokenInvalid
	}
	return http.StatusInternalServerError, s.failed
}

// fail writes a localized error. Raw error text never reaches the client.
func fail(c *gin.Context, catalog *i18n.Catalog, err error, s scope) {
	status, key := classify(err, s)
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(c.Request.Context(), "request failed",
			"module", "http", "path", c.FullPath(), "error", err)
	}
	abortWith(c, catalog, status, key)
}

func abortWith(c *gin.Context, catalog *i18n.Catalog, status int, key i18n.Key) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": catalog.T(localeOf(c, catalog), key),
		"code":  string(key),
	})
}

func badRequest(c *gin.Context, catalog *i18n.Catalog, s scope) {
	abortWith(c, catalog, http.StatusBadRequest, s.invalid)
}

func message(c *gin.Context, catalog *i18n.Catalog, key i18n.Key) string {
	return catalog.T(localeOf(c, catalog), key)
}
