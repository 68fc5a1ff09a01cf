package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/services"
	"realty-server/usecases"
	"realty-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectingResolver struct{}

func (rejectingResolver) Resolve(context.Context, string) (*usecases.Session, error) {
	return nil, usecases.ErrUnauthorized
}

type brokenActivityRepo struct{}

func (brokenActivityRepo) CreateBatch(context.Context, []entities.ActivityLog) error {
	return errors.New("database unavailable")
}

func (brokenActivityRepo) GetRecent(context.Context, int) ([]entities.ActivityLog, error) {
	return nil, nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleWS_InvalidSessionIsLocalized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := i18n.NewCatalog("fa")
	h := NewWSHandler(ws.NewManager(nil), rejectingResolver{}, nil, nil, catalog)
	router := gin.New()
	router.GET("/ws", h.HandleWS)

	for locale, lang := range map[string]string{"en": "en-GB", "fa": ""} {
		req := httptest.NewRequest(http.MethodGet, "/ws?token=bogus", nil)
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, catalog.T(locale, i18n.Unauthorized), body["error"])
		assert.Equal(t, string(i18n.Unauthorized), body["code"])
	}
}

func TestFlushActivity_FailureIsLocalized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := i18n.NewCatalog("fa")
	recorder := services.NewActivityRecorder(brokenActivityRepo{}, nil, time.Hour)
	recorder.Record(context.Background(), entities.User{ID: "u1", Email: "a@example.com"}, entities.ActionLogin)

	h := NewCacheHandler(ws.NewManager(nil), recorder, catalog)
	router := gin.New()
	router.POST("/flush", h.FlushActivity)

	req := httptest.NewRequest(http.MethodPost, "/flush", nil)
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, catalog.T("en", i18n.InternalError), body["error"])
	assert.Equal(t, string(i18n.InternalError), body["code"])
	assert.Equal(t, 1, recorder.Pending(), "failed entries stay queued")
}
