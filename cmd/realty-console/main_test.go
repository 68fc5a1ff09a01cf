package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect email or password."})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"token": "tok", "email": body["email"], "role": body["role"],
		}})
	})
	mux.HandleFunc("GET /api/v1/dashboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"variant": "tenant", "title": "Tenant dashboard",
			"features": []map[string]string{{"title": "Search", "description": "Find a home"}},
		}})
	})
	mux.HandleFunc("GET /api/v1/properties", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 1, "data": []map[string]any{
			{"type": "villa", "address": "Shiraz", "area": 240},
		}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClient_LoginAndDashboard(t *testing.T) {
	api := newAPIClient(fakeServer(t).URL+"/", "en")

	_, err := api.login("a@b.co", "wrong", "tenant")
	require.EqualError(t, err, "Incorrect email or password.")
	assert.Empty(t, api.token)

	s, err := api.login("a@b.co", "secret123", "tenant")
	require.NoError(t, err)
	assert.Equal(t, "tenant", s.Role)
	assert.Equal(t, "tok", api.token)

	d, err := api.dashboard()
	require.NoError(t, err)
	assert.Equal(t, "Tenant dashboard", d.Title)
	require.Len(t, d.Features, 1)

	list, err := api.properties()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 240.0, list[0].Area)
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestModel_SignInFlow(t *testing.T) {
	api := newAPIClient(fakeServer(t).URL, "en")
	var m tea.Model = initialModel(api)

	m = press(t, m, "enter", "down", "enter")
	assert.Equal(t, stepEnteringEmail, m.(model).step)
	assert.Equal(t, "tenant", m.(model).role)

	m = press(t, m, "a@b.co", "enter", "secret123")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, stepWorking, m.(model).step)

	m, _ = m.Update(cmd())
	assert.Equal(t, stepDashboard, m.(model).step)
	assert.Contains(t, m.View(), "Tenant dashboard")

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.Equal(t, stepViewing, m.(model).step)
	assert.Contains(t, m.View(), "Shiraz")

	m = press(t, m, "b")
	assert.Equal(t, stepDashboard, m.(model).step)
}

func TestModel_ErrorReturnsToStart(t *testing.T) {
	api := newAPIClient(fakeServer(t).URL, "en")
	var m tea.Model = initialModel(api)

	m = press(t, m, "enter", "enter", "a@b.co", "enter", "nope")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	assert.Equal(t, stepChoosingMode, m.(model).step)
	assert.Contains(t, m.View(), "Incorrect email or password.")
}
