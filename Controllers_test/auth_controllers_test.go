package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginIssuesToken(t *testing.T) {
	env := setupEnv(t)
	token := loginAdmin(t, env)

	assert.True(t, env.Sessions.Validate(token))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupEnv(t)

	w := doJSON(t, env, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Username comparison is case-sensitive.
	w = doJSON(t, env, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "Admin", "password": "secret123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "invalid credentials", resp.Error)
}

func TestLoginRequiresBothFields(t *testing.T) {
	env := setupEnv(t)

	w := doJSON(t, env, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckReportsSessionState(t *testing.T) {
	env := setupEnv(t)

	var resp struct {
		Authenticated bool `json:"authenticated"`
	}

	w := doJSON(t, env, http.MethodGet, "/api/auth/check", nil, "bogus")
	assert.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.False(t, resp.Authenticated)

	token := loginAdmin(t, env)
	w = doJSON(t, env, http.MethodGet, "/api/auth/check", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.True(t, resp.Authenticated)
}

func TestLogoutRevokesSession(t *testing.T) {
	env := setupEnv(t)
	token := loginAdmin(t, env)

	w := doJSON(t, env, http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.Sessions.Validate(token))

	// Logging out an unknown token still succeeds.
	w = doJSON(t, env, http.MethodPost, "/api/auth/logout", nil, "bogus")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := setupEnv(t)

	w := doJSON(t, env, http.MethodPost, "/api/menu/add",
		map[string]interface{}{"name": "Dal", "price": 120, "category": "Main Course"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, env, http.MethodGet, "/api/revenue/today", nil, "not-a-session")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
