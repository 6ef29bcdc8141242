package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersNeverExposesPasswords(t *testing.T) {
	r, _ := newTestAPI(t)
	registerAndLogin(t, r, "alice@example.com", "customer")
	_, adminToken := registerAndLogin(t, r, "admin@example.com", "admin")

	w := doJSON(t, r, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, `"role"`)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "$2a$") // pas de hash bcrypt dans la réponse
}

func TestListUsersRequiresAdmin(t *testing.T) {
	r, _ := newTestAPI(t)
	_, token := registerAndLogin(t, r, "bob@example.com", "customer")

	w := doJSON(t, r, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
