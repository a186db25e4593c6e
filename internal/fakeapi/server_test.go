package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("fakeapi-test")

func newServer(t *testing.T) (*Server, *Store) {
	t.Helper()
	store := newStore()
	return New(Config{Secret: testSecret}, store, nil), store
}

func call(t *testing.T, s *Server, method, path, bearer, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestRegisterLoginFlow(t *testing.T) {
	s, _ := newServer(t)

	code, body := call(t, s, http.MethodPost, "/auth/register", "", `{"username":"ana","email":"a@x.com","password":"secret12"}`)
	require.Equal(t, http.StatusCreated, code)
	tok, _ := body["token"].(string)
	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, body["id"], claims.ID)

	code, _ = call(t, s, http.MethodPost, "/auth/register", "", `{"username":"x","email":"a@x.com","password":"p"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body = call(t, s, http.MethodPost, "/auth/login", "", `{"email":"a@x.com","password":"secret12"}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	code, body = call(t, s, http.MethodPost, "/auth/login", "", `{"email":"a@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestRegister_RequiresFields(t *testing.T) {
	s, _ := newServer(t)

	code, _ := call(t, s, http.MethodPost, "/auth/register", "", `{"username":"ana","email":"","password":"p"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, s, http.MethodPost, "/auth/login", "", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdateUser(t *testing.T) {
	s, store := newServer(t)
	u, err := store.CreateUser("ana", "a@x.com", "secret12")
	require.NoError(t, err)
	_, err = store.CreateUser("bo", "b@x.com", "secret12")
	require.NoError(t, err)
	tok, err := GenerateToken(u, testSecret, time.Hour)
	require.NoError(t, err)

	code, _ := call(t, s, http.MethodPut, "/users", "", `{"username":"x","email":"","password":""}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, s, http.MethodPut, "/users", "garbage", `{"username":"x","email":"","password":""}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, s, http.MethodPut, "/users", tok, `{"username":"","email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, s, http.MethodPut, "/users", tok, `{"username":"","email":"b@x.com","password":""}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body := call(t, s, http.MethodPut, "/users", tok, `{"username":"","email":"new@x.com","password":""}`)
	require.Equal(t, http.StatusOK, code)
	claims, err := ParseToken(body["token"].(string), testSecret)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "new@x.com", claims.Email)
	_, hasID := body["id"]
	assert.False(t, hasID)
}

func TestPackagesAndUser(t *testing.T) {
	s, store := newServer(t)

	code, _ := call(t, s, http.MethodGet, "/packages", "", "")
	assert.Equal(t, http.StatusNotFound, code)

	u, err := Seed(store)
	require.NoError(t, err)

	code, body := call(t, s, http.MethodGet, "/packages", "", "")
	require.Equal(t, http.StatusOK, code)
	pkgs, _ := body["packages"].([]any)
	assert.Len(t, pkgs, 2)

	code, body = call(t, s, http.MethodGet, "/users/"+u.ID, "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, DemoUsername, body["username"])
	assert.Equal(t, []any{"strings", "math"}, body["packagesCreated"])
	assert.IsType(t, "", body["createdAt"])

	code, body = call(t, s, http.MethodGet, "/users/nope", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found", body["error"])
}
