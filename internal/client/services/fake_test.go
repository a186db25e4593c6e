package services

import (
	"context"
	"errors"

	"github.com/lyrapkg/lyra/internal/client/client"
	"github.com/lyrapkg/lyra/internal/client/credentials"
	"github.com/lyrapkg/lyra/internal/client/models"
)

// fakeClient implements client.Client and records every call.
type fakeClient struct {
	calls int

	tokenRet string
	tokenErr error

	lastEmail, lastPassword, lastUsername string
	lastBearer                            string
	lastUpdate                            client.UpdateUserRequest

	packagesRet []models.Package
	userRet     models.OtherUserProfile
	lastUserID  string
	readErr     error
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.calls++
	f.lastEmail, f.lastPassword = email, password
	return f.tokenRet, f.tokenErr
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) (string, error) {
	f.calls++
	f.lastUsername, f.lastEmail, f.lastPassword = username, email, password
	return f.tokenRet, f.tokenErr
}

func (f *fakeClient) UpdateUser(_ context.Context, token string, req client.UpdateUserRequest) (string, error) {
	f.calls++
	f.lastBearer, f.lastUpdate = token, req
	return f.tokenRet, f.tokenErr
}

func (f *fakeClient) GetPackages(context.Context) ([]models.Package, error) {
	f.calls++
	return f.packagesRet, f.readErr
}

func (f *fakeClient) GetUser(_ context.Context, id string) (models.OtherUserProfile, error) {
	f.calls++
	f.lastUserID = id
	return f.userRet, f.readErr
}

// flakyStore wraps a MemoryStore and can fail Get or Set.
type flakyStore struct {
	*credentials.MemoryStore
	getErr, setErr error
}

func (s *flakyStore) Get(ctx context.Context) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.MemoryStore.Get(ctx)
}

func (s *flakyStore) Set(ctx context.Context, token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, token)
}

var errBoom = errors.New("boom")
