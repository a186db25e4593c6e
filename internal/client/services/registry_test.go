package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lyrapkg/lyra/internal/client/client"
	"github.com/lyrapkg/lyra/internal/client/models"
)

func TestRegistry_Packages(t *testing.T) {
	fc := &fakeClient{packagesRet: []models.Package{{Name: "left-pad", Version: "1.0.0"}}}
	svc := NewRegistryService(fc, nil)

	pkgs, ok := svc.Packages(context.Background())
	assert.True(t, ok)
	assert.Equal(t, fc.packagesRet, pkgs)
}

func TestRegistry_PackagesFailure(t *testing.T) {
	fc := &fakeClient{readErr: &client.StatusError{Code: 502}}
	pkgs, ok := NewRegistryService(fc, nil).Packages(context.Background())
	assert.False(t, ok)
	assert.Nil(t, pkgs)
}

func TestRegistry_User(t *testing.T) {
	joined := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	fc := &fakeClient{userRet: models.OtherUserProfile{Username: "ana", CreatedAt: joined, PackagesCreated: []string{"a"}}}
	svc := NewRegistryService(fc, nil)

	p, ok := svc.User(context.Background(), "42")
	assert.True(t, ok)
	assert.Equal(t, "42", fc.lastUserID)
	assert.Equal(t, fc.userRet, p)

	fc.readErr = client.ErrShape
	p, ok = svc.User(context.Background(), "42")
	assert.False(t, ok)
	assert.Zero(t, p)
}
