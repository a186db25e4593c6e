package client

import (
	"context"

	"github.com/lyrapkg/lyra/internal/client/models"
)

// UpdateUserRequest is the body of PUT users. A field left "" is meant to
// stay unchanged on the server.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client is the registry API as seen by the CLI. Credential-issuing calls
// return the new bearer token.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, error)
	UpdateUser(ctx context.Context, token string, req UpdateUserRequest) (string, error)
	GetPackages(ctx context.Context) ([]models.Package, error)
	GetUser(ctx context.Context, id string) (models.OtherUserProfile, error)
}
