// Package services contains the application services of the lyra client.
// This file defines the authentication service: login, register and the
// three account mutations that re-issue the credential.
package services

import (
	"context"

	"github.com/lyrapkg/lyra/internal/client/client"
	"github.com/lyrapkg/lyra/internal/client/credentials"
	"github.com/lyrapkg/lyra/internal/client/session"
	"github.com/lyrapkg/lyra/internal/logging"
)

// AuthService defines the credential-issuing operations.
//
// Contract:
//   - Every successful call stores the credential returned by the server and
//     then refreshes the session, in that order.
//   - A failed call leaves the store and the session untouched.
//   - ChangeUsername, ChangeEmail and ChangePassword need a stored
//     credential; without one they fail without contacting the server.
//   - Nothing is retried.
//
// The bool methods are the public surface; the ...Result variants carry the
// failure category for logging and tests.
type AuthService interface {
	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, username, email, password string) bool
	ChangeUsername(ctx context.Context, username string) bool
	ChangeEmail(ctx context.Context, email string) bool
	ChangePassword(ctx context.Context, password string) bool

	LoginResult(ctx context.Context, email, password string) Result
	RegisterResult(ctx context.Context, username, email, password string) Result
	ChangeUsernameResult(ctx context.Context, username string) Result
	ChangeEmailResult(ctx context.Context, email string) Result
	ChangePasswordResult(ctx context.Context, password string) Result
}

// Refresher is the part of a session the services drive.
type Refresher interface {
	Refresh(ctx context.Context) session.State
}

type authService struct {
	client  client.Client
	store   credentials.Store
	session Refresher
	log     logging.Logger
}

// NewAuthService wires an AuthService. A nil log discards output.
func NewAuthService(c client.Client, store credentials.Store, sess Refresher, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNoop()
	}
	return &authService{client: c, store: store, session: sess, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) bool {
	return a.LoginResult(ctx, email, password).OK
}

func (a *authService) Register(ctx context.Context, username, email, password string) bool {
	return a.RegisterResult(ctx, username, email, password).OK
}

func (a *authService) ChangeUsername(ctx context.Context, username string) bool {
	return a.ChangeUsernameResult(ctx, username).OK
}

func (a *authService) ChangeEmail(ctx context.Context, email string) bool {
	return a.ChangeEmailResult(ctx, email).OK
}

func (a *authService) ChangePassword(ctx context.Context, password string) bool {
	return a.ChangePasswordResult(ctx, password).OK
}

func (a *authService) LoginResult(ctx context.Context, email, password string) Result {
	return a.issue(ctx, "login", func() (string, error) {
		return a.client.Login(ctx, email, password)
	})
}

func (a *authService) RegisterResult(ctx context.Context, username, email, password string) Result {
	return a.issue(ctx, "register", func() (string, error) {
		return a.client.Register(ctx, username, email, password)
	})
}

func (a *authService) ChangeUsernameResult(ctx context.Context, username string) Result {
	return a.update(ctx, "change username", client.UpdateUserRequest{Username: username})
}

func (a *authService) ChangeEmailResult(ctx context.Context, email string) Result {
	return a.update(ctx, "change email", client.UpdateUserRequest{Email: email})
}

func (a *authService) ChangePasswordResult(ctx context.Context, password string) Result {
	return a.update(ctx, "change password", client.UpdateUserRequest{Password: password})
}

// update sends one account mutation authorized by the stored credential.
// Unset fields of req go out as empty strings.
func (a *authService) update(ctx context.Context, op string, req client.UpdateUserRequest) Result {
	token, found, err := a.store.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "credential read failed", "op", op, "err", err)
		return failed(FailureNoCredential)
	}
	if !found {
		a.log.Debug(ctx, "no credential stored", "op", op)
		return failed(FailureNoCredential)
	}
	return a.issue(ctx, op, func() (string, error) {
		return a.client.UpdateUser(ctx, token, req)
	})
}

// issue runs call and, on success, persists the returned credential and
// refreshes the session.
func (a *authService) issue(ctx context.Context, op string, call func() (string, error)) Result {
	token, err := call()
	if err != nil {
		f := fromClient(err)
		a.log.Debug(ctx, "operation failed", "op", op, "failure", f, "err", err)
		return failed(f)
	}

	if err := a.store.Set(ctx, token); err != nil {
		a.log.Warn(ctx, "credential write failed", "op", op, "err", err)
		return failed(FailureStore)
	}

	st := a.session.Refresh(ctx)
	a.log.Debug(ctx, "operation succeeded", "op", op, "session", st.Status)
	return ok()
}
