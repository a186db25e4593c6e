package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	if email == "" || password == "" {
		fmt.Fprintln(a.out, "Email and password are required")
		return nil
	}

	if !a.auth.Login(ctx, email, password) {
		fmt.Fprintln(a.out, "Login failed")
		return nil
	}
	a.greet()
	return nil
}

// Register prompts for a username, email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	if username == "" || email == "" || password == "" {
		fmt.Fprintln(a.out, "Username, email and password are required")
		return nil
	}

	if !a.auth.Register(ctx, username, email, password) {
		fmt.Fprintln(a.out, "Registration failed")
		return nil
	}
	a.greet()
	return nil
}

// Logout forgets the stored credential.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	renderSession(a.out, a.session.Current())
	return nil
}

// greet reports the session after a credential was issued. A server token
// that does not decode leaves the user signed out.
func (a *App) greet() {
	st := a.session.Current()
	if !st.Present() {
		fmt.Fprintln(a.out, "Signed in, but the server returned an unreadable token")
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", st.Identity.Username)
}
