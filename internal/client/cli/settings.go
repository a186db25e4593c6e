package cli

import (
	"context"
	"fmt"

	"github.com/lyrapkg/lyra/internal/client/validate"
)

// SetUsername prompts for and applies a new username.
func (a *App) SetUsername(ctx context.Context) error {
	st := a.session.Current()
	if !st.Present() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	input, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}
	username, verr := validate.Username(input, st.Identity.Username)
	if verr != nil {
		fmt.Fprintln(a.out, verr.Error())
		return nil
	}
	if !a.auth.ChangeUsername(ctx, username) {
		fmt.Fprintln(a.out, "Failed to update username")
		return nil
	}
	fmt.Fprintln(a.out, "Username updated")
	return nil
}

// SetEmail prompts for and applies a new email address.
func (a *App) SetEmail(ctx context.Context) error {
	st := a.session.Current()
	if !st.Present() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	input, err := getSimpleText(a.reader, "New email", a.out)
	if err != nil {
		return err
	}
	email, verr := validate.Email(input, st.Identity.Email)
	if verr != nil {
		fmt.Fprintln(a.out, verr.Error())
		return nil
	}
	if !a.auth.ChangeEmail(ctx, email) {
		fmt.Fprintln(a.out, "Failed to update email")
		return nil
	}
	fmt.Fprintln(a.out, "Email updated")
	return nil
}

// SetPassword prompts for and applies a new password.
func (a *App) SetPassword(ctx context.Context) error {
	if !a.session.Current().Present() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	input, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	password, verr := validate.Password(input)
	if verr != nil {
		fmt.Fprintln(a.out, verr.Error())
		return nil
	}
	if !a.auth.ChangePassword(ctx, password) {
		fmt.Fprintln(a.out, "Failed to update password")
		return nil
	}
	fmt.Fprintln(a.out, "Password updated")
	return nil
}
