package cli

import (
	"context"
	"fmt"

	"github.com/lyrapkg/lyra/internal/client/models"
)

// Packages lists the registry's packages.
func (a *App) Packages(ctx context.Context) error {
	Render(a.out, "packages", func() ([]models.Package, bool) {
		return a.registry.Packages(ctx)
	}, renderPackages)
	return nil
}

// User shows the public profile of the user with the given id.
func (a *App) User(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: user <id>")
		return nil
	}
	Render(a.out, "user", func() (models.OtherUserProfile, bool) {
		return a.registry.User(ctx, id)
	}, renderProfile)
	return nil
}
