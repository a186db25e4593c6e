package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lyrapkg/lyra/internal/client/models"
	"github.com/lyrapkg/lyra/internal/client/session"
)

// Render prints a loading line, runs load, then prints either the content or
// a single failure line. It reports whether content was shown.
func Render[T any](w io.Writer, what string, load func() (T, bool), content func(io.Writer, T)) bool {
	fmt.Fprintf(w, "Loading %s...\n", what)
	data, ok := load()
	if !ok {
		fmt.Fprintf(w, "Failed to load %s\n", what)
		return false
	}
	content(w, data)
	return true
}

// renderSession prints one of the three session branches.
func renderSession(w io.Writer, st session.State) {
	switch st.Status {
	case session.StatusPresent:
		fmt.Fprintf(w, "Logged in as %s <%s> (id %s)\n", st.Identity.Username, st.Identity.Email, st.Identity.ID)
	case session.StatusAbsent:
		fmt.Fprintln(w, "Not logged in")
	default:
		fmt.Fprintln(w, "Loading...")
	}
}

func renderPackages(w io.Writer, pkgs []models.Package) {
	if len(pkgs) == 0 {
		fmt.Fprintln(w, "No packages")
		return
	}
	for _, p := range pkgs {
		fmt.Fprintf(w, "%s@%s\t%s\n", p.Name, p.Version, p.Description)
		for _, f := range p.Files {
			fmt.Fprintf(w, "  %s\n", f.Path)
		}
	}
}

func renderProfile(w io.Writer, p models.OtherUserProfile) {
	fmt.Fprintf(w, "Username: %s\n", p.Username)
	fmt.Fprintf(w, "Joined:   %s\n", p.CreatedAt.Format("2006-01-02"))
	created := "(none)"
	if len(p.PackagesCreated) > 0 {
		created = strings.Join(p.PackagesCreated, ", ")
	}
	fmt.Fprintf(w, "Packages: %s\n", created)
}

// promptStatus is the part of the REPL prompt that names the user.
func promptStatus(st session.State) string {
	switch st.Status {
	case session.StatusPresent:
		return "(" + st.Identity.Username + ")"
	case session.StatusUnresolved:
		return "(...)"
	default:
		return ""
	}
}
