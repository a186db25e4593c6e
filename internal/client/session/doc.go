// Package session owns the process-wide view of "who is signed in".
//
// A Session is created once at startup and handed to everything that needs
// it. It starts Unresolved, and the first Refresh moves it to Absent or
// Present; it never goes back to Unresolved. Every state change is pushed to
// subscribers synchronously, before Refresh or Logout returns.
package session
