package testutil

import (
	"context"
	"net"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/lyrapkg/lyra/internal/fakeapi"
)

// StartFakeAPI serves an empty fakeapi on a loopback port for the duration
// of the test and returns its base URL and store.
func StartFakeAPI(tb testing.TB) (string, *fakeapi.Store) {
	tb.Helper()
	store := fakeapi.NewStore(bcrypt.MinCost)
	srv := fakeapi.New(fakeapi.Config{Secret: []byte(TokenSecret)}, store, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}
	go func() { _ = srv.Serve(ln) }()
	tb.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	return "http://" + ln.Addr().String(), store
}
