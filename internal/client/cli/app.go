package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"sync"

	"github.com/lyrapkg/lyra/internal/client/client"
	"github.com/lyrapkg/lyra/internal/client/config"
	"github.com/lyrapkg/lyra/internal/client/credentials"
	"github.com/lyrapkg/lyra/internal/client/services"
	"github.com/lyrapkg/lyra/internal/client/session"
	"github.com/lyrapkg/lyra/internal/filex"
	"github.com/lyrapkg/lyra/internal/logging"
)

// App wires the session, the services and the terminal together.
type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Session
	auth     services.AuthService
	registry services.RegistryService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu          sync.Mutex
	status      string
	unsubscribe func()
}

// NewApp opens local storage and builds an App from cfg. With ephemeral set
// the credential lives in memory only and no database is touched.
func NewApp(ctx context.Context, cfg *config.Config, ephemeral bool, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	var (
		db    *sql.DB
		store credentials.Store
	)
	if ephemeral {
		store = credentials.NewMemoryStore()
	} else {
		if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
			return nil, err
		}
		var err error
		db, err = client.InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "err", err)
			return nil, err
		}
		store = credentials.NewSQLiteStore(db)
	}

	hc := client.NewHTTPClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout}, log)
	a := newApp(cfg, store, hc, log, in, out)
	a.db = db
	return a, nil
}

// newApp builds an App over already constructed collaborators.
func newApp(cfg *config.Config, store credentials.Store, c client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	sess := session.New(store, session.WithLogger(log))
	a := &App{
		config:   cfg,
		session:  sess,
		auth:     services.NewAuthService(c, store, sess, log),
		registry: services.NewRegistryService(c, log),
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.status = promptStatus(sess.Current())
	a.unsubscribe = sess.Subscribe(a.onSession)
	return a
}

func (a *App) onSession(st session.State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = promptStatus(st)
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Start runs the startup session refresh.
func (a *App) Start(ctx context.Context) {
	st := a.session.Start(ctx)
	a.log.Debug(ctx, "session resolved", "status", st.Status)
}

// Run starts the session and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	a.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the subscription and the database.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
