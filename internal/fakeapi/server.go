package fakeapi

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lyrapkg/lyra/internal/logging"
)

// Config configures a Server.
type Config struct {
	Secret   []byte
	TokenTTL time.Duration
}

// Server is the fiber application serving a Store.
type Server struct {
	app   *fiber.App
	store *Store
	cfg   Config
	log   logging.Logger
}

// New builds a Server over store and wires its routes.
func New(cfg Config, store *Store, log logging.Logger) *Server {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 90 * 24 * time.Hour
	}
	if log == nil {
		log = logging.NewNoop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "lyra-fakeapi",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          errorHandler,
	})

	s := &Server{app: app, store: store, cfg: cfg, log: log}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(RequestID(), s.accessLog())

	auth := s.app.Group("/auth")
	auth.Post("/login", s.login)
	auth.Post("/register", s.register)

	s.app.Get("/packages", s.packages)
	s.app.Put("/users", s.requireToken(), s.updateUser)
	s.app.Get("/users/:id", s.getUser)
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
