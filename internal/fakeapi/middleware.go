package fakeapi

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	localsUserID    = "user_id"
)

// RequestID tags each request with an id, reusing the caller's if present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			c.Set(requestIDHeader, reqID)
		}
		c.Locals(requestIDHeader, reqID)
		return c.Next()
	}
}

func (s *Server) accessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		s.log.Debug(c.UserContext(), "request",
			"id", c.Locals(requestIDHeader),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"took", time.Since(start),
		)
		return err
	}
}

// requireToken accepts only "Authorization: Bearer <valid token>".
func (s *Server) requireToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if authz == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
		}
		if !strings.HasPrefix(authz, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "Bearer token required")
		}
		claims, err := ParseToken(strings.TrimSpace(authz[len("Bearer "):]), s.cfg.Secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		c.Locals(localsUserID, claims.ID)
		return c.Next()
	}
}
