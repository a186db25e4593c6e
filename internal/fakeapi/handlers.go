package fakeapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	ID    string `json:"id,omitempty"`
	Token string `json:"token"`
}

type userResponse struct {
	Username        string    `json:"username"`
	CreatedAt       time.Time `json:"createdAt"`
	PackagesCreated []string  `json:"packagesCreated"`
}

type packagesResponse struct {
	Packages []Package `json:"packages"`
}

func (s *Server) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	u, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	return s.sendToken(c, fiber.StatusOK, u, true)
}

func (s *Server) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username, email and password are required")
	}

	u, err := s.store.CreateUser(req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, "User with this email already exists")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return s.sendToken(c, fiber.StatusCreated, u, true)
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	id, _ := c.Locals(localsUserID).(string)

	u, err := s.store.UpdateUser(id, UserUpdate(req))
	switch {
	case errors.Is(err, ErrNoChanges):
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	case errors.Is(err, ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, "Email already in use")
	case errors.Is(err, ErrUserNotFound):
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	return s.sendToken(c, fiber.StatusOK, u, false)
}

func (s *Server) packages(c *fiber.Ctx) error {
	pkgs := s.store.Packages()
	if len(pkgs) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No packages found")
	}
	return c.Status(fiber.StatusOK).JSON(packagesResponse{Packages: pkgs})
}

func (s *Server) getUser(c *fiber.Ctx) error {
	u, err := s.store.UserByID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return c.Status(fiber.StatusOK).JSON(userResponse{
		Username:        u.Username,
		CreatedAt:       u.CreatedAt,
		PackagesCreated: u.PackagesCreated,
	})
}

func (s *Server) sendToken(c *fiber.Ctx, status int, u User, withID bool) error {
	token, err := GenerateToken(u, s.cfg.Secret, s.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	resp := tokenResponse{Token: token}
	if withID {
		resp.ID = u.ID
	}
	return c.Status(status).JSON(resp)
}
