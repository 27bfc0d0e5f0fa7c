package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/accounting-service/internal/api/dto"
	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/service"
	apperrors "github.com/spec-kit/accounting-service/pkg/util/errorutil"
)

// AuthHandler exposes accountant registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(http.StatusBadRequest, "first name, last name, username and password required")
	}

	acc := &domain.Accountant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.auth.RegisterAccountant(c.UserContext(), acc, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return c.Status(http.StatusBadRequest).JSON(dto.RegisterResponse{
				Success: false,
				Message: "username already taken",
			})
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		Success: true,
		Message: "registration successful",
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	result, err := h.auth.LoginAccountant(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !result.Success {
		return c.Status(http.StatusUnauthorized).JSON(dto.LoginResponse{
			Success: false,
			Message: result.Message,
		})
	}

	return c.JSON(dto.LoginResponse{
		Success: true,
		Message: result.Message,
		Token:   result.Token,
	})
}
