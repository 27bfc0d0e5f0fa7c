package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/accounting-service/internal/api/dto"
	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/repository"
	"github.com/spec-kit/accounting-service/internal/service"
	apperrors "github.com/spec-kit/accounting-service/pkg/util/errorutil"
)

// AccountantsHandler serves accountant profile data.
type AccountantsHandler struct {
	accountants repository.AccountantRepository
}

// NewAccountantsHandler constructs handler.
func NewAccountantsHandler(accountants repository.AccountantRepository) *AccountantsHandler {
	return &AccountantsHandler{accountants: accountants}
}

// LoadDetails handles GET /user/load-details. The username comes from the
// verified identity header, never from the caller directly.
func (h *AccountantsHandler) LoadDetails(c *fiber.Ctx) error {
	username, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	acc, err := h.accountants.GetByUsername(c.UserContext(), username)
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(dto.AccountantDetailsResponse{Success: false, Message: "failed to load details"})
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.AccountantDetailsResponse{
		Success:  true,
		Message:  "details loaded",
		Username: acc.Username,
		Email:    acc.Email,
		Phone:    acc.Phone,
		ID:       acc.ID,
	})
}
