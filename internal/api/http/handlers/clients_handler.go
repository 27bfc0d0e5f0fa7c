package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/accounting-service/internal/api/dto"
	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/service"
	apperrors "github.com/spec-kit/accounting-service/pkg/util/errorutil"
)

// ClientsHandler exposes the client portal login and the client case CRUD
// operations consumed by the accountant UI.
type ClientsHandler struct {
	auth    *service.AuthService
	clients *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(authService *service.AuthService, clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{auth: authService, clients: clientService}
}

// Login handles POST /client/login. Failed attempts keep HTTP 200 with
// success=false; the flag is the contract the portal UI consumes.
func (h *ClientsHandler) Login(c *fiber.Ctx) error {
	var req dto.ClientLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	result, err := h.auth.LoginClient(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.ClientLoginResponse{
		Success:  result.Success,
		Message:  result.Message,
		Token:    result.Token,
		ClientID: result.ClientID,
	})
}

// Create handles POST /client/create.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	accountant, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.BusinessName == "" || req.TaxID == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "business name, tax id and email required")
	}

	client := &domain.Client{
		BusinessName:      req.BusinessName,
		ClientID:          req.TaxID,
		Email:             req.Email,
		Phone:             req.Phone,
		ContactPhone:      req.Phone,
		Address:           req.Address,
		Zip:               req.Zip,
		BusinessType:      req.ClientType,
		BankName:          req.BankName,
		BankBranch:        req.BankBranch,
		BankAccountNumber: req.BankNumber,
		AccountOwnerName:  req.BankOwnerName,
	}

	if err := h.clients.CreateClient(c.UserContext(), accountant, client); err != nil {
		message := ""
		switch {
		case errors.Is(err, service.ErrDuplicateClientID):
			message = "invalid tax id"
		case errors.Is(err, service.ErrDuplicateEmail):
			message = "invalid email address"
		case errors.Is(err, service.ErrDuplicateBankAccount):
			message = "invalid bank account number"
		default:
			return apperrors.MapError(err)
		}
		return c.Status(http.StatusBadRequest).JSON(dto.CreateClientResponse{
			Success: false,
			Message: message,
		})
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateClientResponse{
		Success: true,
		Message: "client created",
	})
}

// Delete handles DELETE /client/delete/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	accountant, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	clientID := c.Params("id")
	if err := h.clients.DeleteClient(c.UserContext(), accountant, clientID); err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": clientID})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}

// LoadCaseDetails handles GET /client/load-case-details.
func (h *ClientsHandler) LoadCaseDetails(c *fiber.Ctx) error {
	clientID := c.Query("clientId")
	client, err := h.clients.GetClient(c.UserContext(), clientID)
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(dto.LoadCaseDetailsResponse{Success: false, Message: "client not found"})
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.LoadCaseDetailsResponse{
		Success:      true,
		Message:      "client details loaded",
		BusinessName: client.BusinessName,
		ClientID:     client.ClientID,
		Email:        client.Email,
		Phone:        client.Phone,
		Address:      client.Address,
		BusinessType: client.BusinessType,
	})
}

// LoadClientCase handles GET /client/load-client-case: the full editable record.
func (h *ClientsHandler) LoadClientCase(c *fiber.Ctx) error {
	clientID := c.Query("clientId")
	client, err := h.clients.GetClient(c.UserContext(), clientID)
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(dto.ClientCaseDetails{})
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.ClientCaseDetails{
		ClientID:          client.ClientID,
		BusinessName:      client.BusinessName,
		Email:             client.Email,
		Phone:             client.Phone,
		Address:           client.Address,
		Zip:               client.Zip,
		BusinessType:      client.BusinessType,
		BankName:          client.BankName,
		BankBranch:        client.BankBranch,
		BankAccountNumber: client.BankAccountNumber,
	})
}

// Update handles PUT /client/update.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClientCaseDetails
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ClientID == "" {
		return fiber.NewError(http.StatusBadRequest, "client id required")
	}

	updated := &domain.Client{
		ClientID:          req.ClientID,
		BusinessName:      req.BusinessName,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		Zip:               req.Zip,
		BusinessType:      req.BusinessType,
		BankName:          req.BankName,
		BankBranch:        req.BankBranch,
		BankAccountNumber: req.BankAccountNumber,
	}
	if err := h.clients.UpdateClient(c.UserContext(), updated); err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": req.ClientID})
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.UpdateClientResponse{Message: "client updated"})
}

// LoadClients handles GET /client/load-clients.
func (h *ClientsHandler) LoadClients(c *fiber.Ctx) error {
	accountant, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	clients, err := h.clients.ListClients(c.UserContext(), accountant)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.ClientGridItem, 0, len(clients))
	for i := range clients {
		items = append(items, dto.ClientGridItem{
			BusinessName: clients[i].BusinessName,
			ClientID:     clients[i].ClientID,
			Email:        clients[i].Email,
			Phone:        clients[i].Phone,
		})
	}

	return c.JSON(dto.LoadClientsResponse{
		Success: true,
		Message: "clients loaded",
		Clients: items,
	})
}

// Count handles GET /client/count for the dashboard.
func (h *ClientsHandler) Count(c *fiber.Ctx) error {
	accountant, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	count, err := h.clients.CountClients(c.UserContext(), accountant)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.ClientCountResponse{Success: true, Message: "client count loaded", Count: count})
}

// GrantAccess handles POST /client/grant-access.
func (h *ClientsHandler) GrantAccess(c *fiber.Ctx) error {
	accountant, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	var req dto.GrantAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ClientID == "" || req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "client id, username and password required")
	}

	if err := h.clients.GrantLoginAccess(c.UserContext(), accountant, req.ClientID, req.Username, req.Password); err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": req.ClientID})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "access_granted"}})
}
