package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/accounting-service/internal/api/dto"
	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/service"
	apperrors "github.com/spec-kit/accounting-service/pkg/util/errorutil"
)

// DocumentsHandler exposes document management for client cases.
type DocumentsHandler struct {
	documents *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documentService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documentService}
}

// Upload handles POST /document/upload.
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	actor, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	var req dto.DocumentUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ClientID == "" || req.DocumentName == "" || len(req.FileData) == 0 {
		return fiber.NewError(http.StatusBadRequest, "client id, document name and file data required")
	}

	doc, err := h.documents.Upload(c.UserContext(), actor, req.ClientID, req.DocumentName, req.FileData)
	if err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("client", map[string]any{"client_id": req.ClientID})
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": documentItem(doc)})
}

// List handles GET /document/load.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	clientID := c.Query("clientId")
	if clientID == "" {
		return fiber.NewError(http.StatusBadRequest, "clientId required")
	}

	docs, err := h.documents.List(c.UserContext(), clientID)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.DocumentItem, 0, len(docs))
	for i := range docs {
		items = append(items, documentItem(&docs[i]))
	}
	return c.JSON(dto.LoadDocumentsResponse{
		Success:   true,
		Message:   "documents loaded",
		Documents: items,
	})
}

// Get handles GET /document/:id, returning the payload as a download.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	doc, err := h.documents.Get(c.UserContext(), id)
	if err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("document", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Name+`"`)
	return c.Send(doc.FileData)
}

// UpdateStatus handles PUT /document/:id/status.
func (h *DocumentsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing identity header")
	}

	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	var req dto.DocumentStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.documents.UpdateStatus(c.UserContext(), actor, id, domain.DocumentStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrInvalidDocumentStatus) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("document", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "updated"}})
}

// Delete handles DELETE /document/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	if err := h.documents.Delete(c.UserContext(), id); err != nil {
		if service.IsNotFound(err) {
			return apperrors.NewNotFound("document", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}

func parseDocumentID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid document id")
	}
	return id, nil
}

func documentItem(doc *domain.Document) dto.DocumentItem {
	return dto.DocumentItem{
		ID:         doc.ID,
		Name:       doc.Name,
		ClientID:   doc.ClientID,
		Status:     string(doc.Status),
		UploadedAt: doc.UploadedAt,
	}
}
