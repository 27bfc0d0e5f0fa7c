package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/events"
	"github.com/spec-kit/accounting-service/internal/repository"
)

// ErrInvalidDocumentStatus signals an unknown status value.
var ErrInvalidDocumentStatus = errors.New("invalid document status")

// DocumentService manages documents attached to client cases.
type DocumentService struct {
	documents  repository.DocumentRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDocumentService builds the service.
func NewDocumentService(documents repository.DocumentRepository, clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		documents:  documents,
		clients:    clients,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Upload stores a new document for an existing client case.
func (s *DocumentService) Upload(ctx context.Context, actor, clientID, name string, data []byte) (*domain.Document, error) {
	if name == "" || len(data) == 0 {
		return nil, errors.New("document name and payload required")
	}
	if _, err := s.clients.GetByClientID(ctx, clientID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Name:     name,
		FileData: data,
		ClientID: clientID,
		Status:   domain.DocumentStatusPending,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDocumentUploaded,
		ClientID:  clientID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.DocumentUploadedPayload{
			DocumentID:   doc.ID,
			DocumentName: doc.Name,
			SizeBytes:    len(data),
		},
	})
	return doc, nil
}

// Get loads a single document including its payload.
func (s *DocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	return s.documents.GetByID(ctx, id)
}

// List returns the documents of a client without payloads.
func (s *DocumentService) List(ctx context.Context, clientID string) ([]domain.Document, error) {
	return s.documents.ListByClientID(ctx, clientID)
}

// UpdateStatus moves a document to a new processing state.
func (s *DocumentService) UpdateStatus(ctx context.Context, actor string, id int64, status domain.DocumentStatus) error {
	switch status {
	case domain.DocumentStatusPending, domain.DocumentStatusReviewed, domain.DocumentStatusArchived:
	default:
		return ErrInvalidDocumentStatus
	}

	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documents.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDocumentStatusChanged,
		ClientID:  doc.ClientID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.DocumentStatusChangedPayload{
			DocumentID: id,
			OldStatus:  doc.Status,
			NewStatus:  status,
		},
	})
	return nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	return s.documents.Delete(ctx, id)
}

func (s *DocumentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
