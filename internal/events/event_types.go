package events

import (
	"time"

	"github.com/spec-kit/accounting-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventClientCreated         EventType = "client_created"
	EventClientDeleted         EventType = "client_deleted"
	EventClientAccessGranted   EventType = "client_access_granted"
	EventDocumentUploaded      EventType = "document_uploaded"
	EventDocumentStatusChanged EventType = "document_status_changed"
)

// Event represents a domain event emitted by services. Actor is the
// verified username that triggered the change.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ClientID  string      `json:"client_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ClientCreatedPayload payload.
type ClientCreatedPayload struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
}

// ClientAccessGrantedPayload payload.
type ClientAccessGrantedPayload struct {
	LoginUsername string `json:"login_username"`
}

// DocumentUploadedPayload payload.
type DocumentUploadedPayload struct {
	DocumentID   int64  `json:"document_id"`
	DocumentName string `json:"document_name"`
	SizeBytes    int    `json:"size_bytes"`
}

// DocumentStatusChangedPayload payload.
type DocumentStatusChangedPayload struct {
	DocumentID int64                 `json:"document_id"`
	OldStatus  domain.DocumentStatus `json:"old_status"`
	NewStatus  domain.DocumentStatus `json:"new_status"`
}
