package domain

import "time"

// DocumentStatus represents processing states for an uploaded document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusReviewed DocumentStatus = "REVIEWED"
	DocumentStatusArchived DocumentStatus = "ARCHIVED"
)

// Document is a file attached to a client case.
type Document struct {
	ID         int64
	Name       string
	FileData   []byte
	ClientID   string
	Status     DocumentStatus
	UploadedAt time.Time
}
