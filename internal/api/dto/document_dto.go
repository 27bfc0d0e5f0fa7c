package dto

import "time"

// DocumentUploadRequest payload for attaching a file to a client case.
// FileData is base64 in transit per encoding/json []byte handling.
type DocumentUploadRequest struct {
	DocumentName string `json:"documentName"`
	FileData     []byte `json:"fileData"`
	ClientID     string `json:"clientId"`
}

// DocumentItem is the listing row for a stored document (no payload).
type DocumentItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ClientID   string    `json:"clientId"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// LoadDocumentsResponse lists a client's documents.
type LoadDocumentsResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Documents []DocumentItem `json:"documents"`
}

// DocumentStatusUpdateRequest moves a document to a new state.
type DocumentStatusUpdateRequest struct {
	Status string `json:"status"`
}
