// Package domain holds uploaded document metadata. The bytes live in object storage; this service
// only records where.
package domain

import (
	"strings"
	"time"
)

type Document struct {
	ID                  string
	EntityID            string
	FileName            string
	MimeType            string
	SizeBytes           int64
	StorageKey          string
	CloudFrontURL       string
	SourceTransactionID string
	UploadedByUserID    string
	UploadedByEmail     string
	CreatedAt           time.Time
}

// Upload describes an object that has already been written to storage.
type Upload struct {
	FileName            string
	MimeType            string
	SizeBytes           int64
	StorageKey          string
	CloudFrontURL       string
	SourceTransactionID string
}

// Normalize trims every text field.
func (u Upload) Normalize() Upload {
	u.FileName = strings.TrimSpace(u.FileName)
	u.MimeType = strings.TrimSpace(u.MimeType)
	u.StorageKey = strings.TrimSpace(u.StorageKey)
	u.CloudFrontURL = strings.TrimSpace(u.CloudFrontURL)
	u.SourceTransactionID = strings.TrimSpace(u.SourceTransactionID)
	return u
}

// Validate returns a message describing the first invalid field, or "".
func (u Upload) Validate() string {
	switch {
	case u.FileName == "":
		return "document file name is required"
	case u.MimeType == "":
		return "document mime type is required"
	case u.StorageKey == "":
		return "document storage key is required"
	case u.SizeBytes < 0:
		return "document size cannot be negative"
	}
	return ""
}
