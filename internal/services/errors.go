package services

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrExtractionFailed     = errors.New("text extraction failed")
	ErrNoTextContent        = errors.New("no text content found in document")
	ErrEmbeddingMismatch    = errors.New("embeddings cannot be compared")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionNotFound    = errors.New("session not found")
)
