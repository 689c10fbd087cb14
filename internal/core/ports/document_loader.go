// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/depbuild/internal/core/domain"

// DocumentLoader reads a structured document (the manifest or the lock file) from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load reads the file at path and parses it into a Document.
	//
	// It fails with domain.ErrDocumentRead when the file cannot be read and with
	// domain.ErrDocumentParse when its content is not a valid document.
	Load(path string) (domain.Document, error)
}
