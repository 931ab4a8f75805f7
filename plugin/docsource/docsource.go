// Package docsource defines the transcript document capability: an external
// store of raw transcript documents discovered during sync.
package docsource

import (
	"context"
	"time"
)

// Document is one candidate transcript document from the external source.
// ExternalID must be stable across listings, it drives sync dedup.
type Document struct {
	ExternalID string
	Name       string
	CreatedAt  time.Time
}

// Source lists candidate documents and fetches their raw text.
type Source interface {
	// List returns up to limit candidate documents in source-provided order.
	List(ctx context.Context, limit int) ([]Document, error)
	// FetchText returns the raw text of a document.
	FetchText(ctx context.Context, externalID string) (string, error)
}
