// Package search talks to the external document-chunk search service. The
// service is opaque: documents are chunked and indexed elsewhere, and this
// package only issues search RPCs and lists the sections an index holds for
// a document.
package search

import (
	"context"

	"github.com/rpatil/sowcheck/internal/model"
)

// Backend is the search service contract. Search sends the literal payload
// {query, columns, limit} and returns the service's ordered result list;
// ListSections returns the section identifiers present for a document, in
// the index's natural enumeration order.
type Backend interface {
	Search(ctx context.Context, query, targetSection string, limit int) ([]model.ContentFragment, error)
	ListSections(ctx context.Context, documentID string) ([]string, error)
}

// searchColumns names the fields the backend must project. This is part of
// the wire contract with the existing indexing service.
var searchColumns = []string{"chunk", "section_name"}
