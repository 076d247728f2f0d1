package search

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpatil/sowcheck/internal/cache"
	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/worker"
)

// limiterKey is the rate-limit bucket shared by all search calls.
const limiterKey = "search"

// Retriever wraps the backend with result caching and rate limiting. On
// backend failure it returns an empty fragment list plus a RetrievalError;
// a failed retrieval for one section must never abort the rest of the run.
type Retriever struct {
	backend Backend
	cache   cache.Cache // nil disables caching
	limiter *worker.Limiter
	limit   int
}

// NewRetriever creates a retriever. A nil cache disables caching, a nil
// limiter disables throttling, and a non-positive limit falls back to 5.
func NewRetriever(backend Backend, c cache.Cache, limiter *worker.Limiter, limit int) *Retriever {
	if limit <= 0 {
		limit = 5
	}
	return &Retriever{
		backend: backend,
		cache:   c,
		limiter: limiter,
		limit:   limit,
	}
}

// Retrieve returns the fragments for one query against one target section.
func (r *Retriever) Retrieve(ctx context.Context, documentID, query, targetSection string) ([]model.ContentFragment, error) {
	key := cache.Key(documentID, query, targetSection)

	if r.cache != nil {
		if data, found := r.cache.Get(key); found {
			var fragments []model.ContentFragment
			if err := json.Unmarshal(data, &fragments); err == nil {
				return fragments, nil
			}
			// Corrupt entry: drop it and fall through to a fresh search.
			_ = r.cache.Delete(key)
		}
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx, limiterKey); err != nil {
			return nil, &model.RetrievalError{Section: targetSection, Err: err}
		}
	}

	fragments, err := r.backend.Search(ctx, query, targetSection, r.limit)
	if err != nil {
		return nil, &model.RetrievalError{Section: targetSection, Err: err}
	}

	if r.cache != nil {
		if data, err := json.Marshal(fragments); err == nil {
			if err := r.cache.Set(key, data, 0); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cache write failed for section %q: %v\n", targetSection, err)
			}
		}
	}

	return fragments, nil
}
