package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/util"
)

const maxResponseBytes = 4 << 20 // 4 MiB is far beyond any sane result page

// HTTPBackend is the HTTP client for the search service.
type HTTPBackend struct {
	baseURL    string
	index      string
	userAgent  string
	httpClient *http.Client
}

// NewHTTPBackend creates a backend client for one search index.
func NewHTTPBackend(cfg model.SearchConfig) *HTTPBackend {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	proxyFunc := util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy)

	return &HTTPBackend{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		index:     cfg.Index,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc,
			},
		},
	}
}

type searchRequest struct {
	Query   string   `json:"query"`
	Columns []string `json:"columns"`
	Limit   int      `json:"limit"`
}

type searchResponse struct {
	Results []model.ContentFragment `json:"results"`
}

type sectionsResponse struct {
	Sections []string `json:"sections"`
}

// Search issues one search RPC against the configured index. The target
// section is advisory (the payload carries only query, columns and limit,
// matching the existing service contract); it is reported in errors so a
// failure can be attributed to the section being validated.
func (b *HTTPBackend) Search(ctx context.Context, query, targetSection string, limit int) ([]model.ContentFragment, error) {
	payload, err := json.Marshal(searchRequest{
		Query:   query,
		Columns: searchColumns,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/indexes/%s/search", b.baseURL, b.index)
	body, err := b.post(ctx, url, payload)
	if err != nil {
		return nil, fmt.Errorf("query section %q: %w", targetSection, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("query section %q: malformed payload: %w", targetSection, err)
	}

	if limit > 0 && len(resp.Results) > limit {
		resp.Results = resp.Results[:limit]
	}
	return resp.Results, nil
}

// ListSections returns the section identifiers the index holds for a document.
func (b *HTTPBackend) ListSections(ctx context.Context, documentID string) ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/documents/%s/sections", b.baseURL, documentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if b.userAgent != "" {
		req.Header.Set("User-Agent", b.userAgent)
	}

	httpResp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list sections: unexpected status %d", httpResp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp sectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("list sections: malformed payload: %w", err)
	}

	return resp.Sections, nil
}

func (b *HTTPBackend) post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if b.userAgent != "" {
		req.Header.Set("User-Agent", b.userAgent)
	}

	httpResp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
}
