package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpatil/sowcheck/internal/model"
)

// Runner validates one document per call. Each call owns a fresh RunState,
// so batch jobs never observe each other's partial results.
type Runner interface {
	Run(ctx context.Context, state *model.RunState, documentID string) (*model.Report, error)
}

// ValidateJob is one document validation job
type ValidateJob struct {
	DocumentID string
	Runner     Runner
}

// Execute executes the validation job
func (j *ValidateJob) Execute(ctx context.Context) Result {
	state := model.NewRunState()
	report, err := j.Runner.Run(ctx, state, j.DocumentID)
	return &ValidateResult{
		DocumentID: j.DocumentID,
		Report:     report,
		Error:      err,
	}
}

// ValidateResult represents the result of a validation job
type ValidateResult struct {
	DocumentID string
	Report     *model.Report
	Error      error
}

// GetError returns the error from the validation result
func (r *ValidateResult) GetError() error {
	return r.Error
}

// BatchProcessor validates multiple documents concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessDocuments validates the given document IDs concurrently. Results
// are returned sorted by document ID for stable output ordering.
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, ids []string) []*ValidateResult {
	if len(ids) == 0 {
		return []*ValidateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, id := range ids {
		pool.Submit(&ValidateJob{
			DocumentID: id,
			Runner:     b.runner,
		})
	}

	results := pool.Wait()

	out := make([]*ValidateResult, len(results))
	for i, result := range results {
		out[i] = result.(*ValidateResult)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocumentID < out[j].DocumentID })

	return out
}

// ProcessFile reads document IDs from a file and validates them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ValidateResult, error) {
	ids, err := ReadDocumentIDs(filePath)
	if err != nil {
		return nil, fmt.Errorf("read document IDs: %w", err)
	}

	return b.ProcessDocuments(ctx, ids), nil
}

// ReadDocumentIDs reads document IDs from a file (one per line, # comments
// and blank lines skipped, duplicates dropped).
func ReadDocumentIDs(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		ids = append(ids, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return ids, nil
}
