package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpatil/sowcheck/internal/llm"
	"github.com/rpatil/sowcheck/internal/model"
)

// fakeBackend serves a fixed section list and per-section fragments
type fakeBackend struct {
	sections    []string
	fragments   map[string][]model.ContentFragment
	listErr     error
	searchErr   error
	searchCalls int
}

func (f *fakeBackend) Search(ctx context.Context, query, targetSection string, limit int) ([]model.ContentFragment, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.fragments[targetSection], nil
}

func (f *fakeBackend) ListSections(ctx context.Context, documentID string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sections, nil
}

// fakeProvider answers type identification and validation prompts separately
type fakeProvider struct {
	typeResponse     string
	validateResponse string
	err              error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if strings.Contains(req.Prompt, "determine if the SOW is Time & Materials") {
		return &llm.CompletionResponse{Text: f.typeResponse}, nil
	}
	return &llm.CompletionResponse{Text: f.validateResponse}, nil
}

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	// Keep the limiter out of the way in tests
	cfg.Concurrency.SearchRPS = 1000
	cfg.Concurrency.OracleRPS = 1000
	return cfg
}

func fullIndex() *fakeBackend {
	// Every T&M catalog section present under an uppercase index identifier,
	// with content for the two classification sections.
	sections := []string{
		"HEADER", "SOW TERM", "SCOPE OF SERVICES", "COMPENSATION",
		"PROJECT ASSUMPTIONS", "CLIENT RESPONSIBILITIES", "CHANGE CONTROL PROCEDURE",
		"FINANCIAL INFORMATION", "PII OR PHI", "SENSITIVE INFORMATION", "ACCESS",
		"ARTIFICIAL INTELLIGENCE", "EXHIBITS", "STATEMENT OF WORK CHARACTERISTIC",
		"CLIENT CHANGE ORDER TEMPLATE", "ADDITIONAL TERMS", "PROJECT OVERSIGHT",
	}
	fragments := make(map[string][]model.ContentFragment, len(sections))
	for _, s := range sections {
		fragments[s] = []model.ContentFragment{{Text: "content for " + s, SourceSection: s}}
	}
	return &fakeBackend{sections: sections, fragments: fragments}
}

func TestPipeline_Run_TimeAndMaterials(t *testing.T) {
	backend := fullIndex()
	provider := &fakeProvider{
		typeResponse:     `{"sow_type": "T&M"}`,
		validateResponse: `{"sow_validation": []}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if state.Phase != model.PhaseComplete {
		t.Errorf("expected complete phase, got %s", state.Phase)
	}
	if report.Variant != model.VariantTimeAndMaterials {
		t.Errorf("expected T&M variant, got %s", report.Variant)
	}
	if report.FellBack {
		t.Error("recognized type should not report fallback")
	}
	if len(report.Sections) != 17 {
		t.Errorf("expected 17 catalog sections, got %d", len(report.Sections))
	}
	if len(report.Issues) != 0 {
		t.Errorf("clean document should have no issues, got %+v", report.Issues)
	}
	if report.CompletedAt.Before(report.StartedAt) {
		t.Error("completion time before start time")
	}
}

func TestPipeline_Run_ReportsOracleIssues(t *testing.T) {
	backend := fullIndex()
	provider := &fakeProvider{
		typeResponse:     `{"sow_type": "T&M"}`,
		validateResponse: `{"sow_validation": [{"section": "Compensation", "issue_number": 1, "description": "Fee amount missing", "severity": "high", "suggested_resolution": "Add the fee amount"}]}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The canned issue names Compensation, so it survives only the
	// Compensation rule and gets dropped for all other sections.
	kept := 0
	for _, issue := range report.Issues {
		if issue.Section != "Compensation" {
			t.Errorf("issue leaked for section %q", issue.Section)
		}
		kept++
	}
	if kept != 1 {
		t.Errorf("expected 1 kept issue, got %d", kept)
	}
	if len(report.Warnings) == 0 {
		t.Error("dropped issues should leave warnings")
	}
}

func TestPipeline_Run_MissingSections(t *testing.T) {
	// Only two sections exist in the index; the classifier sections are
	// missing, so the run falls back to T&M and the other 15 catalog
	// sections become missing-section issues.
	backend := &fakeBackend{
		sections: []string{"HEADER", "EXHIBITS"},
		fragments: map[string][]model.ContentFragment{
			"HEADER":   {{Text: "Supplier: Acme Corp", SourceSection: "HEADER"}},
			"EXHIBITS": {{Text: "Exhibit A attached", SourceSection: "EXHIBITS"}},
		},
	}
	provider := &fakeProvider{
		typeResponse:     `{"sow_type": "T&M"}`,
		validateResponse: `{"sow_validation": []}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !report.FellBack {
		t.Error("unclassifiable document should fall back to T&M")
	}

	missing := 0
	for _, issue := range report.Issues {
		if strings.Contains(issue.Description, "is missing from the document") {
			missing++
		}
	}
	if missing != 15 {
		t.Errorf("expected 15 missing-section issues, got %d", missing)
	}

	if len(state.Mapping.Unresolved) != 15 {
		t.Errorf("expected 15 unresolved sections, got %d", len(state.Mapping.Unresolved))
	}
}

func TestPipeline_Run_ClassifierFailureFallsBack(t *testing.T) {
	backend := fullIndex()
	provider := &fakeProvider{
		typeResponse:     "no JSON here at all",
		validateResponse: `{"sow_validation": []}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Variant != model.VariantTimeAndMaterials {
		t.Errorf("expected T&M fallback, got %s", report.Variant)
	}
	if !report.FellBack {
		t.Error("fallback not reported")
	}
	if len(report.Warnings) == 0 {
		t.Error("fallback should leave a warning")
	}
}

func TestPipeline_Run_ListSectionsError(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("index unavailable")}
	provider := &fakeProvider{}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	_, err := p.Run(context.Background(), state, "sow-001")
	if err == nil {
		t.Fatal("expected error for unavailable index")
	}

	var setupErr *model.SetupError
	if !errors.As(err, &setupErr) {
		t.Errorf("expected SetupError, got %T", err)
	}
	if state.Phase != model.PhaseError {
		t.Errorf("expected error phase, got %s", state.Phase)
	}
}

func TestPipeline_Run_RequiresIdleState(t *testing.T) {
	backend := fullIndex()
	provider := &fakeProvider{
		typeResponse:     `{"sow_type": "T&M"}`,
		validateResponse: `{"sow_validation": []}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	if _, err := p.Run(context.Background(), state, "sow-001"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	if _, err := p.Run(context.Background(), state, "sow-001"); err == nil {
		t.Fatal("second run without Reset should fail")
	}

	state.Reset()
	if state.Phase != model.PhaseIdle || state.Report != nil || state.Classification != nil {
		t.Fatal("Reset did not clear run state")
	}

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("run after Reset failed: %v", err)
	}
	if report == nil || len(report.Issues) != 0 {
		t.Errorf("unexpected report after Reset: %+v", report)
	}
}

func TestPipeline_Run_SearchErrorDegradesToMissing(t *testing.T) {
	backend := fullIndex()
	backend.searchErr = errors.New("search backend down")
	provider := &fakeProvider{
		typeResponse:     `{"sow_type": "T&M"}`,
		validateResponse: `{"sow_validation": []}`,
	}

	p := NewPipeline(testConfig(), backend, provider)
	state := model.NewRunState()

	report, err := p.Run(context.Background(), state, "sow-001")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Every retrieval fails, so every resolved section validates against no
	// content and reports itself missing.
	if len(report.Issues) != 17 {
		t.Errorf("expected 17 missing-section issues, got %d", len(report.Issues))
	}
	if len(report.Warnings) == 0 {
		t.Error("failed retrievals should leave warnings")
	}
}
