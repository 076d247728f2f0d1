// Package pipeline orchestrates a whole-document validation run: section
// discovery, SOW type classification, catalog selection, per-section
// retrieval and validation, and report assembly.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rpatil/sowcheck/internal/cache"
	"github.com/rpatil/sowcheck/internal/catalog"
	"github.com/rpatil/sowcheck/internal/classify"
	"github.com/rpatil/sowcheck/internal/llm"
	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/resolve"
	"github.com/rpatil/sowcheck/internal/search"
	"github.com/rpatil/sowcheck/internal/validate"
	"github.com/rpatil/sowcheck/internal/worker"
)

// Pipeline wires the retrieval, classification and validation stages for
// one configured deployment. It is safe for concurrent Run calls as long as
// each call gets its own RunState.
type Pipeline struct {
	backend    search.Backend
	retriever  *search.Retriever
	classifier *classify.Classifier
	validator  *validate.Validator
	renderer   *Renderer
	limiter    *worker.Limiter
	cfg        *model.Config
}

// NewPipeline assembles a pipeline from configuration plus the two external
// services it depends on.
func NewPipeline(cfg *model.Config, backend search.Backend, provider llm.Provider) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			// No usable cache directory: cache in memory only rather than
			// attempting disk writes that can never succeed.
			c = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	limiter := worker.NewLimiter(cfg.Concurrency.SearchRPS, cfg.Concurrency.Burst)
	limiter.SetRate("oracle", cfg.Concurrency.OracleRPS, cfg.Concurrency.Burst)

	return &Pipeline{
		backend:    backend,
		retriever:  search.NewRetriever(backend, c, limiter, cfg.Search.Limit),
		classifier: classify.New(provider, cfg.LLM.Model),
		validator:  validate.New(provider, cfg.LLM.Model),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		limiter:    limiter,
		cfg:        cfg,
	}
}

// oracleWait throttles completion calls. A cancelled context is not handled
// here; the oracle call right after it fails fast and degrades per its stage.
func (p *Pipeline) oracleWait(ctx context.Context) {
	_ = p.limiter.Wait(ctx, "oracle")
}

// RenderReport renders the report to the requested outputs and prints the
// terminal summary.
func (p *Pipeline) RenderReport(rep *model.Report, jsonPath, mdPath string, highOnly, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(rep, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(rep, mdPath, highOnly); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(rep)
	return nil
}

// Run validates one document end to end. The caller owns state and must pass
// it in PhaseIdle; re-running a document means Reset then Run. Only setup
// failures (unreachable index) abort the run; every downstream failure
// degrades to warnings or issues inside the report.
func (p *Pipeline) Run(ctx context.Context, state *model.RunState, documentID string) (*model.Report, error) {
	if state.Phase != model.PhaseIdle {
		return nil, fmt.Errorf("run state is %q, want %q: reset before re-running", state.Phase, model.PhaseIdle)
	}

	startedAt := time.Now().UTC()

	indexSections, err := p.backend.ListSections(ctx, documentID)
	if err != nil {
		state.Phase = model.PhaseError
		return nil, &model.SetupError{Op: "list sections", Err: err}
	}

	state.Phase = model.PhaseTypeClassifying
	cls := p.classifyDocument(ctx, state, documentID, indexSections)
	state.Classification = &cls

	cat, fellBack := catalog.ForVariant(cls.Variant)
	if fellBack {
		state.Warn(fmt.Sprintf("could not determine SOW type (%s), defaulting to T&M rules", cls.Label))
	}

	state.Phase = model.PhaseValidating
	state.Mapping = resolve.Resolve(indexSections, cat.Sections)

	var issues []model.Issue
	for _, rule := range cat.Rules() {
		issues = append(issues, p.validateSection(ctx, state, documentID, rule)...)
	}

	report := &model.Report{
		DocumentID:     documentID,
		Variant:        cat.Variant,
		Classification: cls,
		FellBack:       fellBack,
		StartedAt:      startedAt,
		CompletedAt:    time.Now().UTC(),
		Sections:       cat.Sections,
		Issues:         issues,
		Warnings:       state.Warnings,
	}

	state.Report = report
	state.Phase = model.PhaseComplete
	return report, nil
}

// classifyDocument retrieves the compensation and scope content and asks the
// classifier for the variant. Any failure along the way degrades to an
// unknown classification with a warning; it never aborts the run.
func (p *Pipeline) classifyDocument(ctx context.Context, state *model.RunState, documentID string, indexSections []string) model.Classification {
	mapping := resolve.Resolve(indexSections, catalog.Default().Sections)

	compensation := p.classifyRetrieve(ctx, state, documentID, mapping, "Compensation", classify.CompensationQuery)
	scope := p.classifyRetrieve(ctx, state, documentID, mapping, "Scope of Services", classify.ScopeQuery)

	if len(compensation) == 0 && len(scope) == 0 {
		state.Warn("could not retrieve content for SOW type identification")
		return model.UnknownClassification()
	}

	p.oracleWait(ctx)
	cls, err := p.classifier.Classify(ctx, classify.BuildContent(compensation, scope))
	if err != nil {
		state.Warn(fmt.Sprintf("SOW type identification failed: %v", err))
	}
	return cls
}

func (p *Pipeline) classifyRetrieve(ctx context.Context, state *model.RunState, documentID string, mapping *model.SectionMapping, section, query string) []model.ContentFragment {
	target, ok := mapping.Target(section)
	if !ok {
		return nil
	}
	fragments, err := p.retriever.Retrieve(ctx, documentID, query, target)
	if err != nil {
		state.Warn(err.Error())
		return nil
	}
	return fragments
}

// validateSection handles one catalog rule: an unresolved section becomes a
// missing-section issue directly; otherwise content is retrieved (a failed
// retrieval warns and validates against no content) and validated. Issues
// the oracle attributed to a different section are dropped.
func (p *Pipeline) validateSection(ctx context.Context, state *model.RunState, documentID string, rule model.Rule) []model.Issue {
	target, ok := state.Mapping.Target(rule.Section)
	if !ok {
		return []model.Issue{validate.MissingSectionIssue(rule.Section, rule.SeverityPolicy)}
	}

	fragments, err := p.retriever.Retrieve(ctx, documentID, rule.RetrievalQuery, target)
	if err != nil {
		state.Warn(err.Error())
		fragments = nil
	}

	p.oracleWait(ctx)
	raw := p.validator.ValidateSection(ctx, fragments, rule)

	issues := make([]model.Issue, 0, len(raw))
	for _, issue := range raw {
		if issue.Section != rule.Section {
			state.Warn(fmt.Sprintf("dropped issue attributed to %q while validating %q", issue.Section, rule.Section))
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}
