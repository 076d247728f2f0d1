// Package classify determines which SOW variant a document is, so the
// orchestrator can pick the matching rule catalog before validation starts.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpatil/sowcheck/internal/llm"
	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/parse"
)

// Retrieval queries for the two sections whose wording distinguishes the
// variants. These differ from the validation-stage queries on purpose: they
// bias toward rate and milestone language.
const (
	CompensationQuery = "Retrieve compensation payment terms deliverables milestones hourly rates"
	ScopeQuery        = "Retrieve scope services roles hourly rates deliverables"
)

// scopeFragmentCap bounds how many scope fragments feed the prompt; the
// scope section tends to be long and the first few fragments carry the rate
// language that matters here.
const scopeFragmentCap = 3

// Classifier identifies the SOW variant from compensation and scope content.
type Classifier struct {
	provider llm.Provider
	model    string
	parser   *parse.Parser
}

// New creates a classifier backed by the given completion provider.
func New(provider llm.Provider, model string) *Classifier {
	return &Classifier{
		provider: provider,
		model:    model,
		parser:   parse.New("sow_type"),
	}
}

// BuildContent assembles the classification input from compensation and
// scope fragments. Scope fragments beyond the cap are dropped.
func BuildContent(compensation, scope []model.ContentFragment) string {
	var comp strings.Builder
	for _, f := range compensation {
		comp.WriteString(f.Text)
		comp.WriteString("\n\n")
	}

	if len(scope) > scopeFragmentCap {
		scope = scope[:scopeFragmentCap]
	}
	var sc strings.Builder
	for _, f := range scope {
		sc.WriteString(f.Text)
		sc.WriteString("\n\n")
	}

	return fmt.Sprintf("Compensation Section:\n%s\n\nScope of Services Section:\n%s", comp.String(), sc.String())
}

// Classify determines the SOW variant from the combined section content.
// Empty content short-circuits to an unknown classification without calling
// the oracle. A transport failure returns unknown plus a ClassificationError
// so the caller can warn and fall back; a parse failure returns unknown with
// low confidence.
func (c *Classifier) Classify(ctx context.Context, content string) (model.Classification, error) {
	if strings.TrimSpace(content) == "" {
		return model.UnknownClassification(), nil
	}

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model:  c.model,
		Prompt: buildPrompt(content),
	})
	if err != nil {
		return model.UnknownClassification(), &model.ClassificationError{Err: err}
	}

	var payload model.TypePayload
	if err := c.parser.Decode(resp.Text, &payload); err != nil {
		return model.UnknownClassification(), &model.ClassificationError{Err: err}
	}

	variant := model.VariantFromLabel(payload.SOWType)
	return model.Classification{
		Label:         payload.SOWType,
		Variant:       variant,
		LowConfidence: variant == model.VariantUnknown,
	}, nil
}

func buildPrompt(content string) string {
	var b strings.Builder
	b.WriteString("You have been provided document content from a Statement of Work (SOW).\n\n")
	b.WriteString("Document Content:\n")
	b.WriteString(content)
	b.WriteString("\n\nAnalyze this content and determine if the SOW is Time & Materials (T&M) or Fixed-Fee type based on these criteria:\n\n")
	b.WriteString("T&M Indicators:\n")
	b.WriteString("- Language like \"Total Not to Exceed Fee basis\"\n")
	b.WriteString("- Hourly rates and total hours specified\n")
	b.WriteString("- Resource roles with billing rates\n")
	b.WriteString("- Payment based on time spent\n\n")
	b.WriteString("Fixed-Fee Indicators:\n")
	b.WriteString("- Language like \"Total Not to Exceed Fixed Fee basis\"\n")
	b.WriteString("- Deliverables and milestones with specific costs\n")
	b.WriteString("- Payment tied to deliverable completion\n")
	b.WriteString("- Acceptance criteria for deliverables\n\n")
	b.WriteString("Provide your analysis in the following JSON format ONLY:\n\n")
	b.WriteString("{\n    \"sow_type\": \"T&M\" or \"Fixed-Fee\"\n}\n\n")
	b.WriteString("JSON ONLY - NO OTHER TEXT:")
	return b.String()
}
