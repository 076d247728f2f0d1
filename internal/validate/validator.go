// Package validate runs the per-section oracle validation and converts any
// failure mode into issues. ValidateSection never returns an error: a broken
// oracle call or unparseable response becomes an issue on the section, so
// one bad section cannot abort a document run.
package validate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rpatil/sowcheck/internal/llm"
	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/parse"
)

// maxPreview caps how much raw oracle text is quoted in a parse-failure issue.
const maxPreview = 200

// compliantMarkers are scanned when the response carries no recoverable
// JSON; any of them means the oracle likely reported a clean section in prose.
var compliantMarkers = []string{"no issues", "compliant", "valid", "acceptable"}

// Validator validates one section's content against its rule.
type Validator struct {
	provider llm.Provider
	model    string
	parser   *parse.Parser
}

// New creates a validator backed by the given completion provider.
func New(provider llm.Provider, model string) *Validator {
	return &Validator{
		provider: provider,
		model:    model,
		parser:   parse.New("sow_validation"),
	}
}

// SeverityFromPolicy derives a missing-section severity from the rule's
// policy text. The first severity word wins, scanning high before medium
// before low; an unrecognizable policy defaults to low.
func SeverityFromPolicy(policy string) model.Severity {
	lower := strings.ToLower(policy)
	switch {
	case strings.Contains(lower, "high"):
		return model.SeverityHigh
	case strings.Contains(lower, "medium"):
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// MissingSectionIssue builds the single issue reported when a section has no
// retrievable content.
func MissingSectionIssue(section, policy string) model.Issue {
	return model.Issue{
		Section:             section,
		IssueNumber:         1,
		Description:         fmt.Sprintf("Section '%s' is missing from the document", section),
		Severity:            SeverityFromPolicy(policy),
		SuggestedResolution: fmt.Sprintf("Add the missing '%s' section to the SOW document", section),
	}
}

// ValidateSection validates retrieved fragments against one rule. An empty
// fragment set yields a missing-section issue without calling the oracle.
func (v *Validator) ValidateSection(ctx context.Context, fragments []model.ContentFragment, rule model.Rule) []model.Issue {
	var content strings.Builder
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}
		content.WriteString(f.Text)
		content.WriteString("\n\n")
	}

	if strings.TrimSpace(content.String()) == "" {
		return []model.Issue{MissingSectionIssue(rule.Section, rule.SeverityPolicy)}
	}

	resp, err := v.provider.Complete(ctx, llm.CompletionRequest{
		Model:  v.model,
		Prompt: buildPrompt(rule, content.String()),
	})
	if err != nil {
		return []model.Issue{{
			Section:             rule.Section,
			IssueNumber:         1,
			Description:         fmt.Sprintf("Error during LLM validation: %v", err),
			Severity:            model.SeverityHigh,
			SuggestedResolution: "Check system configuration and try again",
		}}
	}

	var payload model.ValidationPayload
	if err := v.parser.Decode(resp.Text, &payload); err != nil {
		return v.fallbackIssues(rule.Section, resp.Text)
	}

	return payload.Issues
}

// fallbackIssues handles a response with no recoverable JSON. Prose that
// reads compliant means a clean section; anything else becomes one medium
// issue quoting a preview of the raw text for manual review.
func (v *Validator) fallbackIssues(section, raw string) []model.Issue {
	lower := strings.ToLower(raw)
	for _, marker := range compliantMarkers {
		if strings.Contains(lower, marker) {
			return nil
		}
	}

	preview := raw
	if len(preview) > maxPreview {
		// Back off to a rune boundary so the quoted preview stays valid UTF-8.
		cut := maxPreview
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut]
	}

	return []model.Issue{{
		Section:             section,
		IssueNumber:         1,
		Description:         fmt.Sprintf("JSON parsing failed. Raw response indicates potential issues. Response preview: %s...", preview),
		Severity:            model.SeverityMedium,
		SuggestedResolution: "Review the section manually as automated parsing failed",
	}}
}

func buildPrompt(rule model.Rule, content string) string {
	var questions strings.Builder
	for i, q := range rule.Questions {
		questions.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert contract reviewer tasked with validating a Statement of Work (SOW) for completeness, clarity, consistency, and accuracy.\n")
	fmt.Fprintf(&b, "You are validating the %s section of a Statement of Work (SOW). You have been provided document content %s, %s and %s as validation criteria for validating the section.\n\n", rule.Section, content, questions.String(), rule.SeverityPolicy)
	fmt.Fprintf(&b, "### Validate %s as per %s.\n\n", rule.Section, questions.String())
	fmt.Fprintf(&b, "### If you do not find relevant document content for %s, then assign severity according to the provided %s and you should give output in JSON format as below.\n", rule.Section, rule.SeverityPolicy)
	fmt.Fprintf(&b, `{
    "sow_validation": [
        {
            "section": "%s",
            "description": "Brief specific issue description",
            "severity": "high/medium/low according to the %s",
            "suggested_resolution": "Specific action needed",
            "issue_number": 1
        }
    ]
}

`, rule.Section, rule.SeverityPolicy)
	b.WriteString(`CHECKBOX VALIDATION RULES(if any):
- "Yes☒No☐" or "Yes X No ☐" (Yes checked, No unchecked) = VALID
- "Yes☐No☒" or "Yes ☐ No X" (Yes unchecked, No checked) = VALID
- "Yes☒No☒" or "Yes X No X" (both checked) = ISSUE
- "Yes☐No☐" or "Yes ☐ No ☐" (neither checked) = ISSUE
- If checkboxes are missing, still Issue

INSTRUCTIONS:
1. Only flag actual issues, not missing optional information
2. For checkbox sections: Only report issues if both boxes are checked or both are empty
3. For compensation: Only flag if amounts are contradictory or completely missing
4. Be objective and focus on clear violations of the criteria
5. If content appears compliant, return empty validation array
6. STRICTLY validate the section based on provided questions and rules, DO NOT MAKE YOUR OWN ASSUMPTIONS/QUESTIONS TO VALIDATE.

REQUIRED JSON FORMAT (respond with ONLY this JSON, no other text):
`)
	fmt.Fprintf(&b, `{
    "sow_validation": [
        {
            "section": "%s",
            "description": "Brief specific issue description",
            "severity": "high/medium/low",
            "suggested_resolution": "Specific action needed",
            "issue_number": 1
        }
    ]
}

If no issues found, return: {"sow_validation": []}

JSON ONLY - NO OTHER TEXT:`, rule.Section)
	return b.String()
}
