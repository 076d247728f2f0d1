package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/report"
)

// Renderer writes validation reports as JSON, Markdown, or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a per-section Markdown document. With
// highOnly set, sections whose highest severity is below high are collapsed
// to their summary line.
func (r *Renderer) RenderMarkdown(rep *model.Report, path string, highOnly bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# SOW Validation Report: %s\n\n", rep.DocumentID)
	fmt.Fprintf(&b, "**SOW Type:** %s", rep.Variant)
	if rep.FellBack {
		b.WriteString(" (defaulted, type could not be determined)")
	}
	b.WriteString("\n\n")

	high, medium, low := report.DocumentTotals(rep)
	fmt.Fprintf(&b, "**Issues:** %d high, %d medium, %d low\n\n", high, medium, low)

	if len(rep.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Sections\n\n")
	for _, section := range rep.Sections {
		issues := report.IssuesForSection(rep, section)
		count, highest, label := report.Summarize(issues)

		if count == 0 {
			fmt.Fprintf(&b, "### %s ✅\n\n", section)
			continue
		}

		header := section
		if highest == model.SeverityHigh {
			header += " ❗"
		}
		fmt.Fprintf(&b, "### %s (%s)\n\n", header, label)

		if highOnly && highest != model.SeverityHigh {
			continue
		}

		var resolutions []string
		for _, issue := range issues {
			fmt.Fprintf(&b, "- %s %s\n", severityLabel(issue.Severity), issue.Description)
			if issue.SuggestedResolution != "" && !containsString(resolutions, issue.SuggestedResolution) {
				resolutions = append(resolutions, issue.SuggestedResolution)
			}
		}
		if len(resolutions) > 0 {
			fmt.Fprintf(&b, "\n**Resolution:** %s\n", strings.Join(resolutions, " "))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "Generated by sowcheck at %s\n", rep.CompletedAt.Format("2006-01-02 15:04:05 UTC"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(rep *model.Report) {
	high, medium, low := report.DocumentTotals(rep)

	fmt.Println()
	fmt.Printf("Document:  %s\n", rep.DocumentID)
	fmt.Printf("SOW Type:  %s", rep.Variant)
	if rep.FellBack {
		fmt.Print(" (defaulted)")
	}
	fmt.Println()
	fmt.Printf("Issues:    %d high / %d medium / %d low\n", high, medium, low)
	fmt.Println()

	for _, section := range rep.Sections {
		issues := report.IssuesForSection(rep, section)
		count, highest, label := report.Summarize(issues)
		if count == 0 {
			fmt.Printf("  ✅ %s\n", section)
			continue
		}
		fmt.Printf("  %s %s (%s)\n", severityIcon(highest), section, label)
	}
	fmt.Println()

	if len(rep.Warnings) > 0 {
		fmt.Printf("Warnings:  %d (see report for details)\n", len(rep.Warnings))
		fmt.Println()
	}
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityHigh:
		return "🔴"
	case model.SeverityMedium:
		return "🟡"
	case model.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func severityLabel(s model.Severity) string {
	switch s {
	case model.SeverityHigh:
		return "🔴 **High**"
	case model.SeverityMedium:
		return "🟡 **Medium**"
	case model.SeverityLow:
		return "🟢 **Low**"
	default:
		return "⚪ **Unknown**"
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
