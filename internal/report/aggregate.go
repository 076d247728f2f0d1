// Package report aggregates per-section issues into summaries and rollups.
package report

import (
	"fmt"

	"github.com/rpatil/sowcheck/internal/model"
)

// IssuesForSection returns the issues attributed to a section, by exact name
// match, preserving their order in the report.
func IssuesForSection(r *model.Report, section string) []model.Issue {
	if r == nil {
		return nil
	}
	var out []model.Issue
	for _, issue := range r.Issues {
		if issue.Section == section {
			out = append(out, issue)
		}
	}
	return out
}

// Summarize rolls a section's issues up to a count, the highest severity
// present, and a human-readable label. No issues means a zero count, no
// severity and an empty label.
func Summarize(issues []model.Issue) (int, model.Severity, string) {
	if len(issues) == 0 {
		return 0, model.SeverityNone, ""
	}

	highest := model.SeverityNone
	for _, issue := range issues {
		if issue.Severity.Rank() > highest.Rank() {
			highest = issue.Severity
		}
	}

	label := fmt.Sprintf("%d Points to review", len(issues))
	if len(issues) == 1 {
		label = "1 Point to review"
	}

	return len(issues), highest, label
}

// DocumentTotals counts the report's issues per severity level.
func DocumentTotals(r *model.Report) (high, medium, low int) {
	if r == nil {
		return 0, 0, 0
	}
	for _, issue := range r.Issues {
		switch issue.Severity {
		case model.SeverityHigh:
			high++
		case model.SeverityMedium:
			medium++
		case model.SeverityLow:
			low++
		}
	}
	return high, medium, low
}
