package model

// Severity classifies a validation finding.
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the precedence of the severity (higher is worse).
// Unknown values rank as none.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Issue is one validation finding for a section. The JSON tags are the wire
// shape the oracle is instructed to emit; synthesized issues use the same
// shape so the report is uniform.
type Issue struct {
	Section             string   `json:"section"`
	IssueNumber         int      `json:"issue_number"`
	Description         string   `json:"description"`
	Severity            Severity `json:"severity"`
	SuggestedResolution string   `json:"suggested_resolution"`
}

// ValidationPayload is the fixed top-level object the oracle must return
// from a section validation prompt. An empty Issues slice means compliant.
type ValidationPayload struct {
	Issues []Issue `json:"sow_validation"`
}

// TypePayload is the fixed top-level object the oracle must return from a
// type identification prompt.
type TypePayload struct {
	SOWType string `json:"sow_type"`
}
