package model

import "time"

// Report is the whole-document validation result. Sections carries every
// catalog section considered, in catalog order, so a renderer can
// distinguish "zero issues" from "not evaluated".
type Report struct {
	DocumentID     string         `json:"document_id"`
	Variant        Variant        `json:"variant"`
	Classification Classification `json:"classification"`
	FellBack       bool           `json:"catalog_fallback,omitempty"` // true when an unknown type defaulted to T&M
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    time.Time      `json:"completed_at"`

	Sections []string `json:"sections"`
	Issues   []Issue  `json:"issues"`

	Warnings []string `json:"warnings,omitempty"`
}

// Phase is the orchestrator's position in a validation run. Transitions are
// one-directional; only Reset returns to PhaseIdle.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseTypeClassifying Phase = "type_classifying"
	PhaseValidating      Phase = "validating"
	PhaseComplete        Phase = "complete"
	PhaseError           Phase = "error"
)

// RunState is the caller-owned state of one validation run. All run-scoped
// state lives here rather than in any ambient session, so re-running a
// document is an explicit Reset followed by a fresh Run.
type RunState struct {
	Phase          Phase
	Classification *Classification
	Mapping        *SectionMapping
	Report         *Report
	Warnings       []string
}

// NewRunState returns an idle run state ready to be passed to the orchestrator.
func NewRunState() *RunState {
	return &RunState{Phase: PhaseIdle}
}

// Reset discards all cached classification, mapping and report state and
// returns the run to idle. A run is never resumed mid-state.
func (s *RunState) Reset() {
	s.Phase = PhaseIdle
	s.Classification = nil
	s.Mapping = nil
	s.Report = nil
	s.Warnings = nil
}

// Warn records an observable non-fatal condition on the run.
func (s *RunState) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}
