package model

import "fmt"

// RetrievalError reports a search backend failure for one section. It is
// scoped to that section and never fatal to the run.
type RetrievalError struct {
	Section string
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for section %q: %v", e.Section, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// ClassificationError reports an oracle or parse failure during SOW type
// identification. Callers degrade to the unknown variant.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("sow type classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// ValidationParseError reports oracle output for a section that could not be
// parsed even leniently. The validator degrades it to a medium-severity issue.
type ValidationParseError struct {
	Section string
	Preview string
}

func (e *ValidationParseError) Error() string {
	return fmt.Sprintf("could not parse validation output for section %q", e.Section)
}

// OracleTransportError reports a network or auth failure calling the
// completion oracle. The validator degrades it to a high-severity issue.
type OracleTransportError struct {
	Section string
	Err     error
}

func (e *OracleTransportError) Error() string {
	return fmt.Sprintf("oracle call failed for section %q: %v", e.Section, e.Err)
}

func (e *OracleTransportError) Unwrap() error { return e.Err }

// SetupError reports a fundamentally unavailable catalog or index. It is the
// only error class that aborts a whole run; no partial report is published.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup failed (%s): %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }
