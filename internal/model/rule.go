package model

import "strings"

// Variant identifies the SOW sub-type that selects which rule catalog applies.
type Variant string

const (
	VariantTimeAndMaterials Variant = "T&M"
	VariantFixedFee         Variant = "Fixed-Fee"
	VariantUnknown          Variant = "unknown"
)

// VariantFromLabel maps a free-form type label (possibly straight from the
// oracle) to a known variant. Unrecognized labels map to VariantUnknown.
func VariantFromLabel(label string) Variant {
	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "T&M"), strings.Contains(upper, "TIME"), strings.Contains(upper, "MATERIAL"):
		return VariantTimeAndMaterials
	case strings.Contains(upper, "FIXED"), strings.Contains(upper, "FEE"):
		return VariantFixedFee
	default:
		return VariantUnknown
	}
}

// Rule is one logical section's validation spec: what to retrieve, what to
// ask, and how severe the section's absence is. Rules are catalog-authoring
// data and are never mutated at runtime.
type Rule struct {
	Section        string   `json:"section"`
	RetrievalQuery string   `json:"retrieval_query"`
	Questions      []string `json:"validation_questions"`
	SeverityPolicy string   `json:"severity_policy"`
}

// Classification is the result of SOW type identification. It is computed
// once per run and cached on the run state.
type Classification struct {
	Label         string  `json:"label"`   // raw label, e.g. "T&M" or "unknown"
	Variant       Variant `json:"variant"` // normalized variant
	LowConfidence bool    `json:"low_confidence,omitempty"`
}

// UnknownClassification marks a document whose type could not be determined.
func UnknownClassification() Classification {
	return Classification{
		Label:         string(VariantUnknown),
		Variant:       VariantUnknown,
		LowConfidence: true,
	}
}
