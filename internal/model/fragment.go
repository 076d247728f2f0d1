package model

// ContentFragment is one retrieved unit of document text. Fragments are
// owned by the retrieval call that produced them and are not persisted
// beyond the validation pass that consumes them.
type ContentFragment struct {
	Text          string `json:"chunk"`
	SourceSection string `json:"section_name"`
}

// SectionMapping associates catalog section names with the concrete section
// identifiers found in the index for one document. It is built once per run
// and read-only afterward; unresolved sections are listed, not errored.
type SectionMapping struct {
	Targets    map[string]string `json:"targets"`
	Unresolved []string          `json:"unresolved,omitempty"`
}

// Target returns the index section id resolved for a catalog section name.
func (m *SectionMapping) Target(section string) (string, bool) {
	if m == nil {
		return "", false
	}
	id, ok := m.Targets[section]
	return id, ok
}
