// Package resolve maps catalog section names to the section identifiers
// actually present in the search index for one document.
package resolve

import (
	"strings"

	"github.com/rpatil/sowcheck/internal/model"
)

// aliases widens matching for catalog names whose index counterparts use
// different tokens. A catalog name matches an index section mentioning any
// of its alias tokens.
var aliases = map[string][]string{
	"PII or PHI":            {"pii", "phi"},
	"Financial Information": {"financial"},
}

// Resolve builds the section mapping for one document. For each catalog
// section name, the first index section (in index enumeration order) whose
// identifier contains the catalog name as a case-insensitive substring, or
// vice versa, wins; alias tokens are checked per index section in the same
// pass. This is a deliberate non-scoring heuristic: ties are not re-ranked.
// Catalog sections with no match are listed as unresolved, not errored.
func Resolve(indexSections, catalogSections []string) *model.SectionMapping {
	mapping := &model.SectionMapping{
		Targets: make(map[string]string, len(catalogSections)),
	}

	for _, name := range catalogSections {
		nameLower := strings.ToLower(name)
		tokens := aliases[name]

		matched := ""
		for _, id := range indexSections {
			idLower := strings.ToLower(id)
			if strings.Contains(idLower, nameLower) || strings.Contains(nameLower, idLower) {
				matched = id
				break
			}
			if containsAny(idLower, tokens) {
				matched = id
				break
			}
		}

		if matched != "" {
			mapping.Targets[name] = matched
		} else {
			mapping.Unresolved = append(mapping.Unresolved, name)
		}
	}

	return mapping
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
