// Package catalog holds the versioned validation rule sets, one per SOW
// variant. Catalogs are compiled-in data: they are never mutated at runtime
// and their section order is the display and iteration order for a run.
package catalog

import "github.com/rpatil/sowcheck/internal/model"

// Catalog is an ordered, read-only rule set for one SOW variant.
type Catalog struct {
	Variant  model.Variant
	Sections []string
	rules    map[string]model.Rule
}

func build(variant model.Variant, rules []model.Rule) *Catalog {
	c := &Catalog{
		Variant:  variant,
		Sections: make([]string, 0, len(rules)),
		rules:    make(map[string]model.Rule, len(rules)),
	}
	for _, r := range rules {
		c.Sections = append(c.Sections, r.Section)
		c.rules[r.Section] = r
	}
	return c
}

// Rule returns the rule for a section name.
func (c *Catalog) Rule(section string) (model.Rule, bool) {
	r, ok := c.rules[section]
	return r, ok
}

// Rules returns all rules in catalog order.
func (c *Catalog) Rules() []model.Rule {
	out := make([]model.Rule, 0, len(c.Sections))
	for _, name := range c.Sections {
		out = append(out, c.rules[name])
	}
	return out
}

var (
	timeAndMaterials = build(model.VariantTimeAndMaterials, tmRules)
	fixedFee         = build(model.VariantFixedFee, fixedFeeRules)
)

// Default returns the catalog used when the variant cannot be determined.
func Default() *Catalog {
	return timeAndMaterials
}

// ForVariant returns the catalog for a variant. Unrecognized variants fall
// back to the default (T&M) catalog; the second return value reports that
// fallback so callers can surface it rather than default silently.
func ForVariant(v model.Variant) (*Catalog, bool) {
	switch v {
	case model.VariantTimeAndMaterials:
		return timeAndMaterials, false
	case model.VariantFixedFee:
		return fixedFee, false
	default:
		return Default(), true
	}
}

// Severity policy tags shared across sections.
const (
	mandatoryHigh = "This section is mandatory. If it is not present in the document, assign high severity."
	optionalLow   = "This section is optional. If it is not present in the document, assign low severity."
)
