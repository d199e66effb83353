package category

import (
	"stock-regul/feature/stock/models"
)

// ReflexCategorizer maps a Reflex quality code to a category through a
// lookup table. Codes absent from the table fall to the
// UNMAPPED_REFLEX sentinel rather than failing the run.
type ReflexCategorizer struct {
	mapping map[string]string
}

// NewReflexCategorizer creates a categorizer from a quality-to-category
// lookup table.
func NewReflexCategorizer(mapping map[string]string) *ReflexCategorizer {
	m := make(map[string]string, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}
	return &ReflexCategorizer{mapping: m}
}

// Apply returns a copy of lines with Category set on every line.
func (c *ReflexCategorizer) Apply(lines []models.ReflexLine) []models.ReflexLine {
	out := make([]models.ReflexLine, len(lines))
	for i, l := range lines {
		cat, ok := c.mapping[l.Quality]
		if !ok {
			cat = models.CategoryUnmappedReflex
		}
		l.Category = cat
		out[i] = l
	}
	return out
}

// M3Rule maps lines whose depot is in DepotIn and whose location equals
// LocationEq to Category. Rules are evaluated in order; the first match
// wins.
type M3Rule struct {
	DepotIn    []string `mapstructure:"depot_in"`
	LocationEq string   `mapstructure:"location_eq"`
	Category   string   `mapstructure:"category"`
}

// M3Categorizer classifies M3 lines through an ordered rule list.
// Lines matched by no rule fall to the UNMAPPED_M3 sentinel.
type M3Categorizer struct {
	rules     []M3Rule
	depotSets []map[string]struct{}
}

// NewM3Categorizer creates a categorizer from an ordered rule list.
func NewM3Categorizer(rules []M3Rule) *M3Categorizer {
	sets := make([]map[string]struct{}, len(rules))
	for i, r := range rules {
		set := make(map[string]struct{}, len(r.DepotIn))
		for _, d := range r.DepotIn {
			set[d] = struct{}{}
		}
		sets[i] = set
	}
	return &M3Categorizer{rules: rules, depotSets: sets}
}

// Apply returns a copy of lines with Category set on every line.
func (c *M3Categorizer) Apply(lines []models.M3Line) []models.M3Line {
	out := make([]models.M3Line, len(lines))
	for i, l := range lines {
		l.Category = c.categorize(l)
		out[i] = l
	}
	return out
}

func (c *M3Categorizer) categorize(l models.M3Line) string {
	for i, r := range c.rules {
		if _, ok := c.depotSets[i][l.Depot]; !ok {
			continue
		}
		if l.Location == r.LocationEq {
			return r.Category
		}
	}
	return models.CategoryUnmappedM3
}
