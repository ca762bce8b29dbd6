package enrichment

import (
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/samber/lo"
)

// Terms returns search term variations for item, from most to least specific:
// model, brand with model, brand alias with model and brand code expansion with model.
func Terms(vendor models.Vendor, item models.LineItem) []string {
	model := strings.TrimSpace(item.Model)
	brand := strings.TrimSpace(item.Brand)

	terms := []string{model, join(brand, model)}

	if alias, ok := lookup(vendor.Enrichment.BrandAliases, brand); ok {
		terms = append(terms, join(alias, model))
	}

	expansions := vendor.Enrichment.PrefixExpansions
	if full, ok := lookup(expansions, brand); ok {
		terms = append(terms, join(full, model))
	}
	if code, rest, found := strings.Cut(model, " "); found {
		if full, ok := lookup(expansions, code); ok {
			terms = append(terms, join(full, rest))
		}
	}

	return lo.Uniq(lo.Filter(terms, func(t string, _ int) bool { return t != "" }))
}

// lookup finds value by folded key.
func lookup(values map[string]string, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for k, v := range values {
		if fold.Equal(k, key) {
			return v, true
		}
	}
	return "", false
}

func join(parts ...string) string {
	return strings.Join(lo.Compact(parts), " ")
}
