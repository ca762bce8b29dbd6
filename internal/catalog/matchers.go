package catalog

import (
	"context"

	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// Match tiers.
const (
	TierExact   = "exact"
	TierEyeSize = "eye_size"
	TierUPC     = "upc"
	TierFuzzy   = "fuzzy"
)

// fuzzyConfidence caps confidence of size-less matches, they may point to another size variant.
const fuzzyConfidence = 40

// matcher is single lookup strategy. Skipped matchers return nil entry and nil error.
type matcher struct {
	tier string
	// incomplete marks hits of this tier as needing re-enrichment
	incomplete bool
	find       func(ctx context.Context, s Store, vendorID string, item models.LineItem) (*models.CatalogEntry, error)
}

func defaultMatchers() []matcher {
	return []matcher{
		{tier: TierExact, find: findExact},
		{tier: TierEyeSize, find: findByEyeSize},
		{tier: TierUPC, find: findByUPC},
		{tier: TierFuzzy, incomplete: true, find: findFuzzy},
	}
}

func findExact(ctx context.Context, s Store, vendorID string, item models.LineItem) (*models.CatalogEntry, error) {
	if item.Model == "" {
		return nil, nil
	}
	return s.FindExact(ctx, vendorID, item.Model, item.Color, item.EyeSize)
}

func findByEyeSize(ctx context.Context, s Store, vendorID string, item models.LineItem) (*models.CatalogEntry, error) {
	eye := frame.EyeToken(item.Size)
	if eye == "" {
		eye = item.EyeSize
	}
	if item.Model == "" || eye == "" {
		return nil, nil
	}
	return s.FindByEyeSize(ctx, vendorID, item.Model, item.Color, eye)
}

func findByUPC(ctx context.Context, s Store, vendorID string, item models.LineItem) (*models.CatalogEntry, error) {
	if item.UPC == "" {
		return nil, nil
	}
	return s.FindByUPC(ctx, vendorID, item.UPC)
}

func findFuzzy(ctx context.Context, s Store, vendorID string, item models.LineItem) (*models.CatalogEntry, error) {
	if item.Model == "" {
		return nil, nil
	}
	return s.FindFuzzy(ctx, vendorID, item.Model, item.Color)
}
