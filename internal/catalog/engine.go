package catalog

import (
	"context"
	"errors"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/rs/zerolog"
)

// CheckResult is reconciliation outcome. CacheHits + CacheMisses always equals len(Items).
type CheckResult struct {
	Items       []models.LineItem
	CacheHits   int
	CacheMisses int
}

// Engine reconciles parsed items with catalog using ordered matcher chain.
type Engine struct {
	store    Store
	logger   *zerolog.Logger
	matchers []matcher
}

// NewEngine returns new Engine.
func NewEngine(store Store, logger *zerolog.Logger) *Engine {
	return &Engine{
		store:    store,
		logger:   logger,
		matchers: defaultMatchers(),
	}
}

// Check annotates items with catalog state. Items are copied, input slice is not modified.
// Without vendor every item is a miss. Every hit increments order counter of matched entry.
func (e *Engine) Check(ctx context.Context, vendorID *string, items []models.LineItem) CheckResult {
	res := CheckResult{Items: make([]models.LineItem, len(items))}

	for ix, item := range items {
		var (
			entry *models.CatalogEntry
			m     matcher
		)
		if vendorID != nil {
			entry, m = e.lookup(ctx, *vendorID, item)
		}

		if entry == nil {
			item.Cached = false
			item.NeedsEnrichment = true
			res.Items[ix] = item
			res.CacheMisses++
			continue
		}

		merge(&item, entry, m)
		res.Items[ix] = item
		res.CacheHits++

		if err := e.store.Touch(ctx, entry.ID); err != nil {
			e.logger.Warn().
				Err(err).
				Int("catalogId", entry.ID).
				Msg("can't increment catalog order counter")
		}
	}

	return res
}

// lookup runs matchers in order and returns first hit.
// Store failures are logged and the failing tier is treated as not matched.
func (e *Engine) lookup(ctx context.Context, vendorID string, item models.LineItem) (*models.CatalogEntry, matcher) {
	for _, m := range e.matchers {
		entry, err := m.find(ctx, e.store, vendorID, item)
		if err != nil {
			if !errors.Is(err, platform.ErrNotFound) {
				e.logger.Warn().
					Err(err).
					Str("tier", m.tier).
					Str("model", item.Model).
					Msg("catalog lookup failed")
			}
			continue
		}
		if entry != nil {
			e.logger.Debug().
				Str("tier", m.tier).
				Str("model", item.Model).
				Int("catalogId", entry.ID).
				Msg("catalog hit")
			return entry, m
		}
	}
	return nil, matcher{}
}

// merge fills item attributes missing in parsed data with catalog values.
func merge(item *models.LineItem, entry *models.CatalogEntry, m matcher) {
	item.Cached = true
	item.NeedsEnrichment = false
	item.MatchTier = m.tier
	item.CatalogID = entry.ID
	item.DataSource = entry.DataSource

	fill(&item.ColorCode, entry.ColorCode)
	fill(&item.Material, entry.Material)

	// size-less hit may be another size variant, its upc, prices and stock are not the item's
	if !m.incomplete {
		fill(&item.Bridge, entry.Bridge)
		fill(&item.Temple, entry.Temple)
		fill(&item.UPC, entry.UPC)
		if item.WholesalePrice == nil {
			item.WholesalePrice = entry.WholesaleCost
		}
		if item.MSRP == nil {
			item.MSRP = entry.MSRP
		}
		if item.InStock == nil {
			item.InStock = entry.InStock
		}
	}

	item.APIVerified = entry.DataSource == models.DataSourceAPI
	item.ConfidenceScore = entry.ConfidenceScore
	if m.incomplete && item.ConfidenceScore > fuzzyConfidence {
		item.ConfidenceScore = fuzzyConfidence
	}

	item.CacheIncomplete = m.incomplete || entry.UPC == "" || entry.WholesaleCost == nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
