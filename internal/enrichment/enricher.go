package enrichment

import (
	"context"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize   = 5
	defaultBatchPause  = 500 * time.Millisecond
	defaultItemTimeout = 12 * time.Second
)

// Option is custom configuration of Enricher.
type Option func(e *Enricher)

// Outcome is result of enriching items of one email.
type Outcome struct {
	Items    []models.LineItem
	Enriched int
	Failed   int
}

// Enricher dispatches enrichment of items to vendor adapter in bounded batches.
type Enricher struct {
	adapters    map[models.Strategy]Adapter
	logger      *zerolog.Logger
	batchSize   int
	batchPause  time.Duration
	itemTimeout time.Duration
}

// NewEnricher returns new Enricher. Vendors whose strategy has no adapter are enriched with NoneAdapter.
func NewEnricher(adapters map[models.Strategy]Adapter, logger *zerolog.Logger, ops ...Option) *Enricher {
	enr := &Enricher{
		adapters:    adapters,
		logger:      logger,
		batchSize:   defaultBatchSize,
		batchPause:  defaultBatchPause,
		itemTimeout: defaultItemTimeout,
	}

	for _, op := range ops {
		op(enr)
	}

	return enr
}

// Enrich enriches cache misses and incomplete hits. Items are copied, input slice is not modified.
// Failure of one item never stops others, failed and not found items keep parsed data and are flagged incomplete.
func (e *Enricher) Enrich(ctx context.Context, vendor *models.Vendor, items []models.LineItem) Outcome {
	out := Outcome{Items: append([]models.LineItem(nil), items...)}

	pending := lo.Filter(lo.Range(len(items)), func(ix int, _ int) bool {
		return items[ix].NeedsEnrichment || items[ix].CacheIncomplete
	})
	if len(pending) == 0 {
		return out
	}

	if vendor == nil {
		lo.ForEach(pending, func(ix int, _ int) { out.Items[ix].CacheIncomplete = true })
		return out
	}

	session := e.adapter(vendor.Enrichment.Strategy).Session(*vendor)
	results := make([]models.EnrichmentResult, len(items))

	for bx, batch := range lo.Chunk(pending, e.batchSize) {
		if bx > 0 && !e.pause(ctx) {
			break
		}

		var eg errgroup.Group
		for _, ix := range batch {
			ix := ix
			eg.Go(func() error {
				itemCtx, cancel := context.WithTimeout(ctx, e.itemTimeout)
				defer cancel()

				results[ix] = session.Enrich(itemCtx, items[ix])
				return nil
			})
		}
		_ = eg.Wait()
	}

	for _, ix := range pending {
		res := results[ix]
		item := &out.Items[ix]

		switch {
		case res.Found:
			apply(item, res)
			out.Enriched++
		case res.Err != nil:
			item.CacheIncomplete = true
			out.Failed++
			e.logger.Warn().
				Err(res.Err).
				Str("vendor", vendor.Name).
				Str("model", item.Model).
				Msg("enrichment gave up")
		default:
			item.CacheIncomplete = true
		}
	}

	e.logger.Debug().
		Str("vendor", vendor.Name).
		Int("pending", len(pending)).
		Int("enriched", out.Enriched).
		Int("failed", out.Failed).
		Msg("enrichment finished")

	return out
}

func (e *Enricher) adapter(strategy models.Strategy) Adapter {
	if a, ok := e.adapters[strategy]; ok {
		return a
	}
	return NoneAdapter{}
}

// pause waits between batches. Returns false when ctx is done.
func (e *Enricher) pause(ctx context.Context) bool {
	if e.batchPause <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(e.batchPause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// apply copies variant attributes the parsed item doesn't have.
func apply(item *models.LineItem, res models.EnrichmentResult) {
	v := res.Variant

	fill(&item.ColorCode, v.ColorCode)
	fill(&item.EyeSize, v.EyeSize)
	fill(&item.Bridge, v.Bridge)
	fill(&item.Temple, v.Temple)
	fill(&item.UPC, v.UPC)
	fill(&item.SKU, v.SKU)
	fill(&item.Material, v.Material)
	if item.WholesalePrice == nil {
		item.WholesalePrice = v.WholesalePrice
	}
	if item.MSRP == nil {
		item.MSRP = v.MSRP
	}
	if v.InStock != nil {
		item.InStock = v.InStock
	}

	item.ConfidenceScore = res.Score
	item.APIVerified = res.DataSource == models.DataSourceAPI
	item.DataSource = res.DataSource
	item.Enriched = true
	item.NeedsEnrichment = false
	item.CacheIncomplete = item.UPC == "" || item.WholesalePrice == nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

// WithBatchSize sets number of items enriched concurrently.
func WithBatchSize(size int) Option {
	return func(e *Enricher) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// WithBatchPause sets pause between batches.
func WithBatchPause(d time.Duration) Option {
	return func(e *Enricher) {
		e.batchPause = d
	}
}

// WithItemTimeout sets timeout of enriching single item.
func WithItemTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.itemTimeout = d
		}
	}
}
