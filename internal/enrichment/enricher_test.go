package enrichment_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/enrichment"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter resolves items with enrich func and tracks concurrency.
type fakeAdapter struct {
	enrich func(ctx context.Context, item models.LineItem) models.EnrichmentResult

	mu       sync.Mutex
	running  int
	peak     int
	sessions int
	calls    atomic.Int32
}

func (f *fakeAdapter) Session(models.Vendor) enrichment.Session {
	f.mu.Lock()
	f.sessions++
	f.mu.Unlock()
	return f
}

func (f *fakeAdapter) Enrich(ctx context.Context, item models.LineItem) models.EnrichmentResult {
	f.calls.Add(1)
	f.mu.Lock()
	f.running++
	f.peak = max(f.peak, f.running)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.running--
		f.mu.Unlock()
	}()

	return f.enrich(ctx, item)
}

func found(item models.LineItem) models.EnrichmentResult {
	price := decimal.RequireFromString("42.50")
	return models.EnrichmentResult{
		Found: true,
		Variant: &models.Variant{
			UPC:            "UPC-" + item.Model,
			WholesalePrice: &price,
			EyeSize:        "54",
		},
		Score:      80,
		DataSource: models.DataSourceAPI,
	}
}

func misses(names ...string) []models.LineItem {
	items := make([]models.LineItem, 0, len(names))
	for _, m := range names {
		items = append(items, models.LineItem{Model: m, NeedsEnrichment: true})
	}
	return items
}

func apiVendor() *models.Vendor {
	return &models.Vendor{Code: "luxottica", Name: "Luxottica", Enrichment: models.Enrichment{Strategy: models.StrategyAPI}}
}

func TestUnitEnrich(t *testing.T) {
	nopLog := zerolog.Nop()
	adapter := &fakeAdapter{
		enrich: func(ctx context.Context, item models.LineItem) models.EnrichmentResult {
			switch item.Model {
			case "BROKEN":
				return models.EnrichmentResult{Err: assert.AnError, DataSource: models.DataSourceAPI}
			case "UNKNOWN":
				return models.EnrichmentResult{DataSource: models.DataSourceAPI}
			default:
				return found(item)
			}
		},
	}
	enricher := enrichment.NewEnricher(
		map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter},
		&nopLog,
		enrichment.WithBatchPause(0),
	)

	items := misses("RB2140", "BROKEN", "UNKNOWN")
	items = append(items, models.LineItem{Model: "CACHED", Cached: true, UPC: "123"})

	out := enricher.Enrich(context.Background(), apiVendor(), items)

	require.Len(t, out.Items, 4)
	assert.Equal(t, 1, out.Enriched)
	assert.Equal(t, 1, out.Failed)
	assert.EqualValues(t, 3, adapter.calls.Load(), "complete cache hit should not be enriched")
	assert.Equal(t, 1, adapter.sessions)

	enriched := out.Items[0]
	assert.True(t, enriched.Enriched)
	assert.False(t, enriched.NeedsEnrichment)
	assert.False(t, enriched.CacheIncomplete)
	assert.True(t, enriched.APIVerified)
	assert.Equal(t, models.DataSourceAPI, enriched.DataSource)
	assert.Equal(t, "UPC-RB2140", enriched.UPC)
	assert.Equal(t, "54", enriched.EyeSize)
	assert.Equal(t, 80, enriched.ConfidenceScore)

	for _, ix := range []int{1, 2} {
		assert.False(t, out.Items[ix].Enriched)
		assert.True(t, out.Items[ix].CacheIncomplete)
		assert.Empty(t, out.Items[ix].UPC)
	}

	assert.Equal(t, items[3], out.Items[3])
	assert.False(t, items[0].Enriched, "input items should not be modified")
}

func TestUnitEnrichKeepsParsedAttributes(t *testing.T) {
	nopLog := zerolog.Nop()
	adapter := &fakeAdapter{enrich: func(_ context.Context, item models.LineItem) models.EnrichmentResult {
		return found(item)
	}}
	enricher := enrichment.NewEnricher(map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter}, &nopLog)

	items := []models.LineItem{{Model: "RB2140", EyeSize: "50", NeedsEnrichment: true}}
	out := enricher.Enrich(context.Background(), apiVendor(), items)

	assert.Equal(t, "50", out.Items[0].EyeSize)
	assert.Equal(t, "UPC-RB2140", out.Items[0].UPC)
}

func TestUnitEnrichBatches(t *testing.T) {
	nopLog := zerolog.Nop()
	adapter := &fakeAdapter{enrich: func(_ context.Context, item models.LineItem) models.EnrichmentResult {
		time.Sleep(5 * time.Millisecond)
		return found(item)
	}}
	enricher := enrichment.NewEnricher(
		map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter},
		&nopLog,
		enrichment.WithBatchSize(3),
		enrichment.WithBatchPause(time.Millisecond),
	)

	out := enricher.Enrich(context.Background(), apiVendor(), misses("A1", "A2", "A3", "A4", "A5", "A6", "A7"))

	assert.Equal(t, 7, out.Enriched)
	assert.EqualValues(t, 7, adapter.calls.Load())
	assert.LessOrEqual(t, adapter.peak, 3)
	assert.Greater(t, adapter.peak, 0)
}

func TestUnitEnrichItemTimeout(t *testing.T) {
	nopLog := zerolog.Nop()
	adapter := &fakeAdapter{enrich: func(ctx context.Context, item models.LineItem) models.EnrichmentResult {
		if item.Model == "SLOW" {
			<-ctx.Done()
			return models.EnrichmentResult{Err: ctx.Err()}
		}
		return found(item)
	}}
	enricher := enrichment.NewEnricher(
		map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter},
		&nopLog,
		enrichment.WithItemTimeout(10*time.Millisecond),
	)

	out := enricher.Enrich(context.Background(), apiVendor(), misses("SLOW", "FAST"))

	assert.Equal(t, 1, out.Enriched)
	assert.Equal(t, 1, out.Failed)
	assert.True(t, out.Items[0].CacheIncomplete)
	assert.True(t, out.Items[1].Enriched)
}

func TestUnitEnrichCancelledBetweenBatches(t *testing.T) {
	nopLog := zerolog.Nop()
	ctx, cancel := context.WithCancel(context.Background())
	adapter := &fakeAdapter{enrich: func(_ context.Context, item models.LineItem) models.EnrichmentResult {
		cancel()
		return found(item)
	}}
	enricher := enrichment.NewEnricher(
		map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter},
		&nopLog,
		enrichment.WithBatchSize(1),
		enrichment.WithBatchPause(time.Second),
	)

	out := enricher.Enrich(ctx, apiVendor(), misses("A1", "A2"))

	assert.EqualValues(t, 1, adapter.calls.Load())
	assert.Equal(t, 1, out.Enriched)
	assert.True(t, out.Items[1].CacheIncomplete)
}

func TestUnitEnrichWithoutSource(t *testing.T) {
	nopLog := zerolog.Nop()
	adapter := &fakeAdapter{enrich: func(_ context.Context, item models.LineItem) models.EnrichmentResult {
		return found(item)
	}}
	enricher := enrichment.NewEnricher(map[models.Strategy]enrichment.Adapter{models.StrategyAPI: adapter}, &nopLog)

	tests := map[string]*models.Vendor{
		"unknown vendor":   nil,
		"none strategy":    {Code: "marchon", Enrichment: models.Enrichment{Strategy: models.StrategyNone}},
		"missing strategy": {Code: "other"},
	}

	for name, vendor := range tests {
		t.Run(name, func(t *testing.T) {
			out := enricher.Enrich(context.Background(), vendor, misses("A1", "A2"))

			assert.Zero(t, out.Enriched)
			assert.Zero(t, out.Failed)
			for _, item := range out.Items {
				assert.True(t, item.CacheIncomplete)
				assert.False(t, item.Enriched)
			}
		})
	}
	assert.Zero(t, adapter.calls.Load())
}
