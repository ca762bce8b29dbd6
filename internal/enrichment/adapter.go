// Package enrichment fills missing line item attributes from vendor catalog sources.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

//go:generate mockery --name Source --filename source.go

// Source searches vendor product catalog.
type Source interface {
	// Search returns variants found for term. No results is not an error.
	Search(ctx context.Context, vendor models.Vendor, term string) ([]models.Variant, error)
	// Kind returns data source stored with entries enriched by this source.
	Kind() models.DataSource
}

// Adapter starts enrichment sessions.
type Adapter interface {
	// Session returns new Session for one processing run of vendor.
	Session(vendor models.Vendor) Session
}

// Session enriches items of single processing run. It is safe for concurrent use.
type Session interface {
	Enrich(ctx context.Context, item models.LineItem) models.EnrichmentResult
}

// DefaultMinConfidence is minimal score of accepted variant.
const DefaultMinConfidence = 50

// SearchAdapter enriches items by searching Source with relaxed term variations.
type SearchAdapter struct {
	source        Source
	minConfidence int
	logger        *zerolog.Logger
}

// NewSearchAdapter returns new SearchAdapter.
func NewSearchAdapter(source Source, minConfidence int, logger *zerolog.Logger) *SearchAdapter {
	return &SearchAdapter{
		source:        source,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

func (a *SearchAdapter) Session(vendor models.Vendor) Session {
	return &searchSession{
		adapter: a,
		vendor:  vendor,
		results: make(map[string]searchResult),
	}
}

type searchResult struct {
	variants []models.Variant
	err      error
}

// searchSession caches search results by term for the lifetime of a run.
type searchSession struct {
	adapter *SearchAdapter
	vendor  models.Vendor

	mu      sync.Mutex
	results map[string]searchResult
	group   singleflight.Group
}

// Enrich tries term variations until one returns any variant, then accepts best variant
// scoring at least minimal confidence.
func (s *searchSession) Enrich(ctx context.Context, item models.LineItem) models.EnrichmentResult {
	kind := s.adapter.source.Kind()

	var lastErr error
	for _, term := range Terms(s.vendor, item) {
		variants, err := s.search(ctx, term)
		if err != nil {
			lastErr = err
			continue
		}
		if len(variants) == 0 {
			continue
		}

		best, score := BestMatch(item, variants)
		if score < s.adapter.minConfidence {
			s.adapter.logger.Debug().
				Str("term", term).
				Int("score", score).
				Msg("best variant below confidence threshold")
			return models.EnrichmentResult{Score: score, DataSource: kind}
		}

		return models.EnrichmentResult{
			Found:      true,
			Variant:    best,
			Score:      score,
			DataSource: kind,
		}
	}

	return models.EnrichmentResult{DataSource: kind, Err: lastErr}
}

// search returns variants of term, sharing one source call between concurrent callers.
// Results are cached for the session unless the call was cut short by its caller's context.
func (s *searchSession) search(ctx context.Context, term string) ([]models.Variant, error) {
	s.mu.Lock()
	cached, ok := s.results[term]
	s.mu.Unlock()
	if ok {
		return cached.variants, cached.err
	}

	v, _, shared := s.group.Do(term, func() (interface{}, error) {
		res := s.fetch(ctx, term)
		if !interrupted(ctx, res.err) {
			s.mu.Lock()
			s.results[term] = res
			s.mu.Unlock()
		}
		return res, nil
	})

	res := v.(searchResult)
	// shared call failed on context of another item
	if shared && ctx.Err() == nil && interrupted(ctx, res.err) {
		res = s.fetch(ctx, term)
	}
	return res.variants, res.err
}

func (s *searchSession) fetch(ctx context.Context, term string) searchResult {
	variants, err := s.adapter.source.Search(ctx, s.vendor, term)
	if err != nil {
		err = fmt.Errorf("can't search %q: %w", term, err)
	}
	return searchResult{variants: variants, err: err}
}

func interrupted(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// NoneAdapter is adapter of vendors without enrichment source.
type NoneAdapter struct{}

func (NoneAdapter) Session(models.Vendor) Session {
	return noneSession{}
}

type noneSession struct{}

func (noneSession) Enrich(context.Context, models.LineItem) models.EnrichmentResult {
	return models.EnrichmentResult{}
}
