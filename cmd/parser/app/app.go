// Package app wires frame order parser components.
package app

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/MichalMitros/frame-order-parser/cmd/parser/config"
	"github.com/MichalMitros/frame-order-parser/internal/catalog"
	"github.com/MichalMitros/frame-order-parser/internal/detector"
	"github.com/MichalMitros/frame-order-parser/internal/enrichment"
	"github.com/MichalMitros/frame-order-parser/internal/enrichment/scrape"
	"github.com/MichalMitros/frame-order-parser/internal/enrichment/vendorapi"
	"github.com/MichalMitros/frame-order-parser/internal/fetcher"
	"github.com/MichalMitros/frame-order-parser/internal/pdftext"
	"github.com/MichalMitros/frame-order-parser/internal/pipeline"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/storage"
	"github.com/MichalMitros/frame-order-parser/internal/vendors"
	"github.com/rs/zerolog"
)

// UserAgent is user agent header value used when calling vendor catalogs.
const UserAgent = "frame-order-parser/0.1.0"

// LoadRegistry returns vendor registry from configured file or embedded default registry.
func LoadRegistry(cfg *config.Config) (*detector.Registry, error) {
	if cfg.VendorRegistryPath == "" {
		return detector.DefaultRegistry()
	}
	return detector.LoadRegistryFile(cfg.VendorRegistryPath)
}

// NewProcessor builds processing pipeline backed by postgres.
func NewProcessor(
	cfg *config.Config,
	registry *detector.Registry,
	store storage.Postgres,
	httpClient *http.Client,
	logger *zerolog.Logger,
) (*pipeline.Processor, error) {
	parsers := vendors.DefaultRegistry()
	for _, v := range registry.Active() {
		if _, err := parsers.Get(v.Parser); err != nil {
			return nil, fmt.Errorf("can't use vendor %q: %w", v.Code, err)
		}
	}

	apiClient := vendorapi.NewClient(
		httpClient,
		UserAgent,
		vendorapi.WithRetry(cfg.Enrichment.RetryMax, vendorapi.DefaultRetryWaitMin, vendorapi.DefaultRetryWaitMax),
		vendorapi.WithRateLimit(cfg.Enrichment.RateLimit),
		vendorapi.WithAPIKeys(cfg.Enrichment.APIKeys),
	)
	pageFetcher := fetcher.NewFetcher(
		httpClient,
		UserAgent,
		fetcher.WithRetry(cfg.Enrichment.RetryMax, vendorapi.DefaultRetryWaitMin, vendorapi.DefaultRetryWaitMax),
	)
	scrapeClient := scrape.NewClient(pageFetcher, cfg.Enrichment.RateLimit)

	adapters := map[models.Strategy]enrichment.Adapter{
		models.StrategyAPI:       enrichment.NewSearchAdapter(apiClient, cfg.Enrichment.MinConfidence, logger),
		models.StrategyWebScrape: enrichment.NewSearchAdapter(scrapeClient, cfg.Enrichment.MinConfidence, logger),
		models.StrategyNone:      enrichment.NoneAdapter{},
	}

	return pipeline.NewProcessor(
		pipeline.Components{
			Detector:  detector.NewDetector(registry),
			Parsers:   parsers,
			Extractor: pdftext.NewExtractor(),
			Engine:    catalog.NewEngine(store, logger),
			Enricher: enrichment.NewEnricher(
				adapters,
				logger,
				enrichment.WithBatchSize(cfg.Enrichment.BatchSize),
				enrichment.WithBatchPause(cfg.Enrichment.BatchPause),
				enrichment.WithItemTimeout(cfg.Enrichment.ItemTimeout),
			),
			Writer:    catalog.NewWriter(store, logger),
			Inventory: store,
			Runs:      store,
		},
		logger,
	), nil
}

// NewStorage returns postgres storage configured from cfg.
func NewStorage(cfg *config.Config, db *sql.DB) storage.Postgres {
	return storage.NewPostgres(db, storage.WithStaleRunAfter(cfg.RunStaleAfter))
}
