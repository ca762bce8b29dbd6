package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/rs/zerolog"
)

// CacheResult counts catalog writes.
type CacheResult struct {
	Cached  int
	Updated int
	Skipped int
}

// Writer writes enriched items back to catalog.
type Writer struct {
	store  Store
	logger *zerolog.Logger
}

// NewWriter returns new Writer.
func NewWriter(store Store, logger *zerolog.Logger) *Writer {
	return &Writer{
		store:  store,
		logger: logger,
	}
}

// Cache upserts items on their natural key. Items matched during reconciliation and not enriched
// afterwards are skipped, as are items without brand and model. Size-less hits point to another
// size variant, they are never refreshed and get entry of their own instead.
// A new entry is recognized by order counter equal to 1 after upsert.
// Failed writes are skipped and returned joined, remaining items are still written.
func (w *Writer) Cache(ctx context.Context, vendorID, vendorName string, items []models.LineItem) (CacheResult, error) {
	var (
		res  CacheResult
		errs []error
	)

	for _, item := range items {
		if item.Brand == "" && item.Model == "" {
			res.Skipped++
			continue
		}

		if item.Cached && item.MatchTier != TierFuzzy {
			if !item.Enriched || item.CatalogID == 0 {
				res.Skipped++
				continue
			}
			if err := w.store.Refresh(ctx, item.CatalogID, toEntry(vendorID, vendorName, item)); err != nil {
				errs = append(errs, fmt.Errorf("can't refresh catalog entry %d: %w", item.CatalogID, err))
				res.Skipped++
				continue
			}
			res.Updated++
			continue
		}

		timesOrdered, err := w.store.Upsert(ctx, toEntry(vendorID, vendorName, item))
		if err != nil {
			errs = append(errs, fmt.Errorf("can't cache %s %s: %w", item.Model, item.Color, err))
			res.Skipped++
			continue
		}

		if timesOrdered == 1 {
			res.Cached++
		} else {
			res.Updated++
		}
	}

	w.logger.Debug().
		Str("vendorId", vendorID).
		Int("cachedNew", res.Cached).
		Int("cachedUpdated", res.Updated).
		Int("cacheSkipped", res.Skipped).
		Msg("catalog written")

	return res, errors.Join(errs...)
}

func toEntry(vendorID, vendorName string, item models.LineItem) models.CatalogEntry {
	source := item.DataSource
	if source == "" {
		source = models.DataSourceVendorCatalogMatch
	}

	return models.CatalogEntry{
		VendorID:        vendorID,
		VendorName:      vendorName,
		Brand:           item.Brand,
		Model:           item.Model,
		Color:           item.Color,
		ColorCode:       item.ColorCode,
		Size:            item.Size,
		EyeSize:         item.EyeSize,
		Bridge:          item.Bridge,
		Temple:          item.Temple,
		UPC:             item.UPC,
		WholesaleCost:   item.WholesalePrice,
		MSRP:            item.MSRP,
		Material:        item.Material,
		InStock:         item.InStock,
		ConfidenceScore: item.ConfidenceScore,
		DataSource:      source,
	}
}
