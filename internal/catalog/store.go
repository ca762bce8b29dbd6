// Package catalog reconciles parsed line items with the shared frame catalog and writes it back.
package catalog

import (
	"context"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// Store is shared cross-tenant catalog storage.
// Finders return platform.ErrNotFound when there is no matching entry.
// Model and color comparisons are case and accent insensitive.
//
//go:generate mockery --name Store --filename store.go
type Store interface {
	// FindExact finds entry by vendor, model, color and eye size.
	FindExact(ctx context.Context, vendorID, model, color, eyeSize string) (*models.CatalogEntry, error)
	// FindByEyeSize finds entry by vendor, model and color whose size starts with eye token.
	FindByEyeSize(ctx context.Context, vendorID, model, color, eye string) (*models.CatalogEntry, error)
	// FindByUPC finds entry by vendor and upc.
	FindByUPC(ctx context.Context, vendorID, upc string) (*models.CatalogEntry, error)
	// FindFuzzy finds entry of vendor whose model contains model and color equals color, size is ignored.
	FindFuzzy(ctx context.Context, vendorID, model, color string) (*models.CatalogEntry, error)
	// Touch increments order counter of entry and marks it as seen.
	Touch(ctx context.Context, id int) error
	// Upsert atomically inserts entry or updates one with the same natural key, incrementing its order counter.
	// Returns order counter after the write.
	Upsert(ctx context.Context, entry models.CatalogEntry) (int32, error)
	// Refresh overwrites enrichment attributes of entry without touching order counter.
	Refresh(ctx context.Context, id int, entry models.CatalogEntry) error
}
