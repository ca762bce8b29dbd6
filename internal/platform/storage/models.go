package storage

import (
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		ID:            int32(run.ID),
		MessageID:     run.MessageID,
		CreatedAt:     run.CreatedAt,
		FinishedAt:    run.FinishedAt,
		Success:       run.IsSuccess,
		StatusMessage: run.StatusMessage,
		VendorName:    run.VendorName,
		ParsedItems:   run.ParsedItems,
		CacheHits:     run.CacheHits,
		CacheMisses:   run.CacheMisses,
		EnrichedItems: run.EnrichedItems,
		CachedNew:     run.CachedNew,
		CachedUpdated: run.CachedUpdated,
	}
}

// ToRun converts postgres run model into models.Run.
func ToRun(run *pgmodels.Run) *models.Run {
	return &models.Run{
		ID:            int(run.ID),
		MessageID:     run.MessageID,
		CreatedAt:     run.CreatedAt,
		FinishedAt:    run.FinishedAt,
		IsSuccess:     run.Success,
		StatusMessage: run.StatusMessage,
		VendorName:    run.VendorName,
		ParsedItems:   run.ParsedItems,
		CacheHits:     run.CacheHits,
		CacheMisses:   run.CacheMisses,
		EnrichedItems: run.EnrichedItems,
		CachedNew:     run.CachedNew,
		CachedUpdated: run.CachedUpdated,
	}
}

// toDBCatalogEntry converts catalog entry, deriving folded model and color keys of natural key.
func toDBCatalogEntry(entry models.CatalogEntry) *pgmodels.CatalogEntry {
	return &pgmodels.CatalogEntry{
		ID:              int32(entry.ID),
		VendorID:        entry.VendorID,
		VendorName:      entry.VendorName,
		Brand:           entry.Brand,
		Model:           entry.Model,
		ModelKey:        fold.Key(entry.Model),
		Color:           entry.Color,
		ColorKey:        fold.Key(entry.Color),
		ColorCode:       entry.ColorCode,
		Size:            entry.Size,
		EyeSize:         entry.EyeSize,
		Bridge:          entry.Bridge,
		Temple:          entry.Temple,
		Upc:             entry.UPC,
		WholesaleCost:   entry.WholesaleCost,
		Msrp:            entry.MSRP,
		Material:        entry.Material,
		InStock:         entry.InStock,
		ConfidenceScore: int32(entry.ConfidenceScore),
		TimesOrdered:    entry.TimesOrdered,
		DataSource:      string(entry.DataSource),
		LastSeenAt:      entry.LastSeenAt,
		CreatedAt:       entry.CreatedAt,
	}
}

func toCatalogEntry(entry *pgmodels.CatalogEntry) *models.CatalogEntry {
	return &models.CatalogEntry{
		ID:              int(entry.ID),
		VendorID:        entry.VendorID,
		VendorName:      entry.VendorName,
		Brand:           entry.Brand,
		Model:           entry.Model,
		Color:           entry.Color,
		ColorCode:       entry.ColorCode,
		Size:            entry.Size,
		EyeSize:         entry.EyeSize,
		Bridge:          entry.Bridge,
		Temple:          entry.Temple,
		UPC:             entry.Upc,
		WholesaleCost:   entry.WholesaleCost,
		MSRP:            entry.Msrp,
		Material:        entry.Material,
		InStock:         entry.InStock,
		ConfidenceScore: int(entry.ConfidenceScore),
		TimesOrdered:    entry.TimesOrdered,
		DataSource:      models.DataSource(entry.DataSource),
		LastSeenAt:      entry.LastSeenAt,
		CreatedAt:       entry.CreatedAt,
	}
}

// toDBOrder converts pipeline result into order row. Missing order number is stored as NULL,
// so orders without number are never deduplicated against each other.
func toDBOrder(accountID, tenantID string, result *models.Result) *pgmodels.InventoryOrder {
	var orderNumber *string
	if result.Order.OrderNumber != "" {
		orderNumber = &result.Order.OrderNumber
	}

	return &pgmodels.InventoryOrder{
		AccountID:       accountID,
		TenantID:        tenantID,
		MessageID:       result.MessageID,
		VendorID:        result.VendorID,
		VendorName:      result.Vendor,
		OrderNumber:     orderNumber,
		CustomerName:    result.Order.CustomerName,
		CustomerCode:    result.Order.CustomerCode,
		OrderDate:       result.Order.OrderDate,
		AccountNumber:   result.Order.AccountNumber,
		RepName:         result.Order.RepName,
		TotalPieces:     int32(result.Order.TotalPieces),
		ReferenceNumber: result.Order.ReferenceNumber,
	}
}

func toStoredOrder(order *pgmodels.InventoryOrder) *models.StoredOrder {
	return &models.StoredOrder{
		ID:         int(order.ID),
		AccountID:  order.AccountID,
		VendorID:   order.VendorID,
		VendorName: order.VendorName,
		Order: models.Order{
			OrderNumber:     lo.FromPtr(order.OrderNumber),
			CustomerName:    order.CustomerName,
			CustomerCode:    order.CustomerCode,
			OrderDate:       order.OrderDate,
			AccountNumber:   order.AccountNumber,
			RepName:         order.RepName,
			TotalPieces:     int(order.TotalPieces),
			ReferenceNumber: order.ReferenceNumber,
		},
		CreatedAt: order.CreatedAt,
	}
}

func toDBItem(orderID int32, accountID string, item *models.LineItem) pgmodels.InventoryItem {
	var catalogID *int32
	if item.CatalogID > 0 {
		catalogID = lo.ToPtr(int32(item.CatalogID))
	}

	return pgmodels.InventoryItem{
		OrderID:         orderID,
		AccountID:       accountID,
		CatalogEntryID:  catalogID,
		Brand:           item.Brand,
		Model:           item.Model,
		Color:           item.Color,
		ColorCode:       item.ColorCode,
		Size:            item.Size,
		EyeSize:         item.EyeSize,
		Bridge:          item.Bridge,
		Temple:          item.Temple,
		Quantity:        int32(max(item.Quantity, 1)),
		Upc:             item.UPC,
		Sku:             item.SKU,
		WholesalePrice:  item.WholesalePrice,
		Msrp:            item.MSRP,
		InStock:         item.InStock,
		Material:        item.Material,
		APIVerified:     item.APIVerified,
		ConfidenceScore: int32(item.ConfidenceScore),
		Status:          string(models.StatusPending),
	}
}

func toInventoryItem(item *pgmodels.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ID:        int(item.ID),
		OrderID:   int(item.OrderID),
		AccountID: item.AccountID,
		Item: models.LineItem{
			Brand:           item.Brand,
			Model:           item.Model,
			Color:           item.Color,
			ColorCode:       item.ColorCode,
			Size:            item.Size,
			EyeSize:         item.EyeSize,
			Bridge:          item.Bridge,
			Temple:          item.Temple,
			Quantity:        int(item.Quantity),
			UPC:             item.Upc,
			SKU:             item.Sku,
			WholesalePrice:  item.WholesalePrice,
			MSRP:            item.Msrp,
			InStock:         item.InStock,
			Material:        item.Material,
			APIVerified:     item.APIVerified,
			ConfidenceScore: int(item.ConfidenceScore),
			CatalogID:       int(lo.FromPtr(item.CatalogEntryID)),
		},
		Status:     models.ItemStatus(item.Status),
		ReceivedAt: item.ReceivedAt,
		SoldAt:     item.SoldAt,
		ArchivedAt: item.ArchivedAt,
		CreatedAt:  item.CreatedAt,
	}
}
