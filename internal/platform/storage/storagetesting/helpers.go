package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRuns is a helper test function to insert runs. Ids are assigned by database.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Run.INSERT(table.Run.AllColumns.Except(table.Run.ID)).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertCatalogEntries is a helper test function to insert catalog entries.
func InsertCatalogEntries(t *testing.T, exc qrm.Executable, entries ...pgmodels.CatalogEntry) {
	t.Helper()

	if len(entries) == 0 {
		return
	}

	_, err := table.CatalogEntry.INSERT(table.CatalogEntry.AllColumns.Except(table.CatalogEntry.ID)).
		MODELS(entries).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert catalog entries", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetLatestRun is a helper test function to get latest run of message.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, messageID string) *pgmodels.Run {
	t.Helper()

	var runs []pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.MessageID.EQ(pg.String(messageID))).
		ORDER_BY(table.Run.CreatedAt.DESC(), table.Run.ID.DESC()).
		LIMIT(1).
		Query(queryable, &runs)
	if err != nil || len(runs) == 0 {
		t.Fatal("can't get latest run", err)
	}

	return &runs[0]
}

// GetCatalogEntries is a helper test function to get all catalog entries ordered by id.
func GetCatalogEntries(t *testing.T, queryable qrm.Queryable) []pgmodels.CatalogEntry {
	t.Helper()

	entries := []pgmodels.CatalogEntry{}
	err := table.CatalogEntry.SELECT(table.CatalogEntry.AllColumns).
		WHERE(table.CatalogEntry.ID.IS_NOT_NULL()).
		ORDER_BY(table.CatalogEntry.ID.ASC()).
		Query(queryable, &entries)
	if err != nil {
		t.Fatal("can't get catalog entries", err)
	}

	return entries
}

// GetOrders is a helper test function to get all inventory orders.
func GetOrders(t *testing.T, queryable qrm.Queryable) []pgmodels.InventoryOrder {
	t.Helper()

	orders := []pgmodels.InventoryOrder{}
	err := table.InventoryOrder.SELECT(table.InventoryOrder.AllColumns).
		WHERE(table.InventoryOrder.ID.IS_NOT_NULL()).
		ORDER_BY(table.InventoryOrder.ID.ASC()).
		Query(queryable, &orders)
	if err != nil {
		t.Fatal("can't get orders", err)
	}

	return orders
}

// GetItemsByOrderID is a helper test function to get inventory items of order.
func GetItemsByOrderID(t *testing.T, queryable qrm.Queryable, orderID int) []pgmodels.InventoryItem {
	t.Helper()

	items := []pgmodels.InventoryItem{}
	err := table.InventoryItem.SELECT(table.InventoryItem.AllColumns).
		WHERE(table.InventoryItem.OrderID.EQ(pg.Int32(int32(orderID)))).
		ORDER_BY(table.InventoryItem.ID.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get inventory items", err)
	}

	return items
}

// CleanupData is a helper test function to delete all stored data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.InventoryItem.DELETE().WHERE(table.InventoryItem.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete inventory items data", err)
	}

	_, err = table.InventoryOrder.DELETE().WHERE(table.InventoryOrder.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete inventory orders data", err)
	}

	_, err = table.CatalogEntry.DELETE().WHERE(table.CatalogEntry.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete catalog data", err)
	}

	_, err = table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}
}
