package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SaveOrder stores parsed order with its items as pending inventory.
// Orders are deduplicated by account, vendor and order number: for already stored order
// nothing is written and stored order is returned with created set to false.
func (p Postgres) SaveOrder(ctx context.Context, accountID, tenantID string, result *models.Result) (*models.StoredOrder, bool, error) {
	var (
		stored  pgmodels.InventoryOrder
		created bool
	)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		order := toDBOrder(accountID, tenantID, result)

		err := table.InventoryOrder.INSERT(
			table.InventoryOrder.AllColumns.Except(table.InventoryOrder.ID, table.InventoryOrder.CreatedAt),
		).
			MODEL(order).
			ON_CONFLICT(
				table.InventoryOrder.AccountID,
				table.InventoryOrder.VendorName,
				table.InventoryOrder.OrderNumber,
			).
			DO_NOTHING().
			RETURNING(table.InventoryOrder.AllColumns).
			QueryContext(ctx, tx, &stored)

		if errors.Is(err, qrm.ErrNoRows) {
			return getOrder(ctx, tx, accountID, result.Vendor, result.Order.OrderNumber, &stored)
		}
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}

		created = true
		return insertItems(ctx, tx, stored.ID, accountID, result.Items)
	})
	if err != nil {
		return nil, false, fmt.Errorf("can't save order: %w", err)
	}

	return toStoredOrder(&stored), created, nil
}

// ConfirmItems marks listed items of order as received and current. Items already received are not changed.
// Returns number of confirmed items.
func (p Postgres) ConfirmItems(ctx context.Context, orderID int, itemIDs []int) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	ids := lo.Map(itemIDs, func(id int, _ int) pg.Expression {
		return pg.Int32(int32(id))
	})

	return p.confirm(ctx, pg.AND(
		table.InventoryItem.OrderID.EQ(pg.Int32(int32(orderID))),
		table.InventoryItem.ID.IN(ids...),
	))
}

// ConfirmOrder marks all not yet received items of order as received and current.
// Returns number of confirmed items.
func (p Postgres) ConfirmOrder(ctx context.Context, orderID int) (int64, error) {
	return p.confirm(ctx, table.InventoryItem.OrderID.EQ(pg.Int32(int32(orderID))))
}

// UnreceivedItems returns items of order which were not received yet.
// Receipt state is the only criterion, status label is not consulted.
func (p Postgres) UnreceivedItems(ctx context.Context, orderID int) ([]models.InventoryItem, error) {
	return p.items(ctx, pg.AND(
		table.InventoryItem.OrderID.EQ(pg.Int32(int32(orderID))),
		table.InventoryItem.ReceivedAt.IS_NULL(),
	))
}

// OrderItems returns all items of order.
func (p Postgres) OrderItems(ctx context.Context, orderID int) ([]models.InventoryItem, error) {
	return p.items(ctx, table.InventoryItem.OrderID.EQ(pg.Int32(int32(orderID))))
}

// MarkSold moves current item to sold. Returns ErrInvalidTransition for items which are not current.
func (p Postgres) MarkSold(ctx context.Context, itemID int) error {
	result, err := table.InventoryItem.UPDATE().
		SET(
			table.InventoryItem.Status.SET(pg.String(string(models.StatusSold))),
			table.InventoryItem.SoldAt.SET(pg.TimestampzT(p.now())),
		).
		WHERE(pg.AND(
			table.InventoryItem.ID.EQ(pg.Int32(int32(itemID))),
			table.InventoryItem.Status.EQ(pg.String(string(models.StatusCurrent))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't mark item as sold: %w", err)
	}

	if err := affectedOne(result); err != nil {
		return fmt.Errorf("can't mark item %d as sold: %w", itemID, platform.ErrInvalidTransition)
	}
	return nil
}

// Archive moves item in any status but archived to archived.
func (p Postgres) Archive(ctx context.Context, itemID int) error {
	result, err := table.InventoryItem.UPDATE().
		SET(
			table.InventoryItem.Status.SET(pg.String(string(models.StatusArchived))),
			table.InventoryItem.ArchivedAt.SET(pg.TimestampzT(p.now())),
		).
		WHERE(pg.AND(
			table.InventoryItem.ID.EQ(pg.Int32(int32(itemID))),
			table.InventoryItem.Status.NOT_EQ(pg.String(string(models.StatusArchived))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't archive item: %w", err)
	}

	if err := affectedOne(result); err != nil {
		return fmt.Errorf("can't archive item %d: %w", itemID, platform.ErrInvalidTransition)
	}
	return nil
}

func (p Postgres) confirm(ctx context.Context, condition pg.BoolExpression) (int64, error) {
	result, err := table.InventoryItem.UPDATE().
		SET(
			table.InventoryItem.ReceivedAt.SET(pg.TimestampzT(p.now())),
			table.InventoryItem.Status.SET(pg.String(string(models.StatusCurrent))),
		).
		WHERE(pg.AND(
			condition,
			table.InventoryItem.ReceivedAt.IS_NULL(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't confirm items: %w", err)
	}

	confirmed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't get confirmed items count: %w", err)
	}

	return confirmed, nil
}

func (p Postgres) items(ctx context.Context, condition pg.BoolExpression) ([]models.InventoryItem, error) {
	var dbItems []pgmodels.InventoryItem
	err := table.InventoryItem.SELECT(table.InventoryItem.AllColumns).
		WHERE(condition).
		ORDER_BY(table.InventoryItem.ID.ASC()).
		QueryContext(ctx, p.db, &dbItems)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get inventory items: %w", err)
	}

	return lo.Map(dbItems, func(_ pgmodels.InventoryItem, ix int) models.InventoryItem {
		return toInventoryItem(&dbItems[ix])
	}), nil
}

func getOrder(ctx context.Context, db qrm.DB, accountID, vendorName, orderNumber string, dest *pgmodels.InventoryOrder) error {
	err := table.InventoryOrder.SELECT(table.InventoryOrder.AllColumns).
		WHERE(pg.AND(
			table.InventoryOrder.AccountID.EQ(pg.String(accountID)),
			table.InventoryOrder.VendorName.EQ(pg.String(vendorName)),
			table.InventoryOrder.OrderNumber.EQ(pg.String(orderNumber)),
		)).
		QueryContext(ctx, db, dest)
	if err != nil {
		return fmt.Errorf("can't get stored order: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, db qrm.DB, orderID int32, accountID string, items []models.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	dbItems := make([]pgmodels.InventoryItem, 0, len(items))
	for ix := range items {
		dbItems = append(dbItems, toDBItem(orderID, accountID, &items[ix]))
	}

	_, err := table.InventoryItem.INSERT(
		table.InventoryItem.AllColumns.Except(
			table.InventoryItem.ID,
			table.InventoryItem.ReceivedAt,
			table.InventoryItem.SoldAt,
			table.InventoryItem.ArchivedAt,
			table.InventoryItem.CreatedAt,
		),
	).
		MODELS(dbItems).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert inventory items: %w", err)
	}

	return nil
}
