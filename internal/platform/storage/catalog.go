package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// eyeSeparators may follow eye size token in stored size text.
var eyeSeparators = []string{"-", "/", " ", "□"}

// FindExact finds entry by vendor, model, color and eye size. Model and color are compared by folded keys.
func (p Postgres) FindExact(ctx context.Context, vendorID, model, color, eyeSize string) (*models.CatalogEntry, error) {
	return p.findEntry(ctx, pg.AND(
		keyCondition(vendorID, model, color),
		table.CatalogEntry.EyeSize.EQ(pg.String(eyeSize)),
	))
}

// FindByEyeSize finds entry whose size equals eye token or starts with it followed by a separator.
func (p Postgres) FindByEyeSize(ctx context.Context, vendorID, model, color, eye string) (*models.CatalogEntry, error) {
	sizeConditions := []pg.BoolExpression{
		table.CatalogEntry.Size.EQ(pg.String(eye)),
	}
	for _, sep := range eyeSeparators {
		sizeConditions = append(sizeConditions, table.CatalogEntry.Size.LIKE(pg.String(escapeLike(eye)+sep+"%")))
	}

	return p.findEntry(ctx, pg.AND(
		keyCondition(vendorID, model, color),
		pg.OR(sizeConditions...),
	))
}

func (p Postgres) FindByUPC(ctx context.Context, vendorID, upc string) (*models.CatalogEntry, error) {
	return p.findEntry(ctx, pg.AND(
		table.CatalogEntry.VendorID.EQ(pg.String(vendorID)),
		table.CatalogEntry.Upc.EQ(pg.String(upc)),
	))
}

// FindFuzzy finds entry whose model contains model and color equals color. Size is ignored,
// so returned entry may be different size variant.
func (p Postgres) FindFuzzy(ctx context.Context, vendorID, model, color string) (*models.CatalogEntry, error) {
	return p.findEntry(ctx, pg.AND(
		table.CatalogEntry.VendorID.EQ(pg.String(vendorID)),
		table.CatalogEntry.ModelKey.LIKE(pg.String("%"+escapeLike(fold.Key(model))+"%")),
		table.CatalogEntry.ColorKey.EQ(pg.String(fold.Key(color))),
	))
}

// Touch increments order counter of entry and marks it as seen.
func (p Postgres) Touch(ctx context.Context, id int) error {
	result, err := table.CatalogEntry.UPDATE().
		SET(
			table.CatalogEntry.TimesOrdered.SET(table.CatalogEntry.TimesOrdered.ADD(pg.Int32(1))),
			table.CatalogEntry.LastSeenAt.SET(pg.TimestampzT(p.now())),
		).
		WHERE(table.CatalogEntry.ID.EQ(pg.Int32(int32(id)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't touch catalog entry: %w", err)
	}

	return affectedOne(result)
}

// Upsert inserts entry or updates entry with the same natural key in single statement,
// so concurrent writes of the same frame never create duplicates. Existing prices and stock
// are kept when entry has none. Returns order counter after the write.
func (p Postgres) Upsert(ctx context.Context, entry models.CatalogEntry) (int32, error) {
	dbEntry := toDBCatalogEntry(entry)
	dbEntry.TimesOrdered = 1
	dbEntry.LastSeenAt = p.now()

	columnList := table.CatalogEntry.AllColumns.Except(table.CatalogEntry.ID, table.CatalogEntry.CreatedAt)
	excluded := table.CatalogEntry.EXCLUDED

	var stored pgmodels.CatalogEntry
	err := table.CatalogEntry.INSERT(columnList).
		MODEL(dbEntry).
		ON_CONFLICT(
			table.CatalogEntry.VendorID,
			table.CatalogEntry.ModelKey,
			table.CatalogEntry.ColorKey,
			table.CatalogEntry.EyeSize,
		).
		DO_UPDATE(
			pg.SET(
				table.CatalogEntry.VendorName.SET(excluded.VendorName),
				table.CatalogEntry.Brand.SET(excluded.Brand),
				table.CatalogEntry.Model.SET(excluded.Model),
				table.CatalogEntry.Color.SET(excluded.Color),
				table.CatalogEntry.ColorCode.SET(excluded.ColorCode),
				table.CatalogEntry.Size.SET(excluded.Size),
				table.CatalogEntry.Bridge.SET(excluded.Bridge),
				table.CatalogEntry.Temple.SET(excluded.Temple),
				table.CatalogEntry.Upc.SET(excluded.Upc),
				table.CatalogEntry.Material.SET(excluded.Material),
				table.CatalogEntry.ConfidenceScore.SET(excluded.ConfidenceScore),
				table.CatalogEntry.DataSource.SET(excluded.DataSource),
				table.CatalogEntry.WholesaleCost.SET(pg.FloatExp(pg.COALESCE(excluded.WholesaleCost, table.CatalogEntry.WholesaleCost))),
				table.CatalogEntry.Msrp.SET(pg.FloatExp(pg.COALESCE(excluded.Msrp, table.CatalogEntry.Msrp))),
				table.CatalogEntry.InStock.SET(pg.BoolExp(pg.COALESCE(excluded.InStock, table.CatalogEntry.InStock))),
				table.CatalogEntry.TimesOrdered.SET(table.CatalogEntry.TimesOrdered.ADD(pg.Int32(1))),
				table.CatalogEntry.LastSeenAt.SET(excluded.LastSeenAt),
			),
		).
		RETURNING(table.CatalogEntry.ID, table.CatalogEntry.TimesOrdered).
		QueryContext(ctx, p.db, &stored)
	if err != nil {
		return 0, fmt.Errorf("can't upsert catalog entry: %w", err)
	}

	return stored.TimesOrdered, nil
}

// Refresh overwrites enrichment attributes of entry. Order counter is not changed
// and prices and stock are kept when entry has none.
func (p Postgres) Refresh(ctx context.Context, id int, entry models.CatalogEntry) error {
	columnList := pg.ColumnList{
		table.CatalogEntry.Brand,
		table.CatalogEntry.ColorCode,
		table.CatalogEntry.Size,
		table.CatalogEntry.Bridge,
		table.CatalogEntry.Temple,
		table.CatalogEntry.Upc,
		table.CatalogEntry.Material,
		table.CatalogEntry.ConfidenceScore,
		table.CatalogEntry.DataSource,
	}
	if entry.WholesaleCost != nil {
		columnList = append(columnList, table.CatalogEntry.WholesaleCost)
	}
	if entry.MSRP != nil {
		columnList = append(columnList, table.CatalogEntry.Msrp)
	}
	if entry.InStock != nil {
		columnList = append(columnList, table.CatalogEntry.InStock)
	}

	result, err := table.CatalogEntry.UPDATE(columnList).
		MODEL(toDBCatalogEntry(entry)).
		WHERE(table.CatalogEntry.ID.EQ(pg.Int32(int32(id)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't refresh catalog entry: %w", err)
	}

	return affectedOne(result)
}

// findEntry returns most ordered entry matching condition, the oldest one on ties.
func (p Postgres) findEntry(ctx context.Context, condition pg.BoolExpression) (*models.CatalogEntry, error) {
	var entry pgmodels.CatalogEntry
	err := table.CatalogEntry.SELECT(table.CatalogEntry.AllColumns).
		WHERE(condition).
		ORDER_BY(table.CatalogEntry.TimesOrdered.DESC(), table.CatalogEntry.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &entry)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find catalog entry: %w", err)
	}

	return toCatalogEntry(&entry), nil
}

func keyCondition(vendorID, model, color string) pg.BoolExpression {
	return pg.AND(
		table.CatalogEntry.VendorID.EQ(pg.String(vendorID)),
		table.CatalogEntry.ModelKey.EQ(pg.String(fold.Key(model))),
		table.CatalogEntry.ColorKey.EQ(pg.String(fold.Key(color))),
	)
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(value)
}

func affectedOne(result interface{ RowsAffected() (int64, error) }) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't get affected rows: %w", err)
	}
	if rows == 0 {
		return platform.ErrNotFound
	}
	return nil
}
