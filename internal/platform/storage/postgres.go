package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/frame-order-parser/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const defaultStaleRunAfter = 15 * time.Minute

// Option is custom configuration of Postgres.
type Option func(p *Postgres)

// Postgres is storage for processing runs, shared frame catalog and tenant inventory.
type Postgres struct {
	db            *sql.DB
	staleRunAfter time.Duration
	now           func() time.Time
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB, ops ...Option) Postgres {
	p := Postgres{
		db:            db,
		staleRunAfter: defaultStaleRunAfter,
		now:           time.Now,
	}

	for _, op := range ops {
		op(&p)
	}

	return p
}

// StartRun creates new unfinished run of message in database and returns it.
// It returns ErrAlreadyRunning if previous run of the message is not finished yet.
// Unfinished runs older than stale run timeout are treated as abandoned.
func (p Postgres) StartRun(ctx context.Context, messageID string) (*models.Run, error) {
	run := &models.Run{
		MessageID: messageID,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, messageID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil &&
			p.now().Sub(lastRun.CreatedAt) < p.staleRunAfter {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.Run.INSERT(
			table.Run.MessageID,
		).
			MODEL(newRun).
			RETURNING(table.Run.ID, table.Run.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.Run.AllColumns.Except(table.Run.ID, table.Run.CreatedAt, table.Run.MessageID)

	result, err := table.Run.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.Run.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run %d: %w", run.ID, errors.Join(platform.ErrNotFound, err))
	}

	return nil
}

func getLastRun(ctx context.Context, db qrm.DB, messageID string) (*pgmodels.Run, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(
		table.Run.CreatedAt,
		table.Run.FinishedAt,
		table.Run.Success,
		table.Run.StatusMessage,
	).
		WHERE(table.Run.MessageID.EQ(pg.String(messageID))).
		ORDER_BY(table.Run.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}

// WithStaleRunAfter sets age after which unfinished run no longer blocks new run of the same message.
func WithStaleRunAfter(d time.Duration) Option {
	return func(p *Postgres) {
		p.staleRunAfter = d
	}
}

// WithNow sets function returning current time.
func WithNow(now func() time.Time) Option {
	return func(p *Postgres) {
		p.now = now
	}
}
