package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ConversionRateLockKey is the advisory lock that serializes rate updates.
const ConversionRateLockKey int64 = 0x6c6f79616c7479

const acquireConversionRateLock = `SELECT pg_advisory_xact_lock($1)`

func (q *Queries) AcquireConversionRateLock(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, acquireConversionRateLock, ConversionRateLockKey)
	return err
}

const conversionColumns = `id, changed_at, changed_by, old_value, new_value`

func scanConversion(row rowScanner) (ConversionRateHistory, error) {
	var i ConversionRateHistory
	err := row.Scan(&i.ID, &i.ChangedAt, &i.ChangedBy, &i.OldValue, &i.NewValue)
	return i, err
}

const getLatestConversionRate = `SELECT ` + conversionColumns + `
FROM conversion_rate_history
ORDER BY changed_at DESC, id DESC
LIMIT 1
`

func (q *Queries) GetLatestConversionRate(ctx context.Context, db DBTX) (ConversionRateHistory, error) {
	return scanConversion(db.QueryRow(ctx, getLatestConversionRate))
}

const createConversionRateEntry = `
INSERT INTO conversion_rate_history (changed_at, changed_by, old_value, new_value)
VALUES ($1, $2, $3, $4)
RETURNING ` + conversionColumns

type CreateConversionRateEntryParams struct {
	ChangedAt pgtype.Timestamptz
	ChangedBy string
	OldValue  pgtype.Numeric
	NewValue  pgtype.Numeric
}

func (q *Queries) CreateConversionRateEntry(ctx context.Context, db DBTX, arg CreateConversionRateEntryParams) (ConversionRateHistory, error) {
	return scanConversion(db.QueryRow(ctx, createConversionRateEntry,
		arg.ChangedAt,
		arg.ChangedBy,
		arg.OldValue,
		arg.NewValue,
	))
}

const listConversionRateHistory = `SELECT ` + conversionColumns + `
FROM conversion_rate_history
ORDER BY changed_at DESC, id DESC
LIMIT $1
`

func (q *Queries) ListConversionRateHistory(ctx context.Context, db DBTX, limit int32) ([]ConversionRateHistory, error) {
	rows, err := db.Query(ctx, listConversionRateHistory, limit)
	if err != nil {
		return nil, err
	}
	return collectConversions(rows)
}

const listConversionRateHistoryAfter = `SELECT ` + conversionColumns + `
FROM conversion_rate_history
WHERE (changed_at, id) < ($1, $2)
ORDER BY changed_at DESC, id DESC
LIMIT $3
`

type ListConversionRateHistoryAfterParams struct {
	ChangedAt pgtype.Timestamptz
	ID        int64
	Limit     int32
}

func (q *Queries) ListConversionRateHistoryAfter(ctx context.Context, db DBTX, arg ListConversionRateHistoryAfterParams) ([]ConversionRateHistory, error) {
	rows, err := db.Query(ctx, listConversionRateHistoryAfter, arg.ChangedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectConversions(rows)
}

func collectConversions(rows pgx.Rows) ([]ConversionRateHistory, error) {
	defer rows.Close()
	items := []ConversionRateHistory{}
	for rows.Next() {
		i, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
