package repository

import (
	"context"

	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"
)

//go:generate mockgen -source=conversion.go -destination=../../../tests/mock/repository/conversion_mock.go -package=repositorymock

type ConversionWriteQueries interface {
	AcquireConversionRateLock(ctx context.Context, db query.DBTX) error
	GetLatestConversionRate(ctx context.Context, db query.DBTX) (query.ConversionRateHistory, error)
	CreateConversionRateEntry(ctx context.Context, db query.DBTX, arg query.CreateConversionRateEntryParams) (query.ConversionRateHistory, error)
}

// ConversionRepository appends to the rate history. Rows are never updated or deleted.
type ConversionRepository struct {
	queries ConversionWriteQueries
	db      query.DBTX
}

func NewConversionRepository(queries ConversionWriteQueries, db query.DBTX) *ConversionRepository {
	return &ConversionRepository{
		queries: queries,
		db:      db,
	}
}

// Lock serializes rate updates until the surrounding transaction ends.
func (r *ConversionRepository) Lock(ctx context.Context) error {
	if err := r.queries.AcquireConversionRateLock(ctx, r.db); err != nil {
		return infra.WrapRepoErr("failed to acquire conversion rate lock", err)
	}
	return nil
}

// Latest returns nil when no rate was ever recorded.
func (r *ConversionRepository) Latest(ctx context.Context) (*conversion.Entry, error) {
	row, err := r.queries.GetLatestConversionRate(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get conversion rate", err)
	}
	return ConversionEntryFromInfra(row)
}

func (r *ConversionRepository) Append(ctx context.Context, e *conversion.Entry) (*conversion.Entry, error) {
	row, err := r.queries.CreateConversionRateEntry(ctx, r.db, query.CreateConversionRateEntryParams{
		ChangedAt: pgconv.TimeToPgtype(e.ChangedAt),
		ChangedBy: e.ChangedBy,
		OldValue:  pgconv.NumericFromDecimalPtr(e.OldValue),
		NewValue:  pgconv.NumericFromDecimal(e.NewValue),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to append conversion rate", err)
	}
	return ConversionEntryFromInfra(row)
}

func ConversionEntryFromInfra(row query.ConversionRateHistory) (*conversion.Entry, error) {
	oldValue, err := pgconv.DecimalPtrFromNumeric(row.OldValue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode old rate", err, infra.KindDBFailure)
	}
	newValue, err := pgconv.DecimalFromNumeric(row.NewValue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode new rate", err, infra.KindDBFailure)
	}
	return &conversion.Entry{
		ID:        row.ID,
		ChangedAt: row.ChangedAt.Time,
		ChangedBy: row.ChangedBy,
		OldValue:  oldValue,
		NewValue:  newValue,
	}, nil
}
