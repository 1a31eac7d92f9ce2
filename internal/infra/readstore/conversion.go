package readstore

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/repository"
	"loyalty-engine/internal/pkg/pgconv"
)

//go:generate mockgen -source=conversion.go -destination=../../../tests/mock/readstore/conversion_mock.go -package=readstoremock

type ConversionReadQueries interface {
	GetLatestConversionRate(ctx context.Context, db query.DBTX) (query.ConversionRateHistory, error)
	ListConversionRateHistory(ctx context.Context, db query.DBTX, limit int32) ([]query.ConversionRateHistory, error)
	ListConversionRateHistoryAfter(ctx context.Context, db query.DBTX, arg query.ListConversionRateHistoryAfterParams) ([]query.ConversionRateHistory, error)
}

type ConversionReadStore struct {
	queries ConversionReadQueries
	db      query.DBTX
}

func NewConversionReadStore(queries ConversionReadQueries, db query.DBTX) *ConversionReadStore {
	return &ConversionReadStore{
		queries: queries,
		db:      db,
	}
}

// Latest returns nil when the history is empty.
func (r *ConversionReadStore) Latest(ctx context.Context) (*conversion.Entry, error) {
	row, err := r.queries.GetLatestConversionRate(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get conversion rate", err)
	}
	return repository.ConversionEntryFromInfra(row)
}

// History returns the most recent changes first.
func (r *ConversionReadStore) History(ctx context.Context, limit int32) ([]*conversion.Entry, error) {
	rows, err := r.queries.ListConversionRateHistory(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversion rate history", err)
	}
	return entriesFromRows(rows)
}

// HistoryAfter continues the history past the entry (afterAt, afterID).
func (r *ConversionReadStore) HistoryAfter(ctx context.Context, afterAt time.Time, afterID int64, limit int32) ([]*conversion.Entry, error) {
	rows, err := r.queries.ListConversionRateHistoryAfter(ctx, r.db, query.ListConversionRateHistoryAfterParams{
		ChangedAt: pgconv.TimeToPgtype(afterAt),
		ID:        afterID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversion rate history", err)
	}
	return entriesFromRows(rows)
}

func entriesFromRows(rows []query.ConversionRateHistory) ([]*conversion.Entry, error) {
	out := make([]*conversion.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := repository.ConversionEntryFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
