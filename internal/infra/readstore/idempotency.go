package readstore

import (
	"context"

	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"
	"loyalty-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/readstore/idempotency_mock.go -package=readstoremock

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db query.DBTX, arg query.GetIdempotencyKeyParams) (query.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers decide whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx query.DBTX, key, actorID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := query.GetIdempotencyKeyParams{
		Key:     key,
		ActorID: actorID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		ActorID:       row.ActorID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     row.ExpiresAt.Time,
	}, nil
}
