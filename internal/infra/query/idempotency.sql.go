package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, actor_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, actor_id) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	ActorID     uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.ActorID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, actor_id, endpoint, request_hash, status, result_order_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND actor_id = $2
`

type GetIdempotencyKeyParams struct {
	Key     uuid.UUID
	ActorID uuid.UUID
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	var i IdempotencyKeys
	err := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.ActorID).Scan(
		&i.Key,
		&i.ActorID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultOrderID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const completeIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'completed', result_order_id = $3, updated_at = now()
WHERE key = $1 AND actor_id = $2
`

type CompleteIdempotencyKeyParams struct {
	Key           uuid.UUID
	ActorID       uuid.UUID
	ResultOrderID pgtype.UUID
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.ActorID, arg.ResultOrderID)
	return err
}

// Reuses a key whose previous attempt expired without completing.
const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET request_hash = $3, status = 'processing', result_order_id = NULL, expires_at = $4, updated_at = now()
WHERE key = $1 AND actor_id = $2 AND expires_at < now()
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	ActorID     uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.ActorID, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
