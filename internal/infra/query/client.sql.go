package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const clientColumns = `id, username, email, current_points, total_earned, total_spent, created_at, updated_at`

func scanClient(row rowScanner) (Clients, error) {
	var i Clients
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.CurrentPoints,
		&i.TotalEarned,
		&i.TotalSpent,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getClient = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

func (q *Queries) GetClient(ctx context.Context, db DBTX, id uuid.UUID) (Clients, error) {
	return scanClient(db.QueryRow(ctx, getClient, id))
}

const getClientForUpdate = getClient + ` FOR UPDATE`

func (q *Queries) GetClientForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Clients, error) {
	return scanClient(db.QueryRow(ctx, getClientForUpdate, id))
}

type ChangePointsParams struct {
	ID     uuid.UUID
	Amount pgtype.Numeric
}

// The balance guard lives in the WHERE clause, so a redeem that would go negative matches no row.
const redeemPoints = `
UPDATE clients
SET current_points = current_points - $2,
    total_spent    = total_spent + $2,
    updated_at     = now()
WHERE id = $1 AND current_points >= $2
RETURNING ` + clientColumns

func (q *Queries) RedeemPoints(ctx context.Context, db DBTX, arg ChangePointsParams) (Clients, error) {
	return scanClient(db.QueryRow(ctx, redeemPoints, arg.ID, arg.Amount))
}

const awardPoints = `
UPDATE clients
SET current_points = current_points + $2,
    total_earned   = total_earned + $2,
    updated_at     = now()
WHERE id = $1 AND $2 >= 0
RETURNING ` + clientColumns

func (q *Queries) AwardPoints(ctx context.Context, db DBTX, arg ChangePointsParams) (Clients, error) {
	return scanClient(db.QueryRow(ctx, awardPoints, arg.ID, arg.Amount))
}

const createPointsTransaction = `
INSERT INTO points_transactions (id, client_id, kind, amount, order_id, balance_after, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreatePointsTransactionParams struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	Kind         string
	Amount       pgtype.Numeric
	OrderID      pgtype.UUID
	BalanceAfter pgtype.Numeric
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreatePointsTransaction(ctx context.Context, db DBTX, arg CreatePointsTransactionParams) error {
	_, err := db.Exec(ctx, createPointsTransaction,
		arg.ID,
		arg.ClientID,
		arg.Kind,
		arg.Amount,
		arg.OrderID,
		arg.BalanceAfter,
		arg.CreatedAt,
	)
	return err
}

const listPointsTransactionsByClient = `
SELECT id, client_id, kind, amount, order_id, balance_after, created_at
FROM points_transactions
WHERE client_id = $1
ORDER BY created_at DESC, kind ASC, id ASC
LIMIT $2
`

type ListPointsTransactionsByClientParams struct {
	ClientID uuid.UUID
	Limit    int32
}

func (q *Queries) ListPointsTransactionsByClient(ctx context.Context, db DBTX, arg ListPointsTransactionsByClientParams) ([]PointsTransactions, error) {
	rows, err := db.Query(ctx, listPointsTransactionsByClient, arg.ClientID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPointsTransactions(rows)
}

// Rows of one close share created_at and sort by (kind, id) inside it, so the
// keyset resumes from the cursor row's own (kind, id).
const listPointsTransactionsByClientAfter = `
SELECT id, client_id, kind, amount, order_id, balance_after, created_at
FROM points_transactions
WHERE client_id = $1
  AND (created_at < $2
       OR (created_at = $2
           AND (kind, id) > (SELECT kind, id FROM points_transactions WHERE id = $3)))
ORDER BY created_at DESC, kind ASC, id ASC
LIMIT $4
`

type ListPointsTransactionsByClientAfterParams struct {
	ClientID  uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListPointsTransactionsByClientAfter(ctx context.Context, db DBTX, arg ListPointsTransactionsByClientAfterParams) ([]PointsTransactions, error) {
	rows, err := db.Query(ctx, listPointsTransactionsByClientAfter, arg.ClientID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPointsTransactions(rows)
}

func collectPointsTransactions(rows pgx.Rows) ([]PointsTransactions, error) {
	defer rows.Close()
	items := []PointsTransactions{}
	for rows.Next() {
		var i PointsTransactions
		if err := rows.Scan(
			&i.ID,
			&i.ClientID,
			&i.Kind,
			&i.Amount,
			&i.OrderID,
			&i.BalanceAfter,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
