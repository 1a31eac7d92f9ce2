package readstore

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/repository"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=../../../tests/mock/readstore/client_mock.go -package=readstoremock

type ClientReadQueries interface {
	GetClient(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Clients, error)
	ListPointsTransactionsByClient(ctx context.Context, db query.DBTX, arg query.ListPointsTransactionsByClientParams) ([]query.PointsTransactions, error)
	ListPointsTransactionsByClientAfter(ctx context.Context, db query.DBTX, arg query.ListPointsTransactionsByClientAfterParams) ([]query.PointsTransactions, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      query.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db query.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindAccount(ctx context.Context, clientID uuid.UUID) (*points.Account, error) {
	row, err := r.queries.GetClient(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get client", err)
	}
	return repository.AccountFromInfra(row)
}

func (r *ClientReadStore) FindProfile(ctx context.Context, clientID uuid.UUID) (*points.Profile, error) {
	row, err := r.queries.GetClient(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get client", err)
	}
	account, err := repository.AccountFromInfra(row)
	if err != nil {
		return nil, err
	}
	return &points.Profile{
		Account:  *account,
		Username: row.Username,
		Email:    row.Email,
	}, nil
}

// ListTransactions returns the first page of the client's journal, newest first.
func (r *ClientReadStore) ListTransactions(ctx context.Context, clientID uuid.UUID, limit int32) ([]*points.Movement, error) {
	rows, err := r.queries.ListPointsTransactionsByClient(ctx, r.db, query.ListPointsTransactionsByClientParams{
		ClientID: clientID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points transactions", err)
	}
	return movementsFromRows(rows)
}

// ListTransactionsAfter continues the journal past the movement (afterAt, afterID).
func (r *ClientReadStore) ListTransactionsAfter(ctx context.Context, clientID uuid.UUID, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*points.Movement, error) {
	rows, err := r.queries.ListPointsTransactionsByClientAfter(ctx, r.db, query.ListPointsTransactionsByClientAfterParams{
		ClientID:  clientID,
		CreatedAt: pgconv.TimeToPgtype(afterAt),
		ID:        afterID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points transactions", err)
	}
	return movementsFromRows(rows)
}

func movementsFromRows(rows []query.PointsTransactions) ([]*points.Movement, error) {
	out := make([]*points.Movement, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode amount", err, infra.KindDBFailure)
		}
		balance, err := pgconv.DecimalFromNumeric(row.BalanceAfter)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode balance", err, infra.KindDBFailure)
		}
		out = append(out, &points.Movement{
			ID:           row.ID,
			ClientID:     row.ClientID,
			Kind:         points.Kind(row.Kind),
			Amount:       amount,
			OrderID:      pgconv.UUIDPtrFromPgtype(row.OrderID),
			BalanceAfter: balance,
			CreatedAt:    row.CreatedAt.Time,
		})
	}
	return out, nil
}
