package queries

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=../../../tests/mock/queries/client_mock.go -package=queriesmock

type ClientReadStore interface {
	FindAccount(ctx context.Context, clientID uuid.UUID) (*points.Account, error)
	FindProfile(ctx context.Context, clientID uuid.UUID) (*points.Profile, error)
	ListTransactions(ctx context.Context, clientID uuid.UUID, limit int32) ([]*points.Movement, error)
	ListTransactionsAfter(ctx context.Context, clientID uuid.UUID, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*points.Movement, error)
}

type ClientOrderReadStore interface {
	ListClosedByClient(ctx context.Context, clientID uuid.UUID, limit int32) ([]*order.Order, error)
	ListClosedByClientAfter(ctx context.Context, clientID uuid.UUID, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*order.Order, error)
}

type ClientQueries interface {
	Points(ctx context.Context, clientID uuid.UUID) (*PointsView, error)
	Profile(ctx context.Context, clientID uuid.UUID) (*ProfileView, error)
	Transactions(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*PointsTransactionView, *Cursor, error)
	Orders(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type clientQueriesImpl struct {
	clients ClientReadStore
	orders  ClientOrderReadStore
}

func NewClientQueries(clients ClientReadStore, orders ClientOrderReadStore) ClientQueries {
	return &clientQueriesImpl{
		clients: clients,
		orders:  orders,
	}
}

func (q *clientQueriesImpl) Points(ctx context.Context, clientID uuid.UUID) (*PointsView, error) {
	account, err := q.clients.FindAccount(ctx, clientID)
	if err != nil {
		return nil, clientLookupErr(err)
	}
	return NewPointsView(account), nil
}

func (q *clientQueriesImpl) Profile(ctx context.Context, clientID uuid.UUID) (*ProfileView, error) {
	profile, err := q.clients.FindProfile(ctx, clientID)
	if err != nil {
		return nil, clientLookupErr(err)
	}
	return NewProfileView(profile), nil
}

// Transactions pages the journal newest first. Movements written by one close share a timestamp
// and keep EARNED ahead of SPENT across page boundaries.
func (q *clientQueriesImpl) Transactions(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*PointsTransactionView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*points.Movement
	var err error
	if !hasCursor(cursor) {
		rows, err = q.clients.ListTransactions(ctx, clientID, fetchLimit(limit))
	} else {
		afterAt, afterID, derr := decodeUUIDCursor(cursor)
		if derr != nil {
			return nil, nil, invalidCursor()
		}
		rows, err = q.clients.ListTransactionsAfter(ctx, clientID, afterAt, afterID, fetchLimit(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID.String())}
		rows = rows[:limit]
	}
	out := make([]*PointsTransactionView, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewPointsTransactionView(m))
	}
	return out, next, nil
}

// Orders pages closed orders by closing time, most recent first.
func (q *clientQueriesImpl) Orders(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*order.Order
	var err error
	if !hasCursor(cursor) {
		rows, err = q.orders.ListClosedByClient(ctx, clientID, fetchLimit(limit))
	} else {
		afterAt, afterID, derr := decodeUUIDCursor(cursor)
		if derr != nil {
			return nil, nil, invalidCursor()
		}
		rows, err = q.orders.ListClosedByClientAfter(ctx, clientID, afterAt, afterID, fetchLimit(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		// closed_at is set on every row the store returns
		next = &Cursor{After: EncodeAfterCursor(*last.ClosedAt(), last.ID().String())}
		rows = rows[:limit]
	}
	out := make([]*OrderView, 0, len(rows))
	for _, o := range rows {
		out = append(out, NewOrderView(o))
	}
	return out, next, nil
}

func clientLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrClientNotFound
	}
	return err
}
