package readstore

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/converter"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order_mock.go -package=readstoremock

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Orders, error)
	ListClosedOrdersByClient(ctx context.Context, db query.DBTX, arg query.ListClosedOrdersByClientParams) ([]query.Orders, error)
	ListClosedOrdersByClientAfter(ctx context.Context, db query.DBTX, arg query.ListClosedOrdersByClientAfterParams) ([]query.Orders, error)
	ListProductOrders(ctx context.Context, db query.DBTX, orderIDs []uuid.UUID) ([]query.ProductOrders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	orders, err := r.withLines(ctx, []query.Orders{row})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

// ListClosedByClient returns the client's closed orders, most recently closed first.
func (r *OrderReadStore) ListClosedByClient(ctx context.Context, clientID uuid.UUID, limit int32) ([]*order.Order, error) {
	rows, err := r.queries.ListClosedOrdersByClient(ctx, r.db, query.ListClosedOrdersByClientParams{
		ClientID: clientID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by client", err)
	}
	return r.withLines(ctx, rows)
}

// ListClosedByClientAfter continues the listing past the order closed at afterAt with id afterID.
func (r *OrderReadStore) ListClosedByClientAfter(ctx context.Context, clientID uuid.UUID, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*order.Order, error) {
	rows, err := r.queries.ListClosedOrdersByClientAfter(ctx, r.db, query.ListClosedOrdersByClientAfterParams{
		ClientID: clientID,
		ClosedAt: pgconv.TimeToPgtype(afterAt),
		ID:       afterID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by client", err)
	}
	return r.withLines(ctx, rows)
}

// withLines loads the lines of all rows with one query.
func (r *OrderReadStore) withLines(ctx context.Context, rows []query.Orders) ([]*order.Order, error) {
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	lineRows, err := r.queries.ListProductOrders(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}

	byOrder := make(map[uuid.UUID][]query.ProductOrders, len(rows))
	for _, l := range lineRows {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OrderFromInfra(row, byOrder[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
		}
		out = append(out, o)
	}
	return out, nil
}
