package repository

import (
	"context"

	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/converter"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order_mock.go -package=repositorymock

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db query.DBTX, arg query.CreateOrderParams) error
	CreateProductOrder(ctx context.Context, db query.DBTX, arg query.CreateProductOrderParams) error
	GetOrderForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Orders, error)
	ListProductOrders(ctx context.Context, db query.DBTX, orderIDs []uuid.UUID) ([]query.ProductOrders, error)
	CloseOrder(ctx context.Context, db query.DBTX, arg query.CloseOrderParams) (int64, error)
	SetProductOrderFreeQuantity(ctx context.Context, db query.DBTX, arg query.SetProductOrderFreeQuantityParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      query.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db query.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	params, lines := converter.OrderToInfra(o)
	if err := r.queries.CreateOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for _, line := range lines {
		if err := r.queries.CreateProductOrder(ctx, r.db, line); err != nil {
			return infra.WrapRepoErr("failed to create order line", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	lineRows, err := r.queries.ListProductOrders(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}

	o, err := converter.OrderFromInfra(row, lineRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
	}
	return o, nil
}

// SaveClosed persists the close as a guarded OPEN -> CLOSED transition.
func (r *OrderRepository) SaveClosed(ctx context.Context, o *order.Order) error {
	params, err := converter.ClosedOrderToInfra(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode closed order", err, infra.KindDBFailure)
	}

	affected, err := r.queries.CloseOrder(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to close order", err)
	}
	if affected == 0 {
		return order.ErrAlreadyClosed
	}

	for _, free := range converter.FreeLines(o) {
		if err := r.queries.SetProductOrderFreeQuantity(ctx, r.db, free); err != nil {
			return infra.WrapRepoErr("failed to mark free line", err)
		}
	}
	return nil
}
