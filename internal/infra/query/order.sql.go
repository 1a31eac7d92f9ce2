package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, status, client_id, total_price, final_price, applied_benefit, points_used,
       points_awarded, conversion_rate, closed_at, closed_by, created_by, created_at`

func scanOrder(row rowScanner) (Orders, error) {
	var i Orders
	err := row.Scan(
		&i.ID,
		&i.Status,
		&i.ClientID,
		&i.TotalPrice,
		&i.FinalPrice,
		&i.AppliedBenefit,
		&i.PointsUsed,
		&i.PointsAwarded,
		&i.ConversionRate,
		&i.ClosedAt,
		&i.ClosedBy,
		&i.CreatedBy,
		&i.CreatedAt,
	)
	return i, err
}

const createOrder = `
INSERT INTO orders (id, status, total_price, created_by, created_at)
VALUES ($1, 'OPEN', $2, $3, $4)
`

type CreateOrderParams struct {
	ID         uuid.UUID
	TotalPrice pgtype.Numeric
	CreatedBy  string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder, arg.ID, arg.TotalPrice, arg.CreatedBy, arg.CreatedAt)
	return err
}

const createProductOrder = `
INSERT INTO product_orders (order_id, line_no, product_id, product_name, quantity, unit_price, free_quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateProductOrderParams struct {
	OrderID      uuid.UUID
	LineNo       int32
	ProductID    int64
	ProductName  string
	Quantity     int32
	UnitPrice    pgtype.Numeric
	FreeQuantity int32
}

func (q *Queries) CreateProductOrder(ctx context.Context, db DBTX, arg CreateProductOrderParams) error {
	_, err := db.Exec(ctx, createProductOrder,
		arg.OrderID,
		arg.LineNo,
		arg.ProductID,
		arg.ProductName,
		arg.Quantity,
		arg.UnitPrice,
		arg.FreeQuantity,
	)
	return err
}

const getOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrder(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrder, id))
}

const getOrderForUpdate = getOrder + ` FOR UPDATE`

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderForUpdate, id))
}

const listClosedOrdersByClient = `SELECT ` + orderColumns + `
FROM orders
WHERE client_id = $1 AND status = 'CLOSED'
ORDER BY closed_at DESC, id DESC
LIMIT $2
`

type ListClosedOrdersByClientParams struct {
	ClientID uuid.UUID
	Limit    int32
}

func (q *Queries) ListClosedOrdersByClient(ctx context.Context, db DBTX, arg ListClosedOrdersByClientParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listClosedOrdersByClient, arg.ClientID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

const listClosedOrdersByClientAfter = `SELECT ` + orderColumns + `
FROM orders
WHERE client_id = $1 AND status = 'CLOSED'
  AND (closed_at, id) < ($2, $3)
ORDER BY closed_at DESC, id DESC
LIMIT $4
`

type ListClosedOrdersByClientAfterParams struct {
	ClientID uuid.UUID
	ClosedAt pgtype.Timestamptz
	ID       uuid.UUID
	Limit    int32
}

func (q *Queries) ListClosedOrdersByClientAfter(ctx context.Context, db DBTX, arg ListClosedOrdersByClientAfterParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listClosedOrdersByClientAfter, arg.ClientID, arg.ClosedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]Orders, error) {
	defer rows.Close()
	items := []Orders{}
	for rows.Next() {
		i, err := scanOrder(rows)
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

const listProductOrders = `
SELECT order_id, line_no, product_id, product_name, quantity, unit_price, free_quantity
FROM product_orders
WHERE order_id = ANY($1::uuid[])
ORDER BY order_id, line_no
`

func (q *Queries) ListProductOrders(ctx context.Context, db DBTX, orderIDs []uuid.UUID) ([]ProductOrders, error) {
	rows, err := db.Query(ctx, listProductOrders, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProductOrders{}
	for rows.Next() {
		var i ProductOrders
		if err := rows.Scan(
			&i.OrderID,
			&i.LineNo,
			&i.ProductID,
			&i.ProductName,
			&i.Quantity,
			&i.UnitPrice,
			&i.FreeQuantity,
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

const setProductOrderFreeQuantity = `
UPDATE product_orders SET free_quantity = $3
WHERE order_id = $1 AND line_no = $2
`

type SetProductOrderFreeQuantityParams struct {
	OrderID      uuid.UUID
	LineNo       int32
	FreeQuantity int32
}

func (q *Queries) SetProductOrderFreeQuantity(ctx context.Context, db DBTX, arg SetProductOrderFreeQuantityParams) error {
	_, err := db.Exec(ctx, setProductOrderFreeQuantity, arg.OrderID, arg.LineNo, arg.FreeQuantity)
	return err
}

// Only an OPEN order transitions; a concurrent close makes this match zero rows.
const closeOrder = `
UPDATE orders
SET status          = 'CLOSED',
    client_id       = $2,
    final_price     = $3,
    applied_benefit = $4,
    points_used     = $5,
    points_awarded  = $6,
    conversion_rate = $7,
    closed_at       = $8,
    closed_by       = $9
WHERE id = $1 AND status = 'OPEN'
`

type CloseOrderParams struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	FinalPrice     pgtype.Numeric
	AppliedBenefit []byte
	PointsUsed     pgtype.Numeric
	PointsAwarded  pgtype.Numeric
	ConversionRate pgtype.Numeric
	ClosedAt       pgtype.Timestamptz
	ClosedBy       pgtype.Text
}

func (q *Queries) CloseOrder(ctx context.Context, db DBTX, arg CloseOrderParams) (int64, error) {
	result, err := db.Exec(ctx, closeOrder,
		arg.ID,
		arg.ClientID,
		arg.FinalPrice,
		arg.AppliedBenefit,
		arg.PointsUsed,
		arg.PointsAwarded,
		arg.ConversionRate,
		arg.ClosedAt,
		arg.ClosedBy,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
