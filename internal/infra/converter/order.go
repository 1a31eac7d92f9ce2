package converter

import (
	"encoding/json"
	"fmt"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"
)

func OrderToInfra(o *order.Order) (query.CreateOrderParams, []query.CreateProductOrderParams) {
	params := query.CreateOrderParams{
		ID:         o.ID(),
		TotalPrice: pgconv.NumericFromDecimal(o.TotalPrice()),
		CreatedBy:  o.CreatedBy(),
		CreatedAt:  pgconv.TimeToPgtype(o.CreatedAt()),
	}

	lines := o.Lines()
	lineParams := make([]query.CreateProductOrderParams, 0, len(lines))
	for i, l := range lines {
		lineParams = append(lineParams, query.CreateProductOrderParams{
			OrderID:      o.ID(),
			LineNo:       int32(i + 1), // #nosec G115 -- line count is small
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     int32(l.Quantity), // #nosec G115 -- bounded to MaxInt32 by order.New
			UnitPrice:    pgconv.NumericFromDecimal(l.UnitPrice),
			FreeQuantity: int32(l.FreeQuantity), // #nosec G115 -- 0 or 1
		})
	}
	return params, lineParams
}

func ClosedOrderToInfra(o *order.Order) (query.CloseOrderParams, error) {
	if !o.IsClosed() || o.ClientID() == nil || o.ClosedAt() == nil {
		return query.CloseOrderParams{}, fmt.Errorf("order %s is not closed", o.ID())
	}

	var snapshot []byte
	if b := o.AppliedBenefit(); b != nil {
		raw, err := json.Marshal(b)
		if err != nil {
			return query.CloseOrderParams{}, err
		}
		snapshot = raw
	}

	return query.CloseOrderParams{
		ID:             o.ID(),
		ClientID:       *o.ClientID(),
		FinalPrice:     pgconv.NumericFromDecimalPtr(o.FinalPrice()),
		AppliedBenefit: snapshot,
		PointsUsed:     pgconv.NumericFromDecimal(o.PointsUsed()),
		PointsAwarded:  pgconv.NumericFromDecimal(o.PointsAwarded()),
		ConversionRate: pgconv.NumericFromDecimalPtr(o.ConversionRate()),
		ClosedAt:       pgconv.TimeToPgtype(*o.ClosedAt()),
		ClosedBy:       pgconv.StringPtrToPgtype(o.ClosedBy()),
	}, nil
}

func LinesFromInfra(rows []query.ProductOrders) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, order.Line{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Quantity:     int(row.Quantity),
			UnitPrice:    price,
			FreeQuantity: int(row.FreeQuantity),
		})
	}
	return lines, nil
}

func SnapshotFromInfra(raw []byte) (*benefit.Snapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var snap benefit.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func OrderFromInfra(row query.Orders, lineRows []query.ProductOrders) (*order.Order, error) {
	lines, err := LinesFromInfra(lineRows)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	final, err := pgconv.DecimalPtrFromNumeric(row.FinalPrice)
	if err != nil {
		return nil, err
	}
	used, err := pgconv.DecimalFromNumeric(row.PointsUsed)
	if err != nil {
		return nil, err
	}
	awarded, err := pgconv.DecimalFromNumeric(row.PointsAwarded)
	if err != nil {
		return nil, err
	}
	rate, err := pgconv.DecimalPtrFromNumeric(row.ConversionRate)
	if err != nil {
		return nil, err
	}
	snap, err := SnapshotFromInfra(row.AppliedBenefit)
	if err != nil {
		return nil, fmt.Errorf("order %s: applied benefit: %w", row.ID, err)
	}

	return order.Reconstruct(order.State{
		ID:             row.ID,
		Status:         order.Status(row.Status),
		ClientID:       pgconv.UUIDPtrFromPgtype(row.ClientID),
		Lines:          lines,
		TotalPrice:     total,
		FinalPrice:     final,
		AppliedBenefit: snap,
		PointsUsed:     used,
		PointsAwarded:  awarded,
		ConversionRate: rate,
		ClosedAt:       pgconv.TimePtrFromPgtype(row.ClosedAt),
		ClosedBy:       pgconv.StringPtrFromPgtype(row.ClosedBy),
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt.Time,
	}), nil
}

// FreeLines lists the line numbers carrying a free unit, for persisting after close.
func FreeLines(o *order.Order) []query.SetProductOrderFreeQuantityParams {
	var out []query.SetProductOrderFreeQuantityParams
	for i, l := range o.Lines() {
		if l.FreeQuantity > 0 {
			out = append(out, query.SetProductOrderFreeQuantityParams{
				OrderID:      o.ID(),
				LineNo:       int32(i + 1),          // #nosec G115 -- line count is small
				FreeQuantity: int32(l.FreeQuantity), // #nosec G115 -- 0 or 1
			})
		}
	}
	return out
}
