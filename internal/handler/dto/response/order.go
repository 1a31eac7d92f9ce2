package response

import (
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineResponse struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	FreeQuantity int             `json:"freeQuantity"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	Status         string              `json:"status"`
	ClientID       *string             `json:"clientId,omitempty"`
	ProductOrders  []OrderLineResponse `json:"productOrders"`
	TotalPrice     decimal.Decimal     `json:"totalPrice"`
	FinalPrice     *decimal.Decimal    `json:"finalPrice,omitempty"`
	AppliedBenefit *benefit.Snapshot   `json:"appliedBenefit,omitempty"`
	PointsUsed     decimal.Decimal     `json:"pointsUsed"`
	PointsAwarded  decimal.Decimal     `json:"pointsAwarded"`
	ConversionRate *decimal.Decimal    `json:"conversionRate,omitempty"`
	ClosedAt       *int64              `json:"closedAt,omitempty"`
	ClosedBy       *string             `json:"closedBy,omitempty"`
	CreatedBy      string              `json:"createdBy"`
	CreatedAt      int64               `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			FreeQuantity: l.FreeQuantity,
		}
	}
	return &OrderResponse{
		ID:             v.ID.String(),
		Status:         v.Status,
		ClientID:       uuidPtrString(v.ClientID),
		ProductOrders:  lines,
		TotalPrice:     v.TotalPrice,
		FinalPrice:     v.FinalPrice,
		AppliedBenefit: v.AppliedBenefit,
		PointsUsed:     v.PointsUsed,
		PointsAwarded:  v.PointsAwarded,
		ConversionRate: v.ConversionRate,
		ClosedAt:       unixPtr(v.ClosedAt),
		ClosedBy:       v.ClosedBy,
		CreatedBy:      v.CreatedBy,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

type OrderPageResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

func NewOrderPage(views []*queries.OrderView, next *queries.Cursor) *OrderPageResponse {
	return &OrderPageResponse{
		Orders:     FromOrderViews(views),
		NextCursor: cursorAfter(next),
	}
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
