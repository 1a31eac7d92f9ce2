package queries

import (
	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/domain/points"
)

func NewBenefitView(b *benefit.Benefit) *BenefitView {
	v := &BenefitView{
		ID:             b.ID(),
		Type:           b.Type().String(),
		PointsRequired: b.PointsRequired(),
		ApplicableDays: b.ApplicableDays().Names(),
		CreatedBy:      b.CreatedBy(),
		CreatedAt:      b.CreatedAt(),
	}
	switch b.Type() {
	case benefit.TypeDiscount:
		dt := b.DiscountType().String()
		dv := b.DiscountValue()
		v.DiscountType = &dt
		v.DiscountValue = &dv
	case benefit.TypeFreeProduct:
		v.ProductIDs = b.ProductIDs()
	}
	return v
}

func NewBenefitViews(benefits []*benefit.Benefit) []*BenefitView {
	out := make([]*BenefitView, 0, len(benefits))
	for _, b := range benefits {
		out = append(out, NewBenefitView(b))
	}
	return out
}

func NewPointsView(a *points.Account) *PointsView {
	return &PointsView{
		ClientID:      a.ClientID,
		CurrentPoints: a.Current,
		TotalEarned:   a.TotalEarned,
		TotalSpent:    a.TotalSpent,
	}
}

func NewProfileView(p *points.Profile) *ProfileView {
	return &ProfileView{
		ClientID:      p.ClientID,
		Username:      p.Username,
		Email:         p.Email,
		CurrentPoints: p.Current,
	}
}

func NewPointsTransactionView(m *points.Movement) *PointsTransactionView {
	return &PointsTransactionView{
		ID:           m.ID,
		Kind:         m.Kind.String(),
		Amount:       m.Amount,
		OrderID:      m.OrderID,
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}

func NewOrderView(o *order.Order) *OrderView {
	lines := o.Lines()
	lineViews := make([]OrderLineView, 0, len(lines))
	for _, l := range lines {
		lineViews = append(lineViews, OrderLineView{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			FreeQuantity: l.FreeQuantity,
		})
	}
	return &OrderView{
		ID:             o.ID(),
		Status:         o.Status().String(),
		ClientID:       o.ClientID(),
		Lines:          lineViews,
		TotalPrice:     o.TotalPrice(),
		FinalPrice:     o.FinalPrice(),
		AppliedBenefit: o.AppliedBenefit(),
		PointsUsed:     o.PointsUsed(),
		PointsAwarded:  o.PointsAwarded(),
		ConversionRate: o.ConversionRate(),
		ClosedAt:       o.ClosedAt(),
		ClosedBy:       o.ClosedBy(),
		CreatedBy:      o.CreatedBy(),
		CreatedAt:      o.CreatedAt(),
	}
}

func NewConversionRateEntryView(e *conversion.Entry) *ConversionRateEntryView {
	return &ConversionRateEntryView{
		ID:        e.ID,
		ChangedAt: e.ChangedAt,
		ChangedBy: e.ChangedBy,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
	}
}
