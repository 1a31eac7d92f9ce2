package benefit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the copy of a benefit captured on an order at close time.
// Deleting the benefit later does not touch it.
type Snapshot struct {
	ID             uuid.UUID        `json:"id"`
	Type           Type             `json:"type"`
	PointsRequired int              `json:"pointsRequired"`
	DiscountType   *DiscountType    `json:"discountType,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discountValue,omitempty"`
	ApplicableDays []string         `json:"applicableDays"`
	ProductIDs     []int64          `json:"productIds,omitempty"`
	CapturedAt     time.Time        `json:"capturedAt"`
}

func (b *Benefit) Snapshot(at time.Time) Snapshot {
	s := Snapshot{
		ID:             b.id,
		Type:           b.typ,
		PointsRequired: b.pointsRequired,
		ApplicableDays: b.days.Names(),
		ProductIDs:     b.ProductIDs(),
		CapturedAt:     at,
	}
	if b.typ == TypeDiscount {
		dt := b.discountType
		v := b.discountValue
		s.DiscountType = &dt
		s.DiscountValue = &v
	}
	return s
}
