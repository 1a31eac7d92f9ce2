package request

import (
	"loyalty-engine/internal/domain/benefit"

	"github.com/shopspring/decimal"
)

// CreateBenefitRequest is also the body of the duplicate check.
// Field combinations are validated by the domain so every problem is reported per field.
type CreateBenefitRequest struct {
	Type           string           `json:"type"`
	PointsRequired int              `json:"pointsRequired"`
	DiscountType   *string          `json:"discountType,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discountValue,omitempty"`
	ApplicableDays []string         `json:"applicableDays"`
	ProductIDs     []int64          `json:"productIds,omitempty"`
}

func (r CreateBenefitRequest) ToDefinition() benefit.Definition {
	return benefit.Definition{
		Type:           r.Type,
		PointsRequired: r.PointsRequired,
		DiscountType:   r.DiscountType,
		DiscountValue:  r.DiscountValue,
		ApplicableDays: r.ApplicableDays,
		ProductIDs:     r.ProductIDs,
	}
}
