package response

import (
	"loyalty-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BenefitResponse struct {
	ID             string           `json:"id"`
	Type           string           `json:"type"`
	PointsRequired int              `json:"pointsRequired"`
	DiscountType   *string          `json:"discountType,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discountValue,omitempty"`
	ApplicableDays []string         `json:"applicableDays"`
	ProductIDs     []int64          `json:"productIds,omitempty"`
	CreatedBy      string           `json:"createdBy"`
	CreatedAt      int64            `json:"createdAt"`
}

func FromBenefitView(v *queries.BenefitView) *BenefitResponse {
	return &BenefitResponse{
		ID:             v.ID.String(),
		Type:           v.Type,
		PointsRequired: v.PointsRequired,
		DiscountType:   v.DiscountType,
		DiscountValue:  v.DiscountValue,
		ApplicableDays: v.ApplicableDays,
		ProductIDs:     v.ProductIDs,
		CreatedBy:      v.CreatedBy,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

func FromBenefitViews(views []*queries.BenefitView) []*BenefitResponse {
	res := make([]*BenefitResponse, len(views))
	for i, v := range views {
		res[i] = FromBenefitView(v)
	}
	return res
}

type AvailableBenefitsResponse struct {
	Points   decimal.Decimal    `json:"points"`
	Day      string             `json:"day,omitempty"`
	Benefits []*BenefitResponse `json:"benefits"`
}

func FromAvailableBenefitsView(v *queries.AvailableBenefitsView) *AvailableBenefitsResponse {
	return &AvailableBenefitsResponse{
		Points:   v.Points,
		Day:      v.Day,
		Benefits: FromBenefitViews(v.Benefits),
	}
}

type DuplicateCheckResponse struct {
	Duplicate bool `json:"duplicate"`
}
