package response

import (
	"loyalty-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

const conversionRateDescription = "Currency amount required to earn 1 point"

type ConversionRateResponse struct {
	ConversionRate decimal.Decimal `json:"conversionRate"`
	Description    string          `json:"description"`
	UpdatedAt      *int64          `json:"updatedAt,omitempty"`
	UpdatedBy      *string         `json:"updatedBy,omitempty"`
}

func FromConversionRateView(v *queries.ConversionRateView) *ConversionRateResponse {
	return &ConversionRateResponse{
		ConversionRate: v.Rate,
		Description:    conversionRateDescription,
		UpdatedAt:      unixPtr(v.UpdatedAt),
		UpdatedBy:      v.UpdatedBy,
	}
}

type ConversionRateEntryResponse struct {
	ID        int64            `json:"id"`
	ChangedAt int64            `json:"changedAt"`
	ChangedBy string           `json:"changedBy"`
	OldValue  *decimal.Decimal `json:"oldValue"`
	NewValue  decimal.Decimal  `json:"newValue"`
}

func FromConversionRateEntryView(v *queries.ConversionRateEntryView) *ConversionRateEntryResponse {
	return &ConversionRateEntryResponse{
		ID:        v.ID,
		ChangedAt: v.ChangedAt.Unix(),
		ChangedBy: v.ChangedBy,
		OldValue:  v.OldValue,
		NewValue:  v.NewValue,
	}
}

func FromConversionRateEntryViews(views []*queries.ConversionRateEntryView) []*ConversionRateEntryResponse {
	res := make([]*ConversionRateEntryResponse, len(views))
	for i, v := range views {
		res[i] = FromConversionRateEntryView(v)
	}
	return res
}

type ConversionRateHistoryResponse struct {
	History    []*ConversionRateEntryResponse `json:"history"`
	NextCursor string                         `json:"nextCursor,omitempty"`
}

func NewConversionRateHistory(views []*queries.ConversionRateEntryView, next *queries.Cursor) *ConversionRateHistoryResponse {
	return &ConversionRateHistoryResponse{
		History:    FromConversionRateEntryViews(views),
		NextCursor: cursorAfter(next),
	}
}
