package response

import (
	"loyalty-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PointsResponse struct {
	ClientID      string          `json:"clientId"`
	CurrentPoints decimal.Decimal `json:"currentPoints"`
	TotalEarned   decimal.Decimal `json:"totalEarned"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
}

func FromPointsView(v *queries.PointsView) *PointsResponse {
	return &PointsResponse{
		ClientID:      v.ClientID.String(),
		CurrentPoints: v.CurrentPoints,
		TotalEarned:   v.TotalEarned,
		TotalSpent:    v.TotalSpent,
	}
}

type ProfileResponse struct {
	ClientID      string          `json:"clientId"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	CurrentPoints decimal.Decimal `json:"currentPoints"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		ClientID:      v.ClientID.String(),
		Username:      v.Username,
		Email:         v.Email,
		CurrentPoints: v.CurrentPoints,
	}
}

type PointsTransactionResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	OrderID      *string         `json:"orderId,omitempty"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	CreatedAt    int64           `json:"createdAt"`
}

func FromPointsTransactionViews(views []*queries.PointsTransactionView) []*PointsTransactionResponse {
	res := make([]*PointsTransactionResponse, len(views))
	for i, v := range views {
		res[i] = &PointsTransactionResponse{
			ID:           v.ID.String(),
			Kind:         v.Kind,
			Amount:       v.Amount,
			OrderID:      uuidPtrString(v.OrderID),
			BalanceAfter: v.BalanceAfter,
			CreatedAt:    v.CreatedAt.Unix(),
		}
	}
	return res
}

type PointsTransactionPageResponse struct {
	Transactions []*PointsTransactionResponse `json:"transactions"`
	NextCursor   string                       `json:"nextCursor,omitempty"`
}

func NewPointsTransactionPage(views []*queries.PointsTransactionView, next *queries.Cursor) *PointsTransactionPageResponse {
	return &PointsTransactionPageResponse{
		Transactions: FromPointsTransactionViews(views),
		NextCursor:   cursorAfter(next),
	}
}

// cursorAfter is empty on the last page.
func cursorAfter(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}
