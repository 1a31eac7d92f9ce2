package queries

import (
	"time"

	"loyalty-engine/internal/domain/benefit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BenefitView represents read-optimized benefit data
type BenefitView struct {
	ID             uuid.UUID        `json:"id"`
	Type           string           `json:"type"`
	PointsRequired int              `json:"pointsRequired"`
	DiscountType   *string          `json:"discountType,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discountValue,omitempty"`
	ApplicableDays []string         `json:"applicableDays"`
	ProductIDs     []int64          `json:"productIds,omitempty"`
	CreatedBy      string           `json:"createdBy"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// AvailableBenefitsView is the outcome of an eligibility listing.
// Day is empty when the day filter was skipped.
type AvailableBenefitsView struct {
	Points   decimal.Decimal `json:"points"`
	Day      string          `json:"day,omitempty"`
	Benefits []*BenefitView  `json:"benefits"`
}

type PointsView struct {
	ClientID      uuid.UUID       `json:"clientId"`
	CurrentPoints decimal.Decimal `json:"currentPoints"`
	TotalEarned   decimal.Decimal `json:"totalEarned"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
}

type ProfileView struct {
	ClientID      uuid.UUID       `json:"clientId"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	CurrentPoints decimal.Decimal `json:"currentPoints"`
}

type PointsTransactionView struct {
	ID           uuid.UUID       `json:"id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	OrderID      *uuid.UUID      `json:"orderId,omitempty"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type OrderLineView struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	FreeQuantity int             `json:"freeQuantity"`
}

type OrderView struct {
	ID             uuid.UUID         `json:"id"`
	Status         string            `json:"status"`
	ClientID       *uuid.UUID        `json:"clientId,omitempty"`
	Lines          []OrderLineView   `json:"productOrders"`
	TotalPrice     decimal.Decimal   `json:"totalPrice"`
	FinalPrice     *decimal.Decimal  `json:"finalPrice,omitempty"`
	AppliedBenefit *benefit.Snapshot `json:"appliedBenefit,omitempty"`
	PointsUsed     decimal.Decimal   `json:"pointsUsed"`
	PointsAwarded  decimal.Decimal   `json:"pointsAwarded"`
	ConversionRate *decimal.Decimal  `json:"conversionRate,omitempty"`
	ClosedAt       *time.Time        `json:"closedAt,omitempty"`
	ClosedBy       *string           `json:"closedBy,omitempty"`
	CreatedBy      string            `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ConversionRateView is the effective rate. UpdatedAt is nil while the configured default applies.
type ConversionRateView struct {
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
	UpdatedBy *string         `json:"updatedBy,omitempty"`
}

type ConversionRateEntryView struct {
	ID        int64            `json:"id"`
	ChangedAt time.Time        `json:"changedAt"`
	ChangedBy string           `json:"changedBy"`
	OldValue  *decimal.Decimal `json:"oldValue"`
	NewValue  decimal.Decimal  `json:"newValue"`
}
