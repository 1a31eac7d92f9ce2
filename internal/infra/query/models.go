package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Benefits struct {
	ID             uuid.UUID
	Type           string
	PointsRequired int32
	DiscountType   pgtype.Text
	DiscountValue  pgtype.Numeric
	ApplicableDays []string
	ProductIds     []int64
	Fingerprint    string
	CreatedBy      string
	CreatedAt      pgtype.Timestamptz
	DeletedAt      pgtype.Timestamptz
}

type Clients struct {
	ID            uuid.UUID
	Username      string
	Email         string
	CurrentPoints pgtype.Numeric
	TotalEarned   pgtype.Numeric
	TotalSpent    pgtype.Numeric
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Products struct {
	ID     int64
	Name   string
	Price  pgtype.Numeric
	Active bool
}

type Orders struct {
	ID             uuid.UUID
	Status         string
	ClientID       pgtype.UUID
	TotalPrice     pgtype.Numeric
	FinalPrice     pgtype.Numeric
	AppliedBenefit []byte
	PointsUsed     pgtype.Numeric
	PointsAwarded  pgtype.Numeric
	ConversionRate pgtype.Numeric
	ClosedAt       pgtype.Timestamptz
	ClosedBy       pgtype.Text
	CreatedBy      string
	CreatedAt      pgtype.Timestamptz
}

type ProductOrders struct {
	OrderID      uuid.UUID
	LineNo       int32
	ProductID    int64
	ProductName  string
	Quantity     int32
	UnitPrice    pgtype.Numeric
	FreeQuantity int32
}

type PointsTransactions struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	Kind         string
	Amount       pgtype.Numeric
	OrderID      pgtype.UUID
	BalanceAfter pgtype.Numeric
	CreatedAt    pgtype.Timestamptz
}

type ConversionRateHistory struct {
	ID        int64
	ChangedAt pgtype.Timestamptz
	ChangedBy string
	OldValue  pgtype.Numeric
	NewValue  pgtype.Numeric
}

type IdempotencyKeys struct {
	Key           uuid.UUID
	ActorID       uuid.UUID
	Endpoint      string
	RequestHash   string
	Status        string
	ResultOrderID pgtype.UUID
	ExpiresAt     pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
