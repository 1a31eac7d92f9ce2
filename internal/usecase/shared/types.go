package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductSnapshot struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	ActorID       uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)
