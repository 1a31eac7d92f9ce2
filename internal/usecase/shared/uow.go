package shared

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Benefits() BenefitRepository
	Ledger() PointsLedger
	Orders() OrderRepository
	Conversion() ConversionRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	ProductsByIDs(ctx context.Context, ids []int64) (map[int64]ProductSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, actorID uuid.UUID) (*IdempotencyRecord, error)
}

// BenefitFingerprintIndex is the partial unique index over live benefit fingerprints.
const BenefitFingerprintIndex = "ux_benefits_fingerprint_live"

type BenefitRepository interface {
	// Create fails with a DUPLICATE_KEY repository error when a live benefit has the same fingerprint.
	Create(ctx context.Context, b *benefit.Benefit) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	// FindLiveForShare locks the row against concurrent deletion for the rest of the transaction.
	FindLiveForShare(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error)
}

// PointsLedger is the only writer of client balances.
type PointsLedger interface {
	LockAccount(ctx context.Context, clientID uuid.UUID) (*points.Account, error)
	// Redeem returns points.ErrInsufficientBalance and leaves the balance untouched when it would go negative.
	Redeem(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID, at time.Time) (decimal.Decimal, error)
	Award(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID, at time.Time) (decimal.Decimal, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// SaveClosed returns order.ErrAlreadyClosed when the row is no longer OPEN.
	SaveClosed(ctx context.Context, o *order.Order) error
}

type ConversionRepository interface {
	Lock(ctx context.Context) error
	Latest(ctx context.Context) (*conversion.Entry, error)
	Append(ctx context.Context, e *conversion.Entry) (*conversion.Entry, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, actorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, key, actorID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, key, actorID, orderID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
