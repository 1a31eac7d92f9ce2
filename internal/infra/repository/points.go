package repository

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=points.go -destination=../../../tests/mock/repository/points_mock.go -package=repositorymock

type PointsWriteQueries interface {
	GetClient(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Clients, error)
	GetClientForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Clients, error)
	RedeemPoints(ctx context.Context, db query.DBTX, arg query.ChangePointsParams) (query.Clients, error)
	AwardPoints(ctx context.Context, db query.DBTX, arg query.ChangePointsParams) (query.Clients, error)
	CreatePointsTransaction(ctx context.Context, db query.DBTX, arg query.CreatePointsTransactionParams) error
}

// PointsLedger mutates client balances with single conditional statements and journals every movement.
type PointsLedger struct {
	queries PointsWriteQueries
	db      query.DBTX
}

func NewPointsLedger(queries PointsWriteQueries, db query.DBTX) *PointsLedger {
	return &PointsLedger{
		queries: queries,
		db:      db,
	}
}

func (l *PointsLedger) LockAccount(ctx context.Context, clientID uuid.UUID) (*points.Account, error) {
	row, err := l.queries.GetClientForUpdate(ctx, l.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock client", err)
	}
	return AccountFromInfra(row)
}

func (l *PointsLedger) Redeem(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID, at time.Time) (decimal.Decimal, error) {
	m, err := points.NewMovement(clientID, points.KindSpent, amount, orderID, at)
	if err != nil {
		return decimal.Zero, err
	}

	row, err := l.queries.RedeemPoints(ctx, l.db, query.ChangePointsParams{
		ID:     clientID,
		Amount: pgconv.NumericFromDecimal(m.Amount),
	})
	if err != nil {
		switch {
		case pgconv.IsNoRows(err):
			return decimal.Zero, l.missingOrInsufficient(ctx, clientID)
		case infra.KindOf(err) == infra.KindCheckViolated:
			return decimal.Zero, points.ErrInsufficientBalance
		default:
			return decimal.Zero, infra.WrapRepoErr("failed to redeem points", err)
		}
	}

	return l.journal(ctx, m, row)
}

func (l *PointsLedger) Award(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID, at time.Time) (decimal.Decimal, error) {
	m, err := points.NewMovement(clientID, points.KindEarned, amount, orderID, at)
	if err != nil {
		return decimal.Zero, err
	}

	row, err := l.queries.AwardPoints(ctx, l.db, query.ChangePointsParams{
		ID:     clientID,
		Amount: pgconv.NumericFromDecimal(m.Amount),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Zero, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("failed to award points", err)
	}

	return l.journal(ctx, m, row)
}

func (l *PointsLedger) journal(ctx context.Context, m *points.Movement, row query.Clients) (decimal.Decimal, error) {
	balance, err := pgconv.DecimalFromNumeric(row.CurrentPoints)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to decode balance", err, infra.KindDBFailure)
	}
	m.BalanceAfter = balance

	err = l.queries.CreatePointsTransaction(ctx, l.db, query.CreatePointsTransactionParams{
		ID:           m.ID,
		ClientID:     m.ClientID,
		Kind:         m.Kind.String(),
		Amount:       pgconv.NumericFromDecimal(m.Amount),
		OrderID:      pgconv.UUIDPtrToPgtype(m.OrderID),
		BalanceAfter: pgconv.NumericFromDecimal(m.BalanceAfter),
		CreatedAt:    pgconv.TimeToPgtype(m.CreatedAt),
	})
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to journal points movement", err)
	}
	return balance, nil
}

// missingOrInsufficient tells an unknown client apart from a short balance after the guarded update matched nothing.
func (l *PointsLedger) missingOrInsufficient(ctx context.Context, clientID uuid.UUID) error {
	if _, err := l.queries.GetClient(ctx, l.db, clientID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to get client", err)
	}
	return points.ErrInsufficientBalance
}

func AccountFromInfra(row query.Clients) (*points.Account, error) {
	current, err := pgconv.DecimalFromNumeric(row.CurrentPoints)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode balance", err, infra.KindDBFailure)
	}
	earned, err := pgconv.DecimalFromNumeric(row.TotalEarned)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode total earned", err, infra.KindDBFailure)
	}
	spent, err := pgconv.DecimalFromNumeric(row.TotalSpent)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode total spent", err, infra.KindDBFailure)
	}
	return &points.Account{
		ClientID:    row.ID,
		Current:     current,
		TotalEarned: earned,
		TotalSpent:  spent,
	}, nil
}
