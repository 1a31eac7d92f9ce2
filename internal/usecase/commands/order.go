package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/domain/eligibility"
	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

const (
	createOrderEndpoint = "POST /orders"

	notificationKindPoints  = "points"
	notificationTopicEarned = "points_awarded"
)

type OrderLineInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderInput struct {
	Lines []OrderLineInput `json:"lines"`
}

type CloseOrderInput struct {
	OrderID   uuid.UUID
	ClientID  *uuid.UUID
	BenefitID *uuid.UUID
}

type CreateOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderCommands interface {
	// Create opens an order with unit prices captured from the product table.
	// A non-nil idempotencyKey replays the first result for an identical request.
	Create(ctx context.Context, in CreateOrderInput, actor user.Actor, idempotencyKey *uuid.UUID) (*CreateOrderResult, error)
	// Close settles an open order: optional benefit redemption, points award and the
	// OPEN -> CLOSED transition commit together or not at all.
	Close(ctx context.Context, in CloseOrderInput, actor user.Actor) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	orders   queries.OrderQueries
	calendar *shared.Calendar
	settings shared.LoyaltySettings
	metrics  Metrics
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	orders queries.OrderQueries,
	calendar *shared.Calendar,
	settings shared.LoyaltySettings,
	metrics Metrics,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:      uow,
		orders:   orders,
		calendar: calendar,
		settings: settings,
		metrics:  metrics,
	}
}

func (uc *orderUseCaseImpl) Create(
	ctx context.Context,
	in CreateOrderInput,
	actor user.Actor,
	idempotencyKey *uuid.UUID,
) (*CreateOrderResult, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}
	requestHash := uc.calculateRequestHash(in)

	var (
		orderID  uuid.UUID
		replayed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false
		now := uc.calendar.Now()

		if idempotencyKey != nil {
			prior, err := uc.handleIdempotency(ctx, tx, *idempotencyKey, actor.ID, requestHash, now)
			if err != nil {
				return err
			}
			if prior != nil {
				orderID = *prior
				replayed = true
				return nil
			}
		}

		lines, err := uc.captureLines(ctx, tx, in)
		if err != nil {
			return err
		}
		o, err := order.New(lines, actor.Label(), now)
		if err != nil {
			return errs.Invalid("lines", err.Error())
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *idempotencyKey, actor.ID, o.ID()); err != nil {
				return err
			}
		}
		orderID = o.ID()
		return nil
	})
	if err != nil {
		return nil, markUnexpected(err)
	}

	if !replayed {
		uc.metrics.OrderCreated()
	}

	// Read-after-write: the replayed order may have been closed since.
	view, err := uc.orders.Get(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateOrderResult{Order: view, IsReplayed: replayed}, nil
}

// handleIdempotency returns the order of a completed identical request, or nil when this request owns the key.
func (uc *orderUseCaseImpl) handleIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key, actorID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(uc.settings.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, actorID, createOrderEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, actorID)
	if err != nil {
		return nil, err
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, actorID, requestHash, expiresAt)
		if err != nil {
			return nil, err
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.New("completed request missing result order ID")
		}
		return existing.ResultOrderID, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *orderUseCaseImpl) captureLines(ctx context.Context, tx shared.Tx, in CreateOrderInput) ([]order.Line, error) {
	ids := make([]int64, 0, len(in.Lines))
	for _, l := range in.Lines {
		ids = append(ids, l.ProductID)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	products, err := tx.Reads().ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var verrs errs.ValidationErrors
	lines := make([]order.Line, 0, len(in.Lines))
	for i, l := range in.Lines {
		p, ok := products[l.ProductID]
		if !ok {
			verrs.Add(fmt.Sprintf("lines[%d].productId", i), "unknown or inactive product")
			continue
		}
		lines = append(lines, order.Line{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    l.Quantity,
			UnitPrice:   p.Price,
		})
	}
	if err := verrs.Err(); err != nil {
		return nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	return lines, nil
}

func (uc *orderUseCaseImpl) Close(ctx context.Context, in CloseOrderInput, actor user.Actor) (*queries.OrderView, error) {
	var closed *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.settle(ctx, tx, in, actor)
		if err != nil {
			return err
		}
		closed = o
		return nil
	})
	if err != nil {
		uc.recordRejection(err)
		return nil, markUnexpected(err)
	}

	benefitType := ""
	if snap := closed.AppliedBenefit(); snap != nil {
		benefitType = snap.Type.String()
	}
	uc.metrics.OrderClosed(benefitType, closed.PointsUsed(), closed.PointsAwarded())
	return queries.NewOrderView(closed), nil
}

// settle runs inside the transaction. Locks are taken order row first, then client row.
func (uc *orderUseCaseImpl) settle(ctx context.Context, tx shared.Tx, in CloseOrderInput, actor user.Actor) (*order.Order, error) {
	o, err := tx.Orders().FindForUpdate(ctx, in.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	if o.IsClosed() {
		return nil, errs.ErrOrderAlreadyClosed
	}
	if in.ClientID == nil || *in.ClientID == uuid.Nil {
		return nil, errs.Invalid("clientId", "is required")
	}

	clientID := *in.ClientID
	account, err := tx.Ledger().LockAccount(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}

	var b *benefit.Benefit
	if in.BenefitID != nil {
		b, err = uc.eligibleBenefit(ctx, tx, *in.BenefitID, account.Current)
		if err != nil {
			return nil, err
		}
	}

	rate, err := uc.currentRate(ctx, tx)
	if err != nil {
		return nil, err
	}

	now := uc.calendar.Now()
	err = o.Close(order.Closing{
		ClientID: clientID,
		Benefit:  b,
		Rate:     rate,
		ClosedBy: actor.Label(),
		At:       now,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrAlreadyClosed):
			return nil, errs.ErrOrderAlreadyClosed
		case errors.Is(err, order.ErrNoCoveredLine):
			return nil, errs.Mark(errs.Invalid("benefitId", "no order line is covered by the benefit"), errs.ErrBenefitNotApplicable)
		default:
			return nil, err
		}
	}

	orderID := o.ID()
	if o.PointsUsed().IsPositive() {
		if _, err := tx.Ledger().Redeem(ctx, clientID, o.PointsUsed(), &orderID, now); err != nil {
			if errors.Is(err, points.ErrInsufficientBalance) {
				return nil, errs.ErrInsufficientPoints
			}
			return nil, err
		}
	}
	balance, err := tx.Ledger().Award(ctx, clientID, o.PointsAwarded(), &orderID, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Orders().SaveClosed(ctx, o); err != nil {
		if errors.Is(err, order.ErrAlreadyClosed) {
			return nil, errs.ErrOrderAlreadyClosed
		}
		return nil, err
	}

	if err := uc.enqueuePointsAwarded(ctx, tx, o, balance, now); err != nil {
		return nil, err
	}
	return o, nil
}

// eligibleBenefit re-checks eligibility against the locked balance; the UI listing may be stale.
func (uc *orderUseCaseImpl) eligibleBenefit(ctx context.Context, tx shared.Tx, id uuid.UUID, balance decimal.Decimal) (*benefit.Benefit, error) {
	b, err := tx.Benefits().FindLiveForShare(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBenefitNotFound
		}
		return nil, err
	}
	if reason := eligibility.Evaluate(balance, b, uc.calendar.Today()); reason != eligibility.ReasonNone {
		return nil, &errs.IneligibleError{Reason: reason.String()}
	}
	return b, nil
}

// currentRate is read inside the close transaction and snapshotted on the order.
func (uc *orderUseCaseImpl) currentRate(ctx context.Context, tx shared.Tx) (decimal.Decimal, error) {
	latest, err := tx.Conversion().Latest(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return conversion.Current(latest, uc.settings.DefaultRate), nil
}

func (uc *orderUseCaseImpl) enqueuePointsAwarded(ctx context.Context, tx shared.Tx, o *order.Order, balance decimal.Decimal, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"orderId":       o.ID(),
		"clientId":      o.ClientID(),
		"pointsUsed":    o.PointsUsed(),
		"pointsAwarded": o.PointsAwarded(),
		"balance":       balance,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, notificationKindPoints, notificationTopicEarned, payload, now)
}

func (uc *orderUseCaseImpl) recordRejection(err error) {
	var inel *errs.IneligibleError
	switch {
	case errs.As(err, &inel):
		uc.metrics.CloseRejected(inel.Reason)
	case errs.Is(err, errs.ErrInsufficientPoints):
		uc.metrics.CloseRejected(RejectInsufficientPoints)
	case errs.Is(err, errs.ErrOrderAlreadyClosed):
		uc.metrics.CloseRejected(RejectAlreadyClosed)
	case errs.Is(err, errs.ErrBenefitNotApplicable):
		uc.metrics.CloseRejected(RejectNotApplicableOrder)
	}
}

func (uc *orderUseCaseImpl) calculateRequestHash(in CreateOrderInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func validateOrderInput(in CreateOrderInput) error {
	var verrs errs.ValidationErrors
	if len(in.Lines) == 0 {
		verrs.Add("lines", "must contain at least one line")
	}
	for i, l := range in.Lines {
		if l.ProductID <= 0 {
			verrs.Add(fmt.Sprintf("lines[%d].productId", i), "must be a positive id")
		}
		switch {
		case l.Quantity <= 0:
			verrs.Add(fmt.Sprintf("lines[%d].quantity", i), "must be greater than 0")
		case l.Quantity > math.MaxInt32:
			verrs.Add(fmt.Sprintf("lines[%d].quantity", i), "must not exceed 2147483647")
		}
	}
	return verrs.Err()
}

// markUnexpected leaves business errors as they are and marks everything else as a storage failure.
func markUnexpected(err error) error {
	for _, known := range businessErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

var businessErrors = []error{
	errs.ErrValidation,
	errs.ErrBenefitNotFound,
	errs.ErrClientNotFound,
	errs.ErrOrderNotFound,
	errs.ErrOrderAlreadyClosed,
	errs.ErrIneligibleBenefit,
	errs.ErrInsufficientPoints,
	errs.ErrBenefitNotApplicable,
	errs.ErrProductNotFound,
	errs.ErrIdempotencyInProgress,
	errs.ErrIdempotencyMismatch,
}
