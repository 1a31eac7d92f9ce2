package order

import (
	"errors"
	"math"
	"slices"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/points"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyClosed   = errors.New("order is already closed")
	ErrEmptyOrder      = errors.New("order must contain at least one line")
	ErrInvalidQuantity = errors.New("line quantity must be between 1 and 2147483647")
	ErrTotalTooLarge   = errors.New("order total exceeds the maximum amount")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrNoCoveredLine   = errors.New("no order line is covered by the free product benefit")
	ErrMissingClient   = errors.New("client is required to close an order")
	ErrMissingRate     = errors.New("conversion rate is required to close an order")
)

type Order struct {
	id             uuid.UUID
	status         Status
	clientID       *uuid.UUID
	lines          []Line
	totalPrice     decimal.Decimal
	finalPrice     *decimal.Decimal
	appliedBenefit *benefit.Snapshot
	pointsUsed     decimal.Decimal
	pointsAwarded  decimal.Decimal
	conversionRate *decimal.Decimal
	closedAt       *time.Time
	closedBy       *string
	createdBy      string
	createdAt      time.Time
}

func New(lines []Line, createdBy string, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	total := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 || l.Quantity > math.MaxInt32 {
			return nil, ErrInvalidQuantity
		}
		if l.UnitPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		total = total.Add(l.Subtotal())
	}
	if points.Round2(total).GreaterThan(points.MaxAmount) {
		return nil, ErrTotalTooLarge
	}

	return &Order{
		id:         uuid.New(),
		status:     StatusOpen,
		lines:      slices.Clone(lines),
		totalPrice: points.Round2(total),
		createdBy:  createdBy,
		createdAt:  now,
	}, nil
}

// State carries persisted order columns for Reconstruct.
type State struct {
	ID             uuid.UUID
	Status         Status
	ClientID       *uuid.UUID
	Lines          []Line
	TotalPrice     decimal.Decimal
	FinalPrice     *decimal.Decimal
	AppliedBenefit *benefit.Snapshot
	PointsUsed     decimal.Decimal
	PointsAwarded  decimal.Decimal
	ConversionRate *decimal.Decimal
	ClosedAt       *time.Time
	ClosedBy       *string
	CreatedBy      string
	CreatedAt      time.Time
}

func Reconstruct(s State) *Order {
	return &Order{
		id:             s.ID,
		status:         s.Status,
		clientID:       s.ClientID,
		lines:          s.Lines,
		totalPrice:     s.TotalPrice,
		finalPrice:     s.FinalPrice,
		appliedBenefit: s.AppliedBenefit,
		pointsUsed:     s.PointsUsed,
		pointsAwarded:  s.PointsAwarded,
		conversionRate: s.ConversionRate,
		closedAt:       s.ClosedAt,
		closedBy:       s.ClosedBy,
		createdBy:      s.CreatedBy,
		createdAt:      s.CreatedAt,
	}
}

// Closing holds everything needed to settle an order. Benefit is optional.
type Closing struct {
	ClientID uuid.UUID
	Benefit  *benefit.Benefit
	Rate     decimal.Decimal
	ClosedBy string
	At       time.Time
}

// Close settles the order once. Eligibility against the client balance is checked by the caller,
// which holds the client row lock.
func (o *Order) Close(c Closing) error {
	if o.status == StatusClosed {
		return ErrAlreadyClosed
	}
	if c.ClientID == uuid.Nil {
		return ErrMissingClient
	}
	if !c.Rate.IsPositive() {
		return ErrMissingRate
	}

	final, lines, err := Price(o.totalPrice, o.lines, c.Benefit)
	if err != nil {
		return err
	}
	award, err := points.AwardFor(final, c.Rate)
	if err != nil {
		return err
	}

	used := decimal.Zero
	if c.Benefit != nil {
		used = decimal.NewFromInt(int64(c.Benefit.PointsRequired()))
		snap := c.Benefit.Snapshot(c.At)
		o.appliedBenefit = &snap
	}

	clientID := c.ClientID
	rate := c.Rate
	closedAt := c.At
	closedBy := c.ClosedBy

	o.status = StatusClosed
	o.clientID = &clientID
	o.lines = lines
	o.finalPrice = &final
	o.pointsUsed = used
	o.pointsAwarded = award
	o.conversionRate = &rate
	o.closedAt = &closedAt
	o.closedBy = &closedBy
	return nil
}

func (o *Order) IsClosed() bool { return o.status == StatusClosed }

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) ClientID() *uuid.UUID              { return o.clientID }
func (o *Order) Lines() []Line                     { return slices.Clone(o.lines) }
func (o *Order) TotalPrice() decimal.Decimal       { return o.totalPrice }
func (o *Order) FinalPrice() *decimal.Decimal      { return o.finalPrice }
func (o *Order) AppliedBenefit() *benefit.Snapshot { return o.appliedBenefit }
func (o *Order) PointsUsed() decimal.Decimal       { return o.pointsUsed }
func (o *Order) PointsAwarded() decimal.Decimal    { return o.pointsAwarded }
func (o *Order) ConversionRate() *decimal.Decimal  { return o.conversionRate }
func (o *Order) ClosedAt() *time.Time              { return o.closedAt }
func (o *Order) ClosedBy() *string                 { return o.closedBy }
func (o *Order) CreatedBy() string                 { return o.createdBy }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
