package points

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("points amount must not be negative")
	ErrInvalidRate    = errors.New("conversion rate must be greater than 0")
	// ErrInsufficientBalance means a redeem would take the balance below zero.
	ErrInsufficientBalance = errors.New("insufficient points balance")
)

// Scale is the number of decimals kept for balances and money.
const Scale = 2

// MaxAmount is the largest value a NUMERIC(12,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

type Kind string

const (
	KindEarned Kind = "EARNED"
	KindSpent  Kind = "SPENT"
)

func (k Kind) String() string { return string(k) }

// Round2 rounds half away from zero to two decimals.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// AwardFor converts a paid amount into points at rate currency units per point.
func AwardFor(finalPrice, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}
	if finalPrice.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return Round2(finalPrice.Div(rate)), nil
}

// Account mirrors the balance columns of a client.
type Account struct {
	ClientID    uuid.UUID
	Current     decimal.Decimal
	TotalEarned decimal.Decimal
	TotalSpent  decimal.Decimal
}

// Profile is an account with the identity of the client that holds it.
type Profile struct {
	Account
	Username string
	Email    string
}

func (a Account) CanRedeem(amount decimal.Decimal) bool {
	return a.Current.GreaterThanOrEqual(amount)
}

// Movement is one row of the append-only points journal.
type Movement struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	Kind         Kind
	Amount       decimal.Decimal
	OrderID      *uuid.UUID
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

func NewMovement(clientID uuid.UUID, kind Kind, amount decimal.Decimal, orderID *uuid.UUID, now time.Time) (*Movement, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Movement{
		ID:        uuid.New(),
		ClientID:  clientID,
		Kind:      kind,
		Amount:    Round2(amount),
		OrderID:   orderID,
		CreatedAt: now,
	}, nil
}
