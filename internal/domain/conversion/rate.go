package conversion

import (
	"errors"
	"time"

	"loyalty-engine/internal/domain/points"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveRate = errors.New("conversion rate must be greater than 0")
	ErrRateTooLarge    = errors.New("conversion rate exceeds the maximum")
)

// Entry is one append-only rate change. OldValue is nullable in storage for rows imported without one.
type Entry struct {
	ID        int64
	ChangedAt time.Time
	ChangedBy string
	OldValue  *decimal.Decimal
	NewValue  decimal.Decimal
}

// ValidateRate checks the rate as it is stored, rounded to cents.
func ValidateRate(rate decimal.Decimal) error {
	switch stored := points.Round2(rate); {
	case !stored.IsPositive():
		return ErrNonPositiveRate
	case stored.GreaterThan(points.MaxAmount):
		return ErrRateTooLarge
	}
	return nil
}

// NewEntry records a change from the effective rate current to next.
func NewEntry(current, next decimal.Decimal, changedBy string, now time.Time) (*Entry, error) {
	if err := ValidateRate(next); err != nil {
		return nil, err
	}
	return &Entry{
		ChangedAt: now,
		ChangedBy: changedBy,
		OldValue:  &current,
		NewValue:  points.Round2(next),
	}, nil
}

// Current resolves the effective rate from the most recent entry, falling back to def.
func Current(latest *Entry, def decimal.Decimal) decimal.Decimal {
	if latest == nil {
		return def
	}
	return latest.NewValue
}
