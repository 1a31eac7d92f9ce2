package eligibility

import (
	"time"

	"loyalty-engine/internal/domain/benefit"

	"github.com/shopspring/decimal"
)

// Reason explains why a benefit cannot be redeemed. The zero value means eligible.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonInsufficientPoints Reason = "insufficient_points"
	ReasonNotApplicableToday Reason = "not_applicable_today"
)

func (r Reason) String() string { return string(r) }

// Evaluate checks the balance first so a client short on points is told so even on a wrong day.
// A benefit with no applicable days is treated as valid every day.
func Evaluate(points decimal.Decimal, b *benefit.Benefit, today time.Weekday) Reason {
	if points.LessThan(decimal.NewFromInt(int64(b.PointsRequired()))) {
		return ReasonInsufficientPoints
	}
	days := b.ApplicableDays()
	if !days.IsEmpty() && !days.Contains(today) {
		return ReasonNotApplicableToday
	}
	return ReasonNone
}

func Eligible(points decimal.Decimal, b *benefit.Benefit, today time.Weekday) bool {
	return Evaluate(points, b, today) == ReasonNone
}

// AvailableToday keeps the input order.
func AvailableToday(points decimal.Decimal, benefits []*benefit.Benefit, today time.Weekday) []*benefit.Benefit {
	out := make([]*benefit.Benefit, 0, len(benefits))
	for _, b := range benefits {
		if Eligible(points, b, today) {
			out = append(out, b)
		}
	}
	return out
}

// Today is the weekday of now in the business time zone.
func Today(now time.Time, loc *time.Location) time.Weekday {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Weekday()
}
