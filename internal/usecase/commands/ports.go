package commands

import (
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Metrics receives business events after their transaction commits.
type Metrics interface {
	BenefitCreated()
	DuplicateBenefitRejected()
	OrderCreated()
	OrderClosed(benefitType string, redeemed, awarded decimal.Decimal)
	CloseRejected(reason string)
	ConversionRateChanged()
}

// Close rejection reasons reported to Metrics.
const (
	RejectAlreadyClosed      = "already_closed"
	RejectNotApplicableOrder = "not_applicable_to_order"
	RejectInsufficientPoints = "insufficient_points"
)
