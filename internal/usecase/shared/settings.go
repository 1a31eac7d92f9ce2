package shared

import (
	"fmt"
	"time"

	"loyalty-engine/internal/domain/eligibility"
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// LoyaltySettings is the parsed form of config.LoyaltyConfig.
type LoyaltySettings struct {
	DefaultRate    decimal.Decimal
	Location       *time.Location
	IdempotencyTTL time.Duration
}

func NewLoyaltySettings(cfg config.LoyaltyConfig) (LoyaltySettings, error) {
	rate, err := decimal.NewFromString(cfg.DefaultConversionRate)
	if err != nil || !rate.IsPositive() {
		return LoyaltySettings{}, fmt.Errorf("invalid LOYALTY_DEFAULT_CONVERSION_RATE %q", cfg.DefaultConversionRate)
	}
	loc, err := cfg.Location()
	if err != nil {
		return LoyaltySettings{}, err
	}
	return LoyaltySettings{
		DefaultRate:    rate,
		Location:       loc,
		IdempotencyTTL: cfg.IdempotencyTTL,
	}, nil
}

// Calendar answers "which weekday is it" in the business time zone.
type Calendar struct {
	clock clock.Clock
	loc   *time.Location
}

func NewCalendar(c clock.Clock, settings LoyaltySettings) *Calendar {
	return &Calendar{clock: c, loc: settings.Location}
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

func (c *Calendar) Today() time.Weekday {
	return eligibility.Today(c.clock.Now(), c.loc)
}
