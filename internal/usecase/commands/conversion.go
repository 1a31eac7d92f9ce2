package commands

import (
	"context"

	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=conversion.go -destination=../../../tests/mock/commands/conversion_mock.go -package=commandsmock

type ConversionCommands interface {
	Update(ctx context.Context, rate decimal.Decimal, actor user.Actor) (*queries.ConversionRateEntryView, error)
}

type conversionUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	metrics  Metrics
	settings shared.LoyaltySettings
}

func NewConversionUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics Metrics, settings shared.LoyaltySettings) ConversionCommands {
	return &conversionUseCaseImpl{
		uow:      uow,
		clock:    clk,
		metrics:  metrics,
		settings: settings,
	}
}

// Update appends a history entry. Concurrent updates are serialized by an advisory lock, so each
// entry's old value is the new value of the entry before it.
func (uc *conversionUseCaseImpl) Update(ctx context.Context, rate decimal.Decimal, actor user.Actor) (*queries.ConversionRateEntryView, error) {
	if err := conversion.ValidateRate(rate); err != nil {
		if errs.Is(err, conversion.ErrRateTooLarge) {
			return nil, errs.Invalid("conversionRate", "must not exceed "+points.MaxAmount.StringFixed(points.Scale))
		}
		return nil, errs.Invalid("conversionRate", "must be greater than 0 after rounding to cents")
	}

	var saved *conversion.Entry
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Conversion().Lock(ctx); err != nil {
			return err
		}
		latest, err := tx.Conversion().Latest(ctx)
		if err != nil {
			return err
		}

		current := conversion.Current(latest, uc.settings.DefaultRate)
		entry, err := conversion.NewEntry(current, rate, actor.Label(), uc.clock.Now())
		if err != nil {
			return err
		}

		saved, err = tx.Conversion().Append(ctx, entry)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.ConversionRateChanged()
	return queries.NewConversionRateEntryView(saved), nil
}
