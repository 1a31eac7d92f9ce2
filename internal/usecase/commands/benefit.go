package commands

import (
	"context"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=benefit.go -destination=../../../tests/mock/commands/benefit_mock.go -package=commandsmock

type BenefitCommands interface {
	// Create relies on the fingerprint index alone; there is no pre-flight duplicate read.
	Create(ctx context.Context, def benefit.Definition, actor user.Actor) (*queries.BenefitView, error)
	Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error
}

type benefitUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
}

func NewBenefitUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics Metrics) BenefitCommands {
	return &benefitUseCaseImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
	}
}

func (uc *benefitUseCaseImpl) Create(ctx context.Context, def benefit.Definition, actor user.Actor) (*queries.BenefitView, error) {
	b, err := benefit.New(def, actor.Label(), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Benefits().Create(ctx, b)
	})
	if err != nil {
		if isFingerprintCollision(err) {
			uc.metrics.DuplicateBenefitRejected()
			return nil, &errs.DuplicateError{Fields: b.IdentityFields()}
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.BenefitCreated()
	return queries.NewBenefitView(b), nil
}

// Delete soft-deletes the benefit. Closed orders keep their own snapshot of it.
func (uc *benefitUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, _ user.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Benefits().SoftDelete(ctx, id, uc.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBenefitNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func isFingerprintCollision(err error) bool {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return false
	}
	return infra.ConstraintOf(err) == shared.BenefitFingerprintIndex
}
