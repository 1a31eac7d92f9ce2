package queries

import (
	"context"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/eligibility"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=benefit.go -destination=../../../tests/mock/queries/benefit_mock.go -package=queriesmock

type BenefitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error)
	List(ctx context.Context) ([]*benefit.Benefit, error)
	ListUpToPoints(ctx context.Context, points decimal.Decimal) ([]*benefit.Benefit, error)
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)
}

// AvailabilityFilter selects the benefits a balance can pay for.
// With ClientID set, Points is clamped to that client's current balance.
type AvailabilityFilter struct {
	Points   decimal.Decimal
	AnyDay   bool
	ClientID *uuid.UUID
}

type BenefitQueries interface {
	List(ctx context.Context) ([]*BenefitView, error)
	ListByType(ctx context.Context, typ string) ([]*BenefitView, error)
	Get(ctx context.Context, id uuid.UUID) (*BenefitView, error)
	Available(ctx context.Context, filter AvailabilityFilter) (*AvailableBenefitsView, error)
	AvailableForClient(ctx context.Context, clientID uuid.UUID) (*AvailableBenefitsView, error)
	// CheckDuplicate is advisory: a create can still lose the race to a concurrent one.
	CheckDuplicate(ctx context.Context, def benefit.Definition) (bool, error)
}

type benefitQueriesImpl struct {
	benefits BenefitReadStore
	clients  ClientReadStore
	calendar *shared.Calendar
}

func NewBenefitQueries(benefits BenefitReadStore, clients ClientReadStore, calendar *shared.Calendar) BenefitQueries {
	return &benefitQueriesImpl{
		benefits: benefits,
		clients:  clients,
		calendar: calendar,
	}
}

func (q *benefitQueriesImpl) List(ctx context.Context) ([]*BenefitView, error) {
	benefits, err := q.benefits.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewBenefitViews(benefits), nil
}

// ListByType keeps the store's newest-first order.
func (q *benefitQueriesImpl) ListByType(ctx context.Context, typ string) ([]*BenefitView, error) {
	t, err := benefit.ParseType(typ)
	if err != nil {
		return nil, errs.Invalid("type", "must be DISCOUNT or FREE_PRODUCT")
	}
	benefits, err := q.benefits.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*benefit.Benefit, 0, len(benefits))
	for _, b := range benefits {
		if b.Type() == t {
			matched = append(matched, b)
		}
	}
	return NewBenefitViews(matched), nil
}

func (q *benefitQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BenefitView, error) {
	b, err := q.benefits.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBenefitNotFound
		}
		return nil, err
	}
	return NewBenefitView(b), nil
}

func (q *benefitQueriesImpl) Available(ctx context.Context, filter AvailabilityFilter) (*AvailableBenefitsView, error) {
	if filter.Points.IsNegative() {
		return nil, errs.Invalid("points", "must not be negative")
	}

	balance := points.Round2(filter.Points)
	if filter.ClientID != nil {
		account, err := q.findAccount(ctx, *filter.ClientID)
		if err != nil {
			return nil, err
		}
		balance = decimal.Min(balance, account.Current)
	}

	return q.available(ctx, balance, filter.AnyDay)
}

func (q *benefitQueriesImpl) AvailableForClient(ctx context.Context, clientID uuid.UUID) (*AvailableBenefitsView, error) {
	account, err := q.findAccount(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return q.available(ctx, account.Current, false)
}

func (q *benefitQueriesImpl) CheckDuplicate(ctx context.Context, def benefit.Definition) (bool, error) {
	normalized, err := benefit.Normalize(def)
	if err != nil {
		return false, err
	}
	return q.benefits.ExistsByFingerprint(ctx, normalized.Fingerprint())
}

func (q *benefitQueriesImpl) available(ctx context.Context, balance decimal.Decimal, anyDay bool) (*AvailableBenefitsView, error) {
	candidates, err := q.benefits.ListUpToPoints(ctx, balance)
	if err != nil {
		return nil, err
	}

	if anyDay {
		return &AvailableBenefitsView{
			Points:   balance,
			Benefits: NewBenefitViews(candidates),
		}, nil
	}

	today := q.calendar.Today()
	return &AvailableBenefitsView{
		Points:   balance,
		Day:      benefit.WeekdayName(today),
		Benefits: NewBenefitViews(eligibility.AvailableToday(balance, candidates, today)),
	}, nil
}

func (q *benefitQueriesImpl) findAccount(ctx context.Context, clientID uuid.UUID) (*points.Account, error) {
	account, err := q.clients.FindAccount(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}
	return account, nil
}
