package readstore

import (
	"context"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/converter"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=benefit.go -destination=../../../tests/mock/readstore/benefit_mock.go -package=readstoremock

type BenefitReadQueries interface {
	GetLiveBenefit(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Benefits, error)
	ListLiveBenefits(ctx context.Context, db query.DBTX) ([]query.Benefits, error)
	ListLiveBenefitsUpToPoints(ctx context.Context, db query.DBTX, points pgtype.Numeric) ([]query.Benefits, error)
	ExistsLiveBenefitByFingerprint(ctx context.Context, db query.DBTX, fingerprint string) (bool, error)
}

type BenefitReadStore struct {
	queries BenefitReadQueries
	db      query.DBTX
}

func NewBenefitReadStore(queries BenefitReadQueries, db query.DBTX) *BenefitReadStore {
	return &BenefitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BenefitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error) {
	row, err := r.queries.GetLiveBenefit(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("benefit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get benefit by id", err)
	}
	b, err := converter.BenefitFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode benefit", err, infra.KindDBFailure)
	}
	return b, nil
}

// List returns live benefits, newest first.
func (r *BenefitReadStore) List(ctx context.Context) ([]*benefit.Benefit, error) {
	rows, err := r.queries.ListLiveBenefits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list benefits", err)
	}
	return decodeBenefits(rows)
}

// ListUpToPoints returns live benefits a balance of points can pay for, regardless of the day.
func (r *BenefitReadStore) ListUpToPoints(ctx context.Context, points decimal.Decimal) ([]*benefit.Benefit, error) {
	rows, err := r.queries.ListLiveBenefitsUpToPoints(ctx, r.db, pgconv.NumericFromDecimal(points))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list benefits by points", err)
	}
	return decodeBenefits(rows)
}

func (r *BenefitReadStore) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	exists, err := r.queries.ExistsLiveBenefitByFingerprint(ctx, r.db, fingerprint)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up benefit fingerprint", err)
	}
	return exists, nil
}

func decodeBenefits(rows []query.Benefits) ([]*benefit.Benefit, error) {
	benefits, err := converter.BenefitsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode benefits", err, infra.KindDBFailure)
	}
	return benefits, nil
}
