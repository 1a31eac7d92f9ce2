package repository

import (
	"context"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/converter"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=benefit.go -destination=../../../tests/mock/repository/benefit_mock.go -package=repositorymock

type BenefitWriteQueries interface {
	CreateBenefit(ctx context.Context, db query.DBTX, arg query.CreateBenefitParams) error
	SoftDeleteBenefit(ctx context.Context, db query.DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error)
	GetLiveBenefitForShare(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Benefits, error)
}

type BenefitRepository struct {
	queries BenefitWriteQueries
	db      query.DBTX
}

func NewBenefitRepository(queries BenefitWriteQueries, db query.DBTX) *BenefitRepository {
	return &BenefitRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BenefitRepository) Create(ctx context.Context, b *benefit.Benefit) error {
	if err := r.queries.CreateBenefit(ctx, r.db, converter.BenefitToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create benefit", err)
	}
	return nil
}

func (r *BenefitRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	affected, err := r.queries.SoftDeleteBenefit(ctx, r.db, id, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to delete benefit", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("benefit not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BenefitRepository) FindLiveForShare(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error) {
	row, err := r.queries.GetLiveBenefitForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("benefit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get benefit", err)
	}
	b, err := converter.BenefitFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode benefit", err, infra.KindDBFailure)
	}
	return b, nil
}
