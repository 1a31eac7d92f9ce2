package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const benefitColumns = `id, type, points_required, discount_type, discount_value, applicable_days,
       product_ids, fingerprint, created_by, created_at, deleted_at`

func scanBenefit(row rowScanner) (Benefits, error) {
	var i Benefits
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.PointsRequired,
		&i.DiscountType,
		&i.DiscountValue,
		&i.ApplicableDays,
		&i.ProductIds,
		&i.Fingerprint,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.DeletedAt,
	)
	return i, err
}

func collectBenefits(ctx context.Context, db DBTX, sql string, args ...any) ([]Benefits, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Benefits{}
	for rows.Next() {
		i, err := scanBenefit(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBenefit = `
INSERT INTO benefits (
    id, type, points_required, discount_type, discount_value, applicable_days,
    product_ids, fingerprint, created_by, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateBenefitParams struct {
	ID             uuid.UUID
	Type           string
	PointsRequired int32
	DiscountType   pgtype.Text
	DiscountValue  pgtype.Numeric
	ApplicableDays []string
	ProductIds     []int64
	Fingerprint    string
	CreatedBy      string
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateBenefit(ctx context.Context, db DBTX, arg CreateBenefitParams) error {
	_, err := db.Exec(ctx, createBenefit,
		arg.ID,
		arg.Type,
		arg.PointsRequired,
		arg.DiscountType,
		arg.DiscountValue,
		arg.ApplicableDays,
		arg.ProductIds,
		arg.Fingerprint,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const getLiveBenefit = `SELECT ` + benefitColumns + `
FROM benefits
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) GetLiveBenefit(ctx context.Context, db DBTX, id uuid.UUID) (Benefits, error) {
	return scanBenefit(db.QueryRow(ctx, getLiveBenefit, id))
}

// Blocks a concurrent soft delete until the redeeming transaction ends.
const getLiveBenefitForShare = getLiveBenefit + `FOR SHARE`

func (q *Queries) GetLiveBenefitForShare(ctx context.Context, db DBTX, id uuid.UUID) (Benefits, error) {
	return scanBenefit(db.QueryRow(ctx, getLiveBenefitForShare, id))
}

const listLiveBenefits = `SELECT ` + benefitColumns + `
FROM benefits
WHERE deleted_at IS NULL
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListLiveBenefits(ctx context.Context, db DBTX) ([]Benefits, error) {
	return collectBenefits(ctx, db, listLiveBenefits)
}

const listLiveBenefitsUpToPoints = `SELECT ` + benefitColumns + `
FROM benefits
WHERE deleted_at IS NULL AND points_required <= $1::numeric
ORDER BY points_required DESC, created_at DESC, id DESC
`

func (q *Queries) ListLiveBenefitsUpToPoints(ctx context.Context, db DBTX, points pgtype.Numeric) ([]Benefits, error) {
	return collectBenefits(ctx, db, listLiveBenefitsUpToPoints, points)
}

const existsLiveBenefitByFingerprint = `
SELECT EXISTS (SELECT 1 FROM benefits WHERE fingerprint = $1 AND deleted_at IS NULL)
`

func (q *Queries) ExistsLiveBenefitByFingerprint(ctx context.Context, db DBTX, fingerprint string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsLiveBenefitByFingerprint, fingerprint).Scan(&exists)
	return exists, err
}

const softDeleteBenefit = `
UPDATE benefits SET deleted_at = $2
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) SoftDeleteBenefit(ctx context.Context, db DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, softDeleteBenefit, id, deletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
