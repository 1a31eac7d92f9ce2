package converter

import (
	"fmt"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BenefitToInfra(b *benefit.Benefit) query.CreateBenefitParams {
	params := query.CreateBenefitParams{
		ID:             b.ID(),
		Type:           b.Type().String(),
		PointsRequired: int32(b.PointsRequired()), // #nosec G115 -- bounded to MaxInt32 by benefit.Normalize
		ApplicableDays: b.ApplicableDays().Names(),
		ProductIds:     b.ProductIDs(),
		Fingerprint:    b.Fingerprint(),
		CreatedBy:      b.CreatedBy(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	}
	if params.ProductIds == nil {
		params.ProductIds = []int64{}
	}

	if b.Type() == benefit.TypeDiscount {
		params.DiscountType = pgtype.Text{String: b.DiscountType().String(), Valid: true}
		params.DiscountValue = pgconv.NumericFromDecimal(b.DiscountValue())
	} else {
		params.DiscountType = pgtype.Text{Valid: false}
		params.DiscountValue = pgtype.Numeric{Valid: false}
	}

	return params
}

func BenefitFromInfra(row query.Benefits) (*benefit.Benefit, error) {
	typ, err := benefit.ParseType(row.Type)
	if err != nil {
		return nil, fmt.Errorf("benefit %s: %w", row.ID, err)
	}

	var dt benefit.DiscountType
	if row.DiscountType.Valid {
		dt, err = benefit.ParseDiscountType(row.DiscountType.String)
		if err != nil {
			return nil, fmt.Errorf("benefit %s: %w", row.ID, err)
		}
	}

	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, fmt.Errorf("benefit %s: %w", row.ID, err)
	}

	days, err := benefit.ParseDays(row.ApplicableDays)
	if err != nil {
		return nil, fmt.Errorf("benefit %s: %w", row.ID, err)
	}

	return benefit.Reconstruct(
		row.ID,
		typ,
		int(row.PointsRequired),
		dt,
		value,
		days,
		row.ProductIds,
		row.CreatedBy,
		row.CreatedAt.Time,
	), nil
}

func BenefitsFromInfra(rows []query.Benefits) ([]*benefit.Benefit, error) {
	out := make([]*benefit.Benefit, 0, len(rows))
	for _, row := range rows {
		b, err := BenefitFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
