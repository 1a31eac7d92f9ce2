package readstore

import (
	"context"

	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/pkg/pgconv"
	"loyalty-engine/internal/usecase/shared"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/readstore/product_mock.go -package=readstoremock

type ProductReadQueries interface {
	ListActiveProductsByIDs(ctx context.Context, db query.DBTX, ids []int64) ([]query.Products, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      query.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db query.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveByIDs omits ids that are unknown or inactive.
func (r *ProductReadStore) FindActiveByIDs(ctx context.Context, ids []int64) (map[int64]shared.ProductSnapshot, error) {
	rows, err := r.queries.ListActiveProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	out := make(map[int64]shared.ProductSnapshot, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode product price", err, infra.KindDBFailure)
		}
		out[row.ID] = shared.ProductSnapshot{
			ID:    row.ID,
			Name:  row.Name,
			Price: price,
		}
	}
	return out, nil
}
