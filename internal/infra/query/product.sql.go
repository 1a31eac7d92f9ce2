package query

import (
	"context"
)

const listActiveProductsByIDs = `
SELECT id, name, price, active
FROM products
WHERE id = ANY($1::bigint[]) AND active
ORDER BY id
`

func (q *Queries) ListActiveProductsByIDs(ctx context.Context, db DBTX, ids []int64) ([]Products, error) {
	rows, err := db.Query(ctx, listActiveProductsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Products{}
	for rows.Next() {
		var i Products
		if err := rows.Scan(&i.ID, &i.Name, &i.Price, &i.Active); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
