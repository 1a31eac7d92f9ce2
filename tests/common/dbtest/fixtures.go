//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Product ids seeded by SeedReferenceData.
const (
	ProductCoffee    int64 = 1
	ProductCroissant int64 = 2
	ProductTea       int64 = 3
	ProductRetired   int64 = 4
)

// CreateTestClient inserts a client with the given balance and returns its id.
// The balance is booked as earned so the totals stay consistent.
func CreateTestClient(t *testing.T, db DBLike, username string, balance decimal.Decimal) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO clients (id, username, email, current_points, total_earned, total_spent)
		VALUES ($1, $2, $3, $4::text::numeric, $4::text::numeric, 0)`,
		clientID, username, username+"@example.com", balance.StringFixed(2))
	require.NoError(t, err)

	return clientID
}

func ClientBalance(t *testing.T, db DBLike, clientID uuid.UUID) decimal.Decimal {
	t.Helper()

	var raw string
	err := db.QueryRow(context.Background(), "SELECT current_points::text FROM clients WHERE id = $1", clientID).Scan(&raw)
	require.NoError(t, err)
	return decimal.RequireFromString(raw)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

// SeedReferenceData inserts the product catalog every test relies on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name, price, active) VALUES
		    (1, 'Coffee', 250.00, true),
		    (2, 'Croissant', 300.00, true),
		    (3, 'Tea', 100.00, true),
		    (4, 'Retired Muffin', 200.00, false)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, "SELECT setval(pg_get_serial_sequence('products', 'id'), 100)")
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
