//go:build unit

package repository_test

import (
	"context"
	"testing"

	"loyalty-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}

func numeric(s string) pgtype.Numeric {
	return pgconv.NumericFromDecimal(decimal.RequireFromString(s))
}

// assertNumeric compares by value, so 20 and 20.00 are equal.
func assertNumeric(t *testing.T, want string, got pgtype.Numeric) {
	t.Helper()
	d, err := pgconv.DecimalFromNumeric(got)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, d)
}
