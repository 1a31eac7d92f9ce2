//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/readstore"
	"loyalty-engine/internal/pkg/pgconv"
	readstoremock "loyalty-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
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

var at = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

func TestClientReadStore_FindProfile(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("identity and balances from one row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetClient(ctx, gomock.Any(), clientID).Return(query.Clients{
			ID:            clientID,
			Username:      "alice",
			Email:         "alice@example.com",
			CurrentPoints: numeric("30.90"),
			TotalEarned:   numeric("50.90"),
			TotalSpent:    numeric("20"),
		}, nil)

		got, err := store.FindProfile(ctx, clientID)

		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, clientID, got.ClientID)
		assert.True(t, got.Current.Equal(decimal.RequireFromString("30.9")))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetClient(ctx, gomock.Any(), clientID).Return(query.Clients{}, pgx.ErrNoRows)

		_, err := store.FindProfile(ctx, clientID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestClientReadStore_ListTransactionsAfter(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	afterID := uuid.New()

	t.Run("cursor row becomes the keyset bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().
			ListPointsTransactionsByClientAfter(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListPointsTransactionsByClientAfterParams) ([]query.PointsTransactions, error) {
				assert.Equal(t, clientID, arg.ClientID)
				assert.Equal(t, afterID, arg.ID)
				assert.True(t, arg.CreatedAt.Valid)
				assert.True(t, arg.CreatedAt.Time.Equal(at))
				assert.Equal(t, int32(11), arg.Limit)
				return []query.PointsTransactions{{
					ID:           uuid.New(),
					ClientID:     clientID,
					Kind:         "SPENT",
					Amount:       numeric("20"),
					BalanceAfter: numeric("30"),
					CreatedAt:    pgconv.TimeToPgtype(at.Add(-time.Minute)),
				}}, nil
			})

		got, err := store.ListTransactionsAfter(ctx, clientID, at, afterID, 11)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, points.KindSpent, got[0].Kind)
		assert.Nil(t, got[0].OrderID)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().
			ListPointsTransactionsByClientAfter(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := store.ListTransactionsAfter(ctx, clientID, at, afterID, 11)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestConversionReadStore_HistoryAfter(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockConversionReadQueries(ctrl)
	store := readstore.NewConversionReadStore(mockQueries, &mockDBTX{})
	mockQueries.EXPECT().
		ListConversionRateHistoryAfter(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListConversionRateHistoryAfterParams) ([]query.ConversionRateHistory, error) {
			assert.Equal(t, int64(7), arg.ID)
			assert.True(t, arg.ChangedAt.Time.Equal(at))
			assert.Equal(t, int32(3), arg.Limit)
			return []query.ConversionRateHistory{}, nil
		})

	got, err := store.HistoryAfter(ctx, at, 7, 3)

	require.NoError(t, err)
	assert.Empty(t, got)
}
