//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/repository"
	repositorymock "loyalty-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, actorID := uuid.New(), uuid.New()
	expiresAt := at.Add(24 * time.Hour)

	testCases := []struct {
		name         string
		affected     int64
		err          error
		wantInserted bool
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "first use of the key", affected: 1, wantInserted: true},
		{name: "key already held", affected: 0, wantInserted: false},
		{name: "database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, "POST /orders", arg.Endpoint)
					assert.True(t, arg.ExpiresAt.Time.Equal(expiresAt))
					return tc.affected, tc.err
				})

			inserted, err := repository.NewIdempotencyRepository(mockQueries, mockDB).
				TryInsert(ctx, key, actorID, "POST /orders", "hash", expiresAt)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	key, actorID, orderID := uuid.New(), uuid.New(), uuid.New()

	mockQueries.EXPECT().CompleteIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CompleteIdempotencyKeyParams) error {
			assert.True(t, arg.ResultOrderID.Valid)
			assert.Equal(t, orderID, uuid.UUID(arg.ResultOrderID.Bytes))
			return nil
		})

	require.NoError(t, repository.NewIdempotencyRepository(mockQueries, &mockDBTX{}).Complete(ctx, key, actorID, orderID))
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

	claimed, err := repository.NewIdempotencyRepository(mockQueries, &mockDBTX{}).
		ClaimExpired(ctx, uuid.New(), uuid.New(), "hash", at)

	require.NoError(t, err)
	assert.False(t, claimed, "another request reclaimed the key first")
}
