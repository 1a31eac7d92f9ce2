//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/repository"
	repositorymock "loyalty-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var at = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

// =============================================================================
// Redeem Tests
// =============================================================================

func TestPointsLedger_Redeem(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	orderID := uuid.New()

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockPointsWriteQueries, query.DBTX)
		wantBalance string
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: balance drops and the movement is journaled",
			setupMock: func(mock *repositorymock.MockPointsWriteQueries, db query.DBTX) {
				mock.EXPECT().RedeemPoints(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ChangePointsParams) (query.Clients, error) {
						assert.Equal(t, clientID, arg.ID)
						assertNumeric(t, "20", arg.Amount)
						return query.Clients{ID: clientID, CurrentPoints: numeric("30")}, nil
					})
				mock.EXPECT().CreatePointsTransaction(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreatePointsTransactionParams) error {
						assert.Equal(t, "SPENT", arg.Kind)
						assertNumeric(t, "30", arg.BalanceAfter)
						assert.Equal(t, orderID, uuid.UUID(arg.OrderID.Bytes))
						return nil
					})
			},
			wantBalance: "30",
		},
		{
			name: "error: guarded update matched nothing for an existing client",
			setupMock: func(mock *repositorymock.MockPointsWriteQueries, db query.DBTX) {
				mock.EXPECT().RedeemPoints(ctx, db, gomock.Any()).Return(query.Clients{}, pgx.ErrNoRows)
				mock.EXPECT().GetClient(ctx, db, clientID).Return(query.Clients{ID: clientID}, nil)
				mock.EXPECT().CreatePointsTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: points.ErrInsufficientBalance,
		},
		{
			name: "error: check constraint refuses a negative balance",
			setupMock: func(mock *repositorymock.MockPointsWriteQueries, db query.DBTX) {
				check := &pgconn.PgError{Code: "23514", ConstraintName: "clients_current_points_check"}
				mock.EXPECT().RedeemPoints(ctx, db, gomock.Any()).Return(query.Clients{}, check)
			},
			expectedErr: points.ErrInsufficientBalance,
		},
		{
			name: "error: unknown client",
			setupMock: func(mock *repositorymock.MockPointsWriteQueries, db query.DBTX) {
				mock.EXPECT().RedeemPoints(ctx, db, gomock.Any()).Return(query.Clients{}, pgx.ErrNoRows)
				mock.EXPECT().GetClient(ctx, db, clientID).Return(query.Clients{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockPointsWriteQueries, db query.DBTX) {
				mock.EXPECT().RedeemPoints(ctx, db, gomock.Any()).Return(query.Clients{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockPointsWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			ledger := repository.NewPointsLedger(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			balance, err := ledger.Redeem(ctx, clientID, decimal.NewFromInt(20), &orderID, at)

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				require.NoError(t, err)
				assert.True(t, balance.Equal(decimal.RequireFromString(tc.wantBalance)))
			}
		})
	}
}

func TestPointsLedger_Award(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("success: amount is rounded to two decimals before it is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPointsWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().AwardPoints(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ChangePointsParams) (query.Clients, error) {
				assertNumeric(t, "3.33", arg.Amount)
				return query.Clients{ID: clientID, CurrentPoints: numeric("3.33")}, nil
			})
		mockQueries.EXPECT().CreatePointsTransaction(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreatePointsTransactionParams) error {
				assert.Equal(t, "EARNED", arg.Kind)
				assert.False(t, arg.OrderID.Valid)
				return nil
			})

		balance, err := repository.NewPointsLedger(mockQueries, mockDB).
			Award(ctx, clientID, decimal.RequireFromString("3.333"), nil, at)

		require.NoError(t, err)
		assert.Equal(t, "3.33", balance.String())
	})

	t.Run("error: negative amount never reaches the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPointsWriteQueries(ctrl)

		_, err := repository.NewPointsLedger(mockQueries, &mockDBTX{}).
			Award(ctx, clientID, decimal.NewFromInt(-1), nil, at)

		assert.ErrorIs(t, err, points.ErrNegativeAmount)
	})
}

func TestPointsLedger_LockAccount(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPointsWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetClientForUpdate(ctx, mockDB, clientID).Return(query.Clients{
			ID:            clientID,
			CurrentPoints: numeric("37.20"),
			TotalEarned:   numeric("57.20"),
			TotalSpent:    numeric("20.00"),
		}, nil)

		account, err := repository.NewPointsLedger(mockQueries, mockDB).LockAccount(ctx, clientID)

		require.NoError(t, err)
		assert.True(t, account.Current.Equal(decimal.RequireFromString("37.2")))
		assert.True(t, account.CanRedeem(decimal.RequireFromString("37.2")))
	})

	t.Run("error: client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPointsWriteQueries(ctrl)
		mockQueries.EXPECT().GetClientForUpdate(ctx, gomock.Any(), clientID).Return(query.Clients{}, pgx.ErrNoRows)

		_, err := repository.NewPointsLedger(mockQueries, &mockDBTX{}).LockAccount(ctx, clientID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
