//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/infra/converter"
	"loyalty-engine/internal/infra/query"
	"loyalty-engine/internal/infra/repository"
	"loyalty-engine/tests/common/builder"
	repositorymock "loyalty-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)
	return o
}

// =============================================================================
// Create Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, *order.Order, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: header and numbered lines are inserted",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, db query.DBTX) {
				mock.EXPECT().CreateOrder(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateOrderParams) error {
						assert.Equal(t, o.ID(), arg.ID)
						assertNumeric(t, "800", arg.TotalPrice)
						return nil
					})
				next := int32(1)
				mock.EXPECT().CreateProductOrder(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateProductOrderParams) error {
						assert.Equal(t, next, arg.LineNo)
						assert.Equal(t, o.ID(), arg.OrderID)
						next++
						return nil
					}).Times(2)
			},
		},
		{
			name: "error: line insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, db query.DBTX) {
				mock.EXPECT().CreateOrder(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().CreateProductOrder(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			o := openOrder(t)
			tc.setupMock(mockQueries, o, mockDB)

			actualError := repository.NewOrderRepository(mockQueries, mockDB).Create(ctx, o)

			if tc.expectedError {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Close Order Tests
// =============================================================================

func TestOrderRepository_SaveClosed(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	closeWithFreeCroissant := func(t *testing.T) *order.Order {
		t.Helper()
		o := openOrder(t)
		b, err := builder.NewBenefitBuilder().AsFreeProduct(2).WithDays("EVERYDAY").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Close(order.Closing{
			ClientID: clientID,
			Benefit:  b,
			Rate:     decimal.NewFromInt(100),
			ClosedBy: "employee@example.com",
			At:       at,
		}))
		return o
	}

	t.Run("success: guarded update then free line marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		o := closeWithFreeCroissant(t)

		gomock.InOrder(
			mockQueries.EXPECT().CloseOrder(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CloseOrderParams) (int64, error) {
					assert.Equal(t, clientID, arg.ClientID)
					assertNumeric(t, "500", arg.FinalPrice)
					assertNumeric(t, "5", arg.PointsAwarded)
					assert.Contains(t, string(arg.AppliedBenefit), `"FREE_PRODUCT"`)
					return 1, nil
				}),
			mockQueries.EXPECT().SetProductOrderFreeQuantity(ctx, mockDB, query.SetProductOrderFreeQuantityParams{
				OrderID: o.ID(), LineNo: 2, FreeQuantity: 1,
			}).Return(nil),
		)

		require.NoError(t, repository.NewOrderRepository(mockQueries, mockDB).SaveClosed(ctx, o))
	})

	t.Run("error: a concurrent close already won", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockQueries.EXPECT().CloseOrder(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		mockQueries.EXPECT().SetProductOrderFreeQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := repository.NewOrderRepository(mockQueries, &mockDBTX{}).SaveClosed(ctx, closeWithFreeCroissant(t))

		assert.ErrorIs(t, err, order.ErrAlreadyClosed)
	})

	t.Run("error: an open order cannot be saved as closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockQueries.EXPECT().CloseOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := repository.NewOrderRepository(mockQueries, &mockDBTX{}).SaveClosed(ctx, openOrder(t))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lines are decoded with their captured prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		o := openOrder(t)
		header, lines := converter.OrderToInfra(o)

		mockQueries.EXPECT().GetOrderForUpdate(ctx, mockDB, o.ID()).Return(query.Orders{
			ID:         header.ID,
			Status:     "OPEN",
			TotalPrice: header.TotalPrice,
			CreatedBy:  header.CreatedBy,
			CreatedAt:  header.CreatedAt,
		}, nil)
		rows := make([]query.ProductOrders, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, query.ProductOrders(l))
		}
		mockQueries.EXPECT().ListProductOrders(ctx, mockDB, []uuid.UUID{o.ID()}).Return(rows, nil)

		got, err := repository.NewOrderRepository(mockQueries, mockDB).FindForUpdate(ctx, o.ID())

		require.NoError(t, err)
		assert.False(t, got.IsClosed())
		require.Len(t, got.Lines(), 2)
		assert.Equal(t, "Coffee", got.Lines()[0].ProductName)
		assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(800)))
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockQueries.EXPECT().GetOrderForUpdate(ctx, gomock.Any(), gomock.Any()).Return(query.Orders{}, pgx.ErrNoRows)
		mockQueries.EXPECT().ListProductOrders(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := repository.NewOrderRepository(mockQueries, &mockDBTX{}).FindForUpdate(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
