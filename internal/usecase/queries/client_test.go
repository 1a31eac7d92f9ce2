//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"loyalty-engine/internal/domain/order"
	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/infra"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/tests/common/builder"
	queriesmock "loyalty-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClientQueries(ctrl *gomock.Controller) (queries.ClientQueries, *queriesmock.MockClientReadStore, *queriesmock.MockClientOrderReadStore) {
	clients := queriesmock.NewMockClientReadStore(ctrl)
	orders := queriesmock.NewMockClientOrderReadStore(ctrl)
	return queries.NewClientQueries(clients, orders), clients, orders
}

func TestClientQueries_Points(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("balance and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		clients.EXPECT().FindAccount(gomock.Any(), clientID).Return(&points.Account{
			ClientID:    clientID,
			Current:     decimal.RequireFromString("37.2"),
			TotalEarned: decimal.RequireFromString("57.2"),
			TotalSpent:  decimal.NewFromInt(20),
		}, nil).Times(1)

		view, err := q.Points(ctx, clientID)

		require.NoError(t, err)
		assert.Equal(t, clientID, view.ClientID)
		assert.True(t, view.CurrentPoints.Equal(view.TotalEarned.Sub(view.TotalSpent)))
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		clients.EXPECT().FindAccount(gomock.Any(), clientID).
			Return(nil, infra.WrapRepoErr("client not found", pgx.ErrNoRows)).Times(1)

		_, err := q.Points(ctx, clientID)
		assert.True(t, errs.Is(err, errs.ErrClientNotFound))
	})
}

func TestClientQueries_Profile(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("identity with the current balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		clients.EXPECT().FindProfile(gomock.Any(), clientID).Return(&points.Profile{
			Account:  points.Account{ClientID: clientID, Current: decimal.RequireFromString("37.2")},
			Username: "alice",
			Email:    "alice@example.com",
		}, nil).Times(1)

		view, err := q.Profile(ctx, clientID)

		require.NoError(t, err)
		assert.Equal(t, &queries.ProfileView{
			ClientID:      clientID,
			Username:      "alice",
			Email:         "alice@example.com",
			CurrentPoints: decimal.RequireFromString("37.2"),
		}, view)
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		clients.EXPECT().FindProfile(gomock.Any(), clientID).
			Return(nil, infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		_, err := q.Profile(ctx, clientID)
		assert.True(t, errs.Is(err, errs.ErrClientNotFound))
	})
}

func movements(clientID uuid.UUID, n int, at time.Time) []*points.Movement {
	out := make([]*points.Movement, 0, n)
	for i := range n {
		out = append(out, &points.Movement{
			ID:           uuid.New(),
			ClientID:     clientID,
			Kind:         points.KindEarned,
			Amount:       decimal.NewFromInt(1),
			BalanceAfter: decimal.NewFromInt(int64(n - i)),
			CreatedAt:    at.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestClientQueries_Transactions(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("first page keeps journal order and has no cursor when it is the last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		orderID := uuid.New()
		clients.EXPECT().ListTransactions(gomock.Any(), clientID, int32(queries.DefaultListLimit+1)).Return([]*points.Movement{
			{ID: uuid.New(), ClientID: clientID, Kind: points.KindEarned, Amount: decimal.RequireFromString("7.2"), OrderID: &orderID, BalanceAfter: decimal.RequireFromString("37.2"), CreatedAt: monday},
			{ID: uuid.New(), ClientID: clientID, Kind: points.KindSpent, Amount: decimal.NewFromInt(20), OrderID: &orderID, BalanceAfter: decimal.NewFromInt(30), CreatedAt: monday},
		}, nil).Times(1)

		got, next, err := q.Transactions(ctx, clientID, nil, -1)

		require.NoError(t, err)
		assert.Nil(t, next)
		require.Len(t, got, 2)
		assert.Equal(t, "EARNED", got[0].Kind)
		assert.Equal(t, "SPENT", got[1].Kind)
		assert.Equal(t, &orderID, got[1].OrderID)
	})

	t.Run("a full page points past its last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		rows := movements(clientID, 3, monday)
		clients.EXPECT().ListTransactions(gomock.Any(), clientID, int32(3)).Return(rows, nil).Times(1)

		got, next, err := q.Transactions(ctx, clientID, nil, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)
		at, key, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, rows[1].CreatedAt.Equal(at))
		assert.Equal(t, rows[1].ID.String(), key)
	})

	t.Run("the cursor resumes after the row it names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, clients, _ := newClientQueries(ctrl)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(monday, lastID.String())}
		clients.EXPECT().ListTransactionsAfter(gomock.Any(), clientID, gomock.Any(), lastID, int32(11)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time, _ uuid.UUID, _ int32) ([]*points.Movement, error) {
				assert.True(t, monday.Equal(at))
				return movements(clientID, 1, monday.Add(-time.Hour)), nil
			}).Times(1)

		got, next, err := q.Transactions(ctx, clientID, cursor, 10)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, _, _ := newClientQueries(ctrl)

		for _, after := range []string{"not-base64!", queries.EncodeAfterCursor(monday, "not-a-uuid")} {
			_, _, err := q.Transactions(ctx, clientID, &queries.Cursor{After: after}, 10)

			require.True(t, errs.Is(err, errs.ErrValidation), after)
			assert.Equal(t, "after", errs.Fields(err)[0].Field)
		}
	})
}

func TestClientQueries_Orders(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	closed := func(t *testing.T, at time.Time) *order.Order {
		t.Helper()
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Close(order.Closing{ClientID: clientID, Rate: decimal.NewFromInt(100), ClosedBy: "employee@example.com", At: at}))
		return o
	}

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, _, orders := newClientQueries(ctrl)
		o := closed(t, monday)
		orders.EXPECT().ListClosedByClient(gomock.Any(), clientID, int32(6)).Return([]*order.Order{o}, nil).Times(1)

		got, next, err := q.Orders(ctx, clientID, nil, 5)

		require.NoError(t, err)
		assert.Nil(t, next)
		require.Len(t, got, 1)
		assert.Equal(t, "CLOSED", got[0].Status)
		assert.Equal(t, &clientID, got[0].ClientID)
	})

	t.Run("cursor is keyed on closing time and order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, _, orders := newClientQueries(ctrl)
		newer, older := closed(t, monday), closed(t, monday.Add(-time.Hour))
		orders.EXPECT().ListClosedByClient(gomock.Any(), clientID, int32(2)).Return([]*order.Order{newer, older}, nil).Times(1)

		got, next, err := q.Orders(ctx, clientID, nil, 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, next)

		orders.EXPECT().ListClosedByClientAfter(gomock.Any(), clientID, gomock.Any(), newer.ID(), int32(2)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time, _ uuid.UUID, _ int32) ([]*order.Order, error) {
				assert.True(t, monday.Equal(at))
				return []*order.Order{older}, nil
			}).Times(1)

		got, next, err = q.Orders(ctx, clientID, next, 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, older.ID(), got[0].ID)
		assert.Nil(t, next)
	})
}
