//go:build unit

package order_test

import (
	"testing"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/order"
	"loyalty-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func line(productID int64, qty int, price string) order.Line {
	return order.Line{
		ProductID:   productID,
		ProductName: "product",
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func newOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.New(lines, "cashier@example.com", monday)
	require.NoError(t, err)
	return o
}

func mustBenefit(t *testing.T, b *builder.BenefitBuilder) *benefit.Benefit {
	t.Helper()
	out, err := b.BuildDomain()
	require.NoError(t, err)
	return out
}

func TestNew(t *testing.T) {
	t.Run("sums lines", func(t *testing.T) {
		o := newOrder(t, line(1, 2, "12.50"), line(2, 1, "75.005"))
		assert.Equal(t, order.StatusOpen, o.Status())
		assert.Equal(t, "100.01", o.TotalPrice().StringFixed(2))
		assert.Nil(t, o.ClientID())
		assert.Nil(t, o.FinalPrice())
		assert.True(t, o.PointsUsed().IsZero())
	})

	tests := []struct {
		name  string
		lines []order.Line
		err   error
	}{
		{name: "no lines", lines: nil, err: order.ErrEmptyOrder},
		{name: "zero quantity", lines: []order.Line{line(1, 0, "1")}, err: order.ErrInvalidQuantity},
		{name: "negative price", lines: []order.Line{line(1, 1, "-1")}, err: order.ErrNegativePrice},
		{name: "quantity wider than the stored integer", lines: []order.Line{line(1, 1<<32+1, "2.20")}, err: order.ErrInvalidQuantity},
		{name: "total beyond the money column", lines: []order.Line{line(1, 5, "2000000000")}, err: order.ErrTotalTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.New(tt.lines, "cashier@example.com", monday)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestOrder_Close(t *testing.T) {
	rate := decimal.NewFromInt(100)

	t.Run("percentage discount on monday", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "100.00"))
		b := mustBenefit(t, builder.NewBenefitBuilder())
		clientID := uuid.New()

		err := o.Close(order.Closing{ClientID: clientID, Benefit: b, Rate: rate, ClosedBy: "cashier@example.com", At: monday})
		require.NoError(t, err)

		assert.Equal(t, order.StatusClosed, o.Status())
		assert.Equal(t, "90.00", o.FinalPrice().StringFixed(2))
		assert.Equal(t, "20", o.PointsUsed().String())
		assert.Equal(t, "0.90", o.PointsAwarded().StringFixed(2))
		assert.Equal(t, &clientID, o.ClientID())
		assert.Equal(t, "100", o.ConversionRate().String())
		require.NotNil(t, o.AppliedBenefit())
		assert.Equal(t, b.ID(), o.AppliedBenefit().ID)
		assert.Equal(t, monday, *o.ClosedAt())
	})

	t.Run("no benefit", func(t *testing.T) {
		o := newOrder(t, line(1, 3, "10"))
		require.NoError(t, o.Close(order.Closing{ClientID: uuid.New(), Rate: decimal.NewFromInt(3), At: monday}))

		assert.Equal(t, "30.00", o.FinalPrice().StringFixed(2))
		assert.Equal(t, "10.00", o.PointsAwarded().StringFixed(2))
		assert.True(t, o.PointsUsed().IsZero())
		assert.Nil(t, o.AppliedBenefit())
	})

	t.Run("fixed amount floors at zero", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "30"))
		b := mustBenefit(t, builder.NewBenefitBuilder().WithDiscount("FIXED_AMOUNT", "50"))
		require.NoError(t, o.Close(order.Closing{ClientID: uuid.New(), Benefit: b, Rate: rate, At: monday}))

		assert.True(t, o.FinalPrice().IsZero())
		assert.True(t, o.PointsAwarded().IsZero())
	})

	t.Run("free product marks one unit of the first covered line", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "5"), line(2, 3, "8"), line(3, 1, "9"))
		b := mustBenefit(t, builder.NewBenefitBuilder().AsFreeProduct(3, 2))
		require.NoError(t, o.Close(order.Closing{ClientID: uuid.New(), Benefit: b, Rate: rate, At: monday}))

		lines := o.Lines()
		assert.Equal(t, 0, lines[0].FreeQuantity)
		assert.Equal(t, 1, lines[1].FreeQuantity)
		assert.Equal(t, 0, lines[2].FreeQuantity)
		assert.Equal(t, "30.00", o.FinalPrice().StringFixed(2))
	})

	t.Run("free product without covered line", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "5"))
		b := mustBenefit(t, builder.NewBenefitBuilder().AsFreeProduct(9))
		err := o.Close(order.Closing{ClientID: uuid.New(), Benefit: b, Rate: rate, At: monday})

		assert.ErrorIs(t, err, order.ErrNoCoveredLine)
		assert.Equal(t, order.StatusOpen, o.Status())
		assert.Equal(t, 0, o.Lines()[0].FreeQuantity)
	})

	t.Run("closing twice fails", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "5"))
		require.NoError(t, o.Close(order.Closing{ClientID: uuid.New(), Rate: rate, At: monday}))

		err := o.Close(order.Closing{ClientID: uuid.New(), Rate: rate, At: monday})
		assert.ErrorIs(t, err, order.ErrAlreadyClosed)
	})

	t.Run("requires client and rate", func(t *testing.T) {
		o := newOrder(t, line(1, 1, "5"))
		assert.ErrorIs(t, o.Close(order.Closing{Rate: rate, At: monday}), order.ErrMissingClient)
		assert.ErrorIs(t, o.Close(order.Closing{ClientID: uuid.New(), At: monday}), order.ErrMissingRate)
		assert.False(t, o.IsClosed())
	})
}

func TestPrice(t *testing.T) {
	total := decimal.RequireFromString("33.33")
	lines := []order.Line{line(1, 1, "33.33")}

	tests := []struct {
		name  string
		b     *builder.BenefitBuilder
		price string
	}{
		{name: "percentage rounds to cents", b: builder.NewBenefitBuilder().WithDiscount("PERCENTAGE", "15"), price: "28.33"},
		{name: "full percentage", b: builder.NewBenefitBuilder().WithDiscount("PERCENTAGE", "100"), price: "0.00"},
		{name: "fixed amount", b: builder.NewBenefitBuilder().WithDiscount("FIXED_AMOUNT", "3.33"), price: "30.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := order.Price(total, lines, mustBenefit(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.price, got.StringFixed(2))
		})
	}
}
