//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConversionUseCase_Update(t *testing.T) {
	ctx := context.Background()
	actor := builder.Manager()

	appendEcho := func(m *txMocks) {
		m.conversion.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *conversion.Entry) (*conversion.Entry, error) {
				saved := *e
				saved.ID = 42
				return &saved, nil
			}).Times(1)
	}

	t.Run("first change records the configured default as the old value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(t, ctrl)
		gomock.InOrder(
			m.conversion.EXPECT().Lock(gomock.Any()).Return(nil),
			m.conversion.EXPECT().Latest(gomock.Any()).Return(nil, nil),
		)
		appendEcho(m)
		m.metrics.EXPECT().ConversionRateChanged().Times(1)

		view, err := commands.NewConversionUseCase(m.uow, m.clock, m.metrics, m.settings).
			Update(ctx, decimal.NewFromInt(50), actor)

		require.NoError(t, err)
		assert.Equal(t, int64(42), view.ID)
		require.NotNil(t, view.OldValue)
		assert.True(t, view.OldValue.Equal(decimal.NewFromInt(100)))
		assert.True(t, view.NewValue.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, actor.Email, view.ChangedBy)
		assert.Equal(t, monday, view.ChangedAt)
	})

	t.Run("later change chains from the latest entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(t, ctrl)
		m.conversion.EXPECT().Lock(gomock.Any()).Return(nil).Times(1)
		m.conversion.EXPECT().Latest(gomock.Any()).
			Return(&conversion.Entry{ID: 41, NewValue: decimal.NewFromInt(80)}, nil).Times(1)
		appendEcho(m)
		m.metrics.EXPECT().ConversionRateChanged().Times(1)

		view, err := commands.NewConversionUseCase(m.uow, m.clock, m.metrics, m.settings).
			Update(ctx, decimal.RequireFromString("62.5"), actor)

		require.NoError(t, err)
		assert.True(t, view.OldValue.Equal(decimal.NewFromInt(80)))
		assert.True(t, view.NewValue.Equal(decimal.RequireFromString("62.5")))
	})

	t.Run("validation: rates that do not store as a positive amount are rejected before locking", func(t *testing.T) {
		rates := []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromInt(-10),
			decimal.RequireFromString("0.004"),
			decimal.RequireFromString("10000000000"),
		}
		for _, rate := range rates {
			ctrl := gomock.NewController(t)
			m := newTxMocks(t, ctrl)
			m.conversion.EXPECT().Lock(gomock.Any()).Times(0)

			view, err := commands.NewConversionUseCase(m.uow, m.clock, m.metrics, m.settings).Update(ctx, rate, actor)

			assert.Nil(t, view)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Equal(t, "conversionRate", errs.Fields(err)[0].Field)
		}
	})

	t.Run("lock failure aborts without appending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(t, ctrl)
		m.conversion.EXPECT().Lock(gomock.Any()).Return(errors.New("lock timeout")).Times(1)
		m.conversion.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

		_, err := commands.NewConversionUseCase(m.uow, m.clock, m.metrics, m.settings).
			Update(ctx, decimal.NewFromInt(50), actor)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
