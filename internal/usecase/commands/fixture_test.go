//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/usecase/shared"
	commandsmock "loyalty-engine/tests/mock/commands"
	sharedmock "loyalty-engine/tests/mock/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// monday is 2024-01-01, a Monday in UTC.
var monday = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	benefits      *sharedmock.MockBenefitRepository
	ledger        *sharedmock.MockPointsLedger
	orders        *sharedmock.MockOrderRepository
	conversion    *sharedmock.MockConversionRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	metrics       *commandsmock.MockMetrics
	clock         *clock.MockClock
	settings      shared.LoyaltySettings
}

// newTxMocks wires a unit of work whose Within runs the callback once against the mocked Tx.
func newTxMocks(t *testing.T, ctrl *gomock.Controller) *txMocks {
	t.Helper()
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		benefits:      sharedmock.NewMockBenefitRepository(ctrl),
		ledger:        sharedmock.NewMockPointsLedger(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		conversion:    sharedmock.NewMockConversionRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		metrics:       commandsmock.NewMockMetrics(ctrl),
		clock:         clock.NewMockClock(monday),
		settings: shared.LoyaltySettings{
			DefaultRate:    decimal.NewFromInt(100),
			Location:       time.UTC,
			IdempotencyTTL: 24 * time.Hour,
		},
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Benefits().Return(m.benefits).AnyTimes()
	m.tx.EXPECT().Ledger().Return(m.ledger).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Conversion().Return(m.conversion).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	return m
}

func (m *txMocks) calendar() *shared.Calendar {
	return shared.NewCalendar(m.clock, m.settings)
}

type decimalMatcher struct {
	want decimal.Decimal
}

// decEq matches decimals by value, so 7.2 and 7.20 are equal.
func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}
