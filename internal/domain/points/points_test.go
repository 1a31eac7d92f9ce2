//go:build unit

package points_test

import (
	"testing"
	"time"

	"loyalty-engine/internal/domain/points"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardFor(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		rate    string
		want    string
		wantErr error
	}{
		{name: "whole points", price: "1000", rate: "100", want: "10.00"},
		{name: "fractional points", price: "90", rate: "100", want: "0.90"},
		{name: "rounds half up", price: "1.005", rate: "1", want: "1.01"},
		{name: "fractional rate", price: "10", rate: "3", want: "3.33"},
		{name: "free order", price: "0", rate: "100", want: "0.00"},
		{name: "zero rate", price: "10", rate: "0", wantErr: points.ErrInvalidRate},
		{name: "negative rate", price: "10", rate: "-1", wantErr: points.ErrInvalidRate},
		{name: "negative price", price: "-1", rate: "100", wantErr: points.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := points.AwardFor(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.rate))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAccount_CanRedeem(t *testing.T) {
	acc := points.Account{ClientID: uuid.New(), Current: decimal.RequireFromString("20.00")}

	assert.True(t, acc.CanRedeem(decimal.NewFromInt(20)))
	assert.True(t, acc.CanRedeem(decimal.NewFromInt(0)))
	assert.False(t, acc.CanRedeem(decimal.RequireFromString("20.01")))
}

func TestNewMovement(t *testing.T) {
	clientID := uuid.New()
	orderID := uuid.New()
	now := time.Now()

	m, err := points.NewMovement(clientID, points.KindSpent, decimal.RequireFromString("20.004"), &orderID, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, "20.00", m.Amount.StringFixed(2))
	assert.Equal(t, points.KindSpent, m.Kind)
	assert.Equal(t, &orderID, m.OrderID)

	_, err = points.NewMovement(clientID, points.KindEarned, decimal.NewFromInt(-1), nil, now)
	assert.ErrorIs(t, err, points.ErrNegativeAmount)
}
