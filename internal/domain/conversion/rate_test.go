//go:build unit

package conversion_test

import (
	"testing"
	"time"

	"loyalty-engine/internal/domain/conversion"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
		want error
	}{
		{name: "smallest storable rate", rate: "0.01"},
		{name: "sub-cent rate rounds up to a cent", rate: "0.005"},
		{name: "largest storable rate", rate: "9999999999.99"},
		{name: "zero", rate: "0", want: conversion.ErrNonPositiveRate},
		{name: "negative", rate: "-5", want: conversion.ErrNonPositiveRate},
		{name: "sub-cent rate rounds down to zero", rate: "0.004", want: conversion.ErrNonPositiveRate},
		{name: "overflows NUMERIC(12,2)", rate: "10000000000", want: conversion.ErrRateTooLarge},
		{name: "rounds up past the maximum", rate: "9999999999.995", want: conversion.ErrRateTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conversion.ValidateRate(decimal.RequireFromString(tt.rate))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Now()
	old := decimal.NewFromInt(100)

	e, err := conversion.NewEntry(old, decimal.RequireFromString("50.005"), "manager@example.com", now)
	require.NoError(t, err)
	assert.Equal(t, "100", e.OldValue.String())
	assert.Equal(t, "50.01", e.NewValue.StringFixed(2))
	assert.Equal(t, "manager@example.com", e.ChangedBy)
	assert.Equal(t, now, e.ChangedAt)

	_, err = conversion.NewEntry(old, decimal.Zero, "admin@example.com", now)
	assert.ErrorIs(t, err, conversion.ErrNonPositiveRate)

	e, err = conversion.NewEntry(old, decimal.RequireFromString("0.004"), "admin@example.com", now)
	assert.ErrorIs(t, err, conversion.ErrNonPositiveRate)
	assert.Nil(t, e)
}

func TestCurrent(t *testing.T) {
	def := decimal.NewFromInt(100)
	assert.True(t, def.Equal(conversion.Current(nil, def)))

	latest := &conversion.Entry{NewValue: decimal.NewFromInt(50)}
	assert.True(t, decimal.NewFromInt(50).Equal(conversion.Current(latest, def)))
}
