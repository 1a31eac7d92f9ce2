//go:build unit

package benefit_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BenefitBuilder)
	field  string
}

func TestBenefit(t *testing.T) {
	t.Run("basic discount", func(t *testing.T) {
		actual, err := builder.NewBenefitBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, benefit.TypeDiscount, actual.Type())
		assert.Equal(t, 20, actual.PointsRequired())
		assert.Equal(t, benefit.DiscountPercentage, actual.DiscountType())
		assert.Equal(t, "10.00", actual.DiscountValue().StringFixed(2))
		assert.Equal(t, []string{"MONDAY"}, actual.ApplicableDays().Names())
		assert.Equal(t, "admin@example.com", actual.CreatedBy())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("free product normalizes product ids", func(t *testing.T) {
		actual, err := builder.NewBenefitBuilder().AsFreeProduct(7, 3, 7, 5).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []int64{3, 5, 7}, actual.ProductIDs())
		assert.True(t, actual.CoversProduct(5))
		assert.False(t, actual.CoversProduct(4))
		assert.Equal(t, benefit.DiscountType(""), actual.DiscountType())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown type",
				mutate: func(b *builder.BenefitBuilder) { b.WithType("CASHBACK") },
				field:  "type",
			},
			{
				name:   "zero points",
				mutate: func(b *builder.BenefitBuilder) { b.WithPointsRequired(0) },
				field:  "pointsRequired",
			},
			{
				name:   "negative points",
				mutate: func(b *builder.BenefitBuilder) { b.WithPointsRequired(-5) },
				field:  "pointsRequired",
			},
			{
				name:   "points wider than the stored integer",
				mutate: func(b *builder.BenefitBuilder) { b.WithPointsRequired(math.MaxInt32 + 1) },
				field:  "pointsRequired",
			},
			{
				name:   "points that would wrap to a small stored value",
				mutate: func(b *builder.BenefitBuilder) { b.WithPointsRequired(1<<32 + 100) },
				field:  "pointsRequired",
			},
			{
				name:   "points at the stored integer limit",
				mutate: func(b *builder.BenefitBuilder) { b.WithPointsRequired(math.MaxInt32) },
			},
			{
				name:   "empty days",
				mutate: func(b *builder.BenefitBuilder) { b.WithDays() },
				field:  "applicableDays",
			},
			{
				name:   "unknown weekday",
				mutate: func(b *builder.BenefitBuilder) { b.WithDays("MONDAY", "FUNDAY") },
				field:  "applicableDays",
			},
			{
				name:   "missing discount type",
				mutate: func(b *builder.BenefitBuilder) { b.DiscountType = nil },
				field:  "discountType",
			},
			{
				name:   "missing discount value",
				mutate: func(b *builder.BenefitBuilder) { b.DiscountValue = nil },
				field:  "discountValue",
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.BenefitBuilder) { b.WithDiscount("PERCENTAGE", "100.01") },
				field:  "discountValue",
			},
			{
				name:   "zero discount",
				mutate: func(b *builder.BenefitBuilder) { b.WithDiscount("FIXED_AMOUNT", "0") },
				field:  "discountValue",
			},
			{
				name:   "fixed amount beyond the money column",
				mutate: func(b *builder.BenefitBuilder) { b.WithDiscount("FIXED_AMOUNT", "10000000000") },
				field:  "discountValue",
			},
			{
				name:   "free product without products",
				mutate: func(b *builder.BenefitBuilder) { b.AsFreeProduct() },
				field:  "productIds",
			},
			{
				name:   "percentage of exactly 100",
				mutate: func(b *builder.BenefitBuilder) { b.WithDiscount("PERCENTAGE", "100") },
			},
			{
				name:   "fixed amount above 100",
				mutate: func(b *builder.BenefitBuilder) { b.WithDiscount("FIXED_AMOUNT", "250.50") },
			},
			{
				name:   "lowercase input",
				mutate: func(b *builder.BenefitBuilder) { b.WithType("discount").WithDays("monday", "Friday") },
			},
		})
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := builder.NewBenefitBuilder().
			WithPointsRequired(0).
			WithDays().
			WithDiscount("PERCENTAGE", "150").
			BuildDomain()
		require.ErrorIs(t, err, errs.ErrValidation)

		fields := make([]string, 0)
		for _, f := range errs.Fields(err) {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"pointsRequired", "applicableDays", "discountValue"}, fields)
	})
}

func TestBenefit_Fingerprint(t *testing.T) {
	fingerprint := func(t *testing.T, b *builder.BenefitBuilder) string {
		t.Helper()
		n, err := benefit.Normalize(b.BuildDefinition())
		require.NoError(t, err)
		return n.Fingerprint()
	}

	t.Run("day order does not matter", func(t *testing.T) {
		a := fingerprint(t, builder.NewBenefitBuilder().WithDays("MONDAY", "FRIDAY"))
		b := fingerprint(t, builder.NewBenefitBuilder().WithDays("friday", "MONDAY", "monday"))
		assert.Equal(t, a, b)
	})

	t.Run("EVERYDAY equals the explicit week", func(t *testing.T) {
		a := fingerprint(t, builder.NewBenefitBuilder().WithDays("EVERYDAY"))
		b := fingerprint(t, builder.NewBenefitBuilder().WithDays(
			"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"))
		assert.Equal(t, a, b)
	})

	t.Run("discount scale does not matter", func(t *testing.T) {
		a := fingerprint(t, builder.NewBenefitBuilder().WithDiscount("PERCENTAGE", "10"))
		b := fingerprint(t, builder.NewBenefitBuilder().WithDiscount("PERCENTAGE", "10.00"))
		assert.Equal(t, a, b)
	})

	t.Run("product order does not matter", func(t *testing.T) {
		a := fingerprint(t, builder.NewBenefitBuilder().AsFreeProduct(1, 2))
		b := fingerprint(t, builder.NewBenefitBuilder().AsFreeProduct(2, 1, 2))
		assert.Equal(t, a, b)
	})

	t.Run("discount fields are ignored for free product", func(t *testing.T) {
		a := fingerprint(t, builder.NewBenefitBuilder().AsFreeProduct(1))
		b := fingerprint(t, builder.NewBenefitBuilder().AsFreeProduct(1).WithDiscount("FIXED_AMOUNT", "5"))
		assert.Equal(t, a, b)
	})

	t.Run("differing tuples differ", func(t *testing.T) {
		base := fingerprint(t, builder.NewBenefitBuilder())
		variants := map[string]*builder.BenefitBuilder{
			"points":        builder.NewBenefitBuilder().WithPointsRequired(21),
			"discount type": builder.NewBenefitBuilder().WithDiscount("FIXED_AMOUNT", "10"),
			"value":         builder.NewBenefitBuilder().WithDiscount("PERCENTAGE", "10.5"),
			"days":          builder.NewBenefitBuilder().WithDays("MONDAY", "TUESDAY"),
			"type":          builder.NewBenefitBuilder().AsFreeProduct(1),
		}
		for name, v := range variants {
			assert.NotEqual(t, base, fingerprint(t, v), name)
		}
	})
}

func TestBenefit_Snapshot(t *testing.T) {
	b, err := builder.NewBenefitBuilder().BuildDomain()
	require.NoError(t, err)

	at := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	snap := b.Snapshot(at)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded benefit.Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	opts := cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) })
	if diff := cmp.Diff(snap, decoded, opts); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, b.ID(), decoded.ID)
	assert.Nil(t, decoded.ProductIDs)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBenefitBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.field == "" {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}

			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, actual)
			fields := errs.Fields(err)
			require.NotEmpty(t, fields)
			found := false
			for _, f := range fields {
				if f.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected field error on %s, got %v", tc.field, fields)
		})
	}
}
