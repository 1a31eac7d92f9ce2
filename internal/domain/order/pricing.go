package order

import (
	"slices"

	"loyalty-engine/internal/domain/benefit"
	"loyalty-engine/internal/domain/points"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Price returns the effective total after applying b. The returned lines are a copy;
// for FREE_PRODUCT benefits one unit of the first covered line is marked free.
func Price(total decimal.Decimal, lines []Line, b *benefit.Benefit) (decimal.Decimal, []Line, error) {
	out := slices.Clone(lines)
	if b == nil {
		return points.Round2(total), out, nil
	}

	var final decimal.Decimal
	switch b.Type() {
	case benefit.TypeDiscount:
		final = applyDiscount(total, b.DiscountType(), b.DiscountValue())
	case benefit.TypeFreeProduct:
		idx := slices.IndexFunc(out, func(l Line) bool {
			return l.Quantity > 0 && b.CoversProduct(l.ProductID)
		})
		if idx < 0 {
			return decimal.Zero, nil, ErrNoCoveredLine
		}
		out[idx].FreeQuantity = 1
		final = total.Sub(out[idx].UnitPrice)
	default:
		return decimal.Zero, nil, benefit.ErrInvalidType
	}

	if final.IsNegative() {
		final = decimal.Zero
	}
	return points.Round2(final), out, nil
}

func applyDiscount(total decimal.Decimal, dt benefit.DiscountType, value decimal.Decimal) decimal.Decimal {
	switch dt {
	case benefit.DiscountPercentage:
		return total.Mul(hundred.Sub(value)).Div(hundred)
	case benefit.DiscountFixedAmount:
		return total.Sub(value)
	default:
		return total
	}
}
