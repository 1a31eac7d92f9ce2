package benefit

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"loyalty-engine/internal/domain/points"
	"loyalty-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxPercentage = decimal.NewFromInt(100)

// Definition is the unvalidated input for a new benefit.
type Definition struct {
	Type           string
	PointsRequired int
	DiscountType   *string
	DiscountValue  *decimal.Decimal
	ApplicableDays []string
	ProductIDs     []int64
}

// Benefit is immutable once created; only soft deletion happens afterwards.
type Benefit struct {
	id             uuid.UUID
	typ            Type
	pointsRequired int
	discountType   DiscountType
	discountValue  decimal.Decimal
	days           DaySet
	productIDs     []int64
	createdBy      string
	createdAt      time.Time
}

// Normalize validates def and returns a benefit with normalized day and product sets.
// Fields that do not belong to the benefit type are dropped so they never reach the fingerprint.
func Normalize(def Definition) (*Benefit, error) {
	var verrs errs.ValidationErrors

	typ, err := ParseType(def.Type)
	if err != nil {
		verrs.Add("type", "must be DISCOUNT or FREE_PRODUCT")
	}

	// points_required is an INTEGER column; anything wider would be truncated on insert.
	switch {
	case def.PointsRequired <= 0:
		verrs.Add("pointsRequired", "must be greater than 0")
	case def.PointsRequired > math.MaxInt32:
		verrs.Add("pointsRequired", "must not exceed 2147483647")
	}

	days, err := ParseDays(def.ApplicableDays)
	if err != nil {
		verrs.Add("applicableDays", "contains an unknown weekday")
	} else if days.IsEmpty() {
		verrs.Add("applicableDays", "must contain at least one day")
	}

	b := &Benefit{
		typ:            typ,
		pointsRequired: def.PointsRequired,
		days:           days,
	}

	switch typ {
	case TypeDiscount:
		b.discountType, b.discountValue = validateDiscount(def, &verrs)
	case TypeFreeProduct:
		b.productIDs = normalizeProductIDs(def.ProductIDs, &verrs)
	}

	if err := verrs.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func validateDiscount(def Definition, verrs *errs.ValidationErrors) (DiscountType, decimal.Decimal) {
	var dt DiscountType
	if def.DiscountType == nil {
		verrs.Add("discountType", "is required for DISCOUNT benefits")
	} else {
		parsed, err := ParseDiscountType(*def.DiscountType)
		if err != nil {
			verrs.Add("discountType", "must be PERCENTAGE or FIXED_AMOUNT")
		}
		dt = parsed
	}

	if def.DiscountValue == nil {
		verrs.Add("discountValue", "is required for DISCOUNT benefits")
		return dt, decimal.Zero
	}

	v := def.DiscountValue.Round(2)
	switch {
	case !v.IsPositive():
		verrs.Add("discountValue", "must be greater than 0")
	case dt == DiscountPercentage && v.GreaterThan(maxPercentage):
		verrs.Add("discountValue", "must not exceed 100 for PERCENTAGE discounts")
	case v.GreaterThan(points.MaxAmount):
		verrs.Add("discountValue", "must not exceed "+points.MaxAmount.StringFixed(points.Scale))
	}
	return dt, v
}

func normalizeProductIDs(ids []int64, verrs *errs.ValidationErrors) []int64 {
	if len(ids) == 0 {
		verrs.Add("productIds", "must contain at least one product for FREE_PRODUCT benefits")
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	out = slices.Compact(out)
	for _, id := range out {
		if id <= 0 {
			verrs.Add("productIds", "must contain positive product ids")
			break
		}
	}
	return out
}

// New validates def and stamps identity and audit fields.
func New(def Definition, createdBy string, now time.Time) (*Benefit, error) {
	b, err := Normalize(def)
	if err != nil {
		return nil, err
	}
	b.id = uuid.New()
	b.createdBy = createdBy
	b.createdAt = now
	return b, nil
}

func Reconstruct(
	id uuid.UUID,
	typ Type,
	pointsRequired int,
	discountType DiscountType,
	discountValue decimal.Decimal,
	days DaySet,
	productIDs []int64,
	createdBy string,
	createdAt time.Time,
) *Benefit {
	return &Benefit{
		id:             id,
		typ:            typ,
		pointsRequired: pointsRequired,
		discountType:   discountType,
		discountValue:  discountValue,
		days:           days,
		productIDs:     productIDs,
		createdBy:      createdBy,
		createdAt:      createdAt,
	}
}

// canonical renders the uniqueness tuple. Discount value is fixed to two decimals so 10 and 10.00 collide.
func (b *Benefit) canonical() string {
	products := make([]string, len(b.productIDs))
	for i, id := range b.productIDs {
		products[i] = strconv.FormatInt(id, 10)
	}
	value := ""
	if b.typ == TypeDiscount {
		value = b.discountValue.StringFixed(2)
	}
	return strings.Join([]string{
		b.typ.String(),
		strconv.Itoa(b.pointsRequired),
		b.discountType.String(),
		value,
		strings.Join(b.days.Names(), ","),
		strings.Join(products, ","),
	}, "|")
}

// Fingerprint is the value behind the unique index over live benefits.
func (b *Benefit) Fingerprint() string {
	sum := sha256.Sum256([]byte(b.canonical()))
	return hex.EncodeToString(sum[:])
}

// IdentityFields names the fields that make up the uniqueness tuple for this benefit type.
func (b *Benefit) IdentityFields() []string {
	if b.typ == TypeFreeProduct {
		return []string{"type", "pointsRequired", "applicableDays", "productIds"}
	}
	return []string{"type", "pointsRequired", "discountType", "discountValue", "applicableDays"}
}

func (b *Benefit) CoversProduct(productID int64) bool {
	_, found := slices.BinarySearch(b.productIDs, productID)
	return found
}

func (b *Benefit) ID() uuid.UUID                  { return b.id }
func (b *Benefit) Type() Type                     { return b.typ }
func (b *Benefit) PointsRequired() int            { return b.pointsRequired }
func (b *Benefit) DiscountType() DiscountType     { return b.discountType }
func (b *Benefit) DiscountValue() decimal.Decimal { return b.discountValue }
func (b *Benefit) ApplicableDays() DaySet         { return b.days }
func (b *Benefit) ProductIDs() []int64            { return slices.Clone(b.productIDs) }
func (b *Benefit) CreatedBy() string              { return b.createdBy }
func (b *Benefit) CreatedAt() time.Time           { return b.createdAt }
