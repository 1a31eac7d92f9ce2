//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-engine/internal/domain/benefit"
	reqdto "loyalty-engine/internal/handler/dto/request"
	"loyalty-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BenefitBuilder struct {
	Type           string
	PointsRequired int
	DiscountType   *string
	DiscountValue  *decimal.Decimal
	ApplicableDays []string
	ProductIDs     []int64
	CreatedBy      string
	CreatedAt      time.Time
}

// NewBenefitBuilder defaults to a 20-point 10% Monday discount.
func NewBenefitBuilder() *BenefitBuilder {
	dt := "PERCENTAGE"
	v := decimal.NewFromInt(10)
	return &BenefitBuilder{
		Type:           "DISCOUNT",
		PointsRequired: 20,
		DiscountType:   &dt,
		DiscountValue:  &v,
		ApplicableDays: []string{"MONDAY"},
		CreatedBy:      "admin@example.com",
		CreatedAt:      time.Now(),
	}
}

func (b *BenefitBuilder) With(mutate func(*BenefitBuilder)) *BenefitBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BenefitBuilder) BuildDefinition() benefit.Definition {
	return benefit.Definition{
		Type:           b.Type,
		PointsRequired: b.PointsRequired,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		ApplicableDays: b.ApplicableDays,
		ProductIDs:     b.ProductIDs,
	}
}

func (b *BenefitBuilder) BuildDomain() (*benefit.Benefit, error) {
	return benefit.New(b.BuildDefinition(), b.CreatedBy, b.CreatedAt)
}

func (b *BenefitBuilder) BuildCreateRequestDTO() reqdto.CreateBenefitRequest {
	return reqdto.CreateBenefitRequest{
		Type:           b.Type,
		PointsRequired: b.PointsRequired,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		ApplicableDays: b.ApplicableDays,
		ProductIDs:     b.ProductIDs,
	}
}

func (b *BenefitBuilder) BuildView() *queries.BenefitView {
	view := &queries.BenefitView{
		ID:             uuid.New(),
		Type:           b.Type,
		PointsRequired: b.PointsRequired,
		ApplicableDays: b.ApplicableDays,
		ProductIDs:     b.ProductIDs,
		CreatedBy:      b.CreatedBy,
		CreatedAt:      b.CreatedAt,
	}
	if b.Type == string(benefit.TypeDiscount) {
		view.DiscountType = b.DiscountType
		view.DiscountValue = b.DiscountValue
	}
	return view
}

// Fluent builder methods
func (b *BenefitBuilder) WithType(t string) *BenefitBuilder {
	b.Type = t
	return b
}

func (b *BenefitBuilder) WithPointsRequired(points int) *BenefitBuilder {
	b.PointsRequired = points
	return b
}

func (b *BenefitBuilder) WithDiscount(discountType, value string) *BenefitBuilder {
	v := decimal.RequireFromString(value)
	b.DiscountType = &discountType
	b.DiscountValue = &v
	return b
}

func (b *BenefitBuilder) WithDays(days ...string) *BenefitBuilder {
	b.ApplicableDays = days
	return b
}

func (b *BenefitBuilder) WithProductIDs(ids ...int64) *BenefitBuilder {
	b.ProductIDs = ids
	return b
}

func (b *BenefitBuilder) WithCreatedBy(email string) *BenefitBuilder {
	b.CreatedBy = email
	return b
}

func (b *BenefitBuilder) AsFreeProduct(productIDs ...int64) *BenefitBuilder {
	b.Type = "FREE_PRODUCT"
	b.DiscountType = nil
	b.DiscountValue = nil
	b.ProductIDs = productIDs
	return b
}
