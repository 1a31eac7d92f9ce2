//go:build unit || e2e

package builder

import (
	"time"

	"loyalty-engine/internal/domain/order"
	reqdto "loyalty-engine/internal/handler/dto/request"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	Lines     []order.Line
	CreatedBy string
	CreatedAt time.Time
}

// NewOrderBuilder defaults to two coffees at 250 and one croissant at 300.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Lines: []order.Line{
			{ProductID: 1, ProductName: "Coffee", Quantity: 2, UnitPrice: decimal.NewFromInt(250)},
			{ProductID: 2, ProductName: "Croissant", Quantity: 1, UnitPrice: decimal.NewFromInt(300)},
		},
		CreatedBy: "employee@example.com",
		CreatedAt: time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithLines(lines ...order.Line) *OrderBuilder {
	b.Lines = lines
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.New(b.Lines, b.CreatedBy, b.CreatedAt)
}

func (b *OrderBuilder) BuildInput() commands.CreateOrderInput {
	in := commands.CreateOrderInput{Lines: make([]commands.OrderLineInput, 0, len(b.Lines))}
	for _, l := range b.Lines {
		in.Lines = append(in.Lines, commands.OrderLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return in
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	req := reqdto.CreateOrderRequest{Lines: make([]reqdto.OrderLineRequest, 0, len(b.Lines))}
	for _, l := range b.Lines {
		req.Lines = append(req.Lines, reqdto.OrderLineRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return req
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return queries.NewOrderView(o)
}
