package request

import (
	"loyalty-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	Lines []OrderLineRequest `json:"lines" binding:"required"`
}

func (r CreateOrderRequest) ToInput() (commands.CreateOrderInput, error) {
	var in commands.CreateOrderInput
	if err := copier.Copy(&in.Lines, r.Lines); err != nil {
		return commands.CreateOrderInput{}, err
	}
	return in, nil
}

type CloseOrderRequest struct {
	OrderID   uuid.UUID  `json:"orderId" binding:"required"`
	ClientID  *uuid.UUID `json:"clientId"`
	BenefitID *uuid.UUID `json:"benefitId,omitempty"`
}

func (r CloseOrderRequest) ToInput() commands.CloseOrderInput {
	return commands.CloseOrderInput{
		OrderID:   r.OrderID,
		ClientID:  r.ClientID,
		BenefitID: r.BenefitID,
	}
}
