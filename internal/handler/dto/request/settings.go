package request

import "github.com/shopspring/decimal"

type UpdateConversionRateRequest struct {
	ConversionRate decimal.Decimal `json:"conversionRate"`
}
