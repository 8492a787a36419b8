package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateProductDTO struct {
	Name              string      `json:"name" validate:"required"`
	Distributor       string      `json:"distributor" validate:"required"`
	StockQuantity     int         `json:"stock_quantity" validate:"gte=0"`
	Price             float64     `json:"price" validate:"gte=0"`
	MinimumThreshold  int         `json:"minimum_threshold" validate:"gte=0"`
	CostPerUnit       float64     `json:"cost_per_unit" validate:"gte=0"`
	ExpirationDate    null.String `json:"expiration_date" validate:"omitempty"`
	UnitOfMeasurement null.String `json:"unit_of_measurement" validate:"omitempty"`
	Category          null.String `json:"category" validate:"omitempty"`
	Brand             null.String `json:"brand" validate:"omitempty"`
}
