package entities

import (
	"github.com/aarondl/null/v8"
)

type Product struct {
	ID                int64       `json:"product_id"`
	Name              string      `json:"name"`
	Distributor       string      `json:"distributor"`
	StockQuantity     int         `json:"stock_quantity"`
	Price             float64     `json:"price"`
	MinimumThreshold  int         `json:"minimum_threshold"`
	CostPerUnit       float64     `json:"cost_per_unit"`
	ExpirationDate    null.String `json:"expiration_date"`
	UnitOfMeasurement null.String `json:"unit_of_measurement"`
	Category          null.String `json:"category"`
	Brand             null.String `json:"brand"`
}

func (p Product) PrimaryKey() int64 { return p.ID }
