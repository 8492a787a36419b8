package entities

import (
	"github.com/aarondl/null/v8"
)

type SalesTransaction struct {
	ID                int64  `json:"sales_transaction_id"`
	MenuItemID        int64  `json:"menu_item_id"`
	MenuItemName      string `json:"menu_item_name"`
	QuantityPurchased int    `json:"quantity_purchased"`
	TransactionDate   string `json:"transaction_date"` // YYYY-MM-DD
}

func (s SalesTransaction) PrimaryKey() int64 { return s.ID }

type MenuItem struct {
	ID          int64       `json:"menu_item_id"`
	Name        string      `json:"menu_item_name"`
	Category    null.String `json:"category"`
	Description null.String `json:"description"`
	Price       float64     `json:"price"`
}

func (m MenuItem) PrimaryKey() int64 { return m.ID }
