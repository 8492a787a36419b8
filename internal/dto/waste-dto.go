package dto

type CreateWasteLogDTO struct {
	WasteType     string  `json:"waste_type" validate:"required"`
	User          string  `json:"user" validate:"required"`
	WasteDate     string  `json:"waste_date" validate:"required"`
	Reason        string  `json:"reason" validate:"required"`
	QuantityWaste float64 `json:"quantity_waste" validate:"required,gt=0"`
	Product       string  `json:"product" validate:"required"`
}
