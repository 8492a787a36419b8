package entities

type WasteLogEntry struct {
	ID            int64   `json:"waste_log_id"`
	WasteType     string  `json:"waste_type"`
	User          string  `json:"user"`
	WasteDate     string  `json:"waste_date"`
	Reason        string  `json:"reason"`
	QuantityWaste float64 `json:"quantity_waste"`
	Product       string  `json:"product"`
}

func (w WasteLogEntry) PrimaryKey() int64 { return w.ID }
