package entities

type Distributor struct {
	ID              int64  `json:"distributor_id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Location        string `json:"location"`
	PaymentTerms    string `json:"payment_terms"`
	PersonOfContact string `json:"person_of_contact"`
	DeliveryTerms   string `json:"delivery_terms"`
	PhoneNumber     string `json:"phone_number"`
}

func (d Distributor) PrimaryKey() int64 { return d.ID }
