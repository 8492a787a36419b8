package dto

type CreateDistributorDTO struct {
	Name            string `json:"name" validate:"required"`
	Address         string `json:"address" validate:"required"`
	Location        string `json:"location" validate:"required"`
	PaymentTerms    string `json:"payment_terms" validate:"required"`
	PersonOfContact string `json:"person_of_contact" validate:"required"`
	DeliveryTerms   string `json:"delivery_terms" validate:"required"`
	PhoneNumber     string `json:"phone_number" validate:"required"`
}
