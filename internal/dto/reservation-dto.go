package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateReservationDTO struct {
	CustomerFirstName string `json:"customer_first_name" validate:"required"`
	CustomerLastName  string `json:"customer_last_name" validate:"required"`
	ReservationDate   string `json:"reservation_date" validate:"required"`

	// Отправляется как ISO-время: дата из формы + HH:MM + ":00Z".
	ReservationTime string `json:"reservation_time" validate:"required"`

	NumberOfGuests      int         `json:"number_of_guests" validate:"required,gt=0"`
	SpecialRequests     null.String `json:"special_requests" validate:"omitempty"`
	ReservationDuration int         `json:"reservation_duration" validate:"gte=0"`
	ReservationStatus   string      `json:"reservation_status" validate:"required"`
	CheckInStatus       string      `json:"check_in_status" validate:"required"`
	Notes               null.String `json:"notes" validate:"omitempty"`
}
