package entities

import (
	"github.com/aarondl/null/v8"
)

type Reservation struct {
	ID                  int64       `json:"reservation_id"`
	User                string      `json:"user"`
	CustomerFirstName   string      `json:"customer_first_name"`
	CustomerLastName    string      `json:"customer_last_name"`
	ReservationDate     string      `json:"reservation_date"`
	ReservationTime     string      `json:"reservation_time"`
	NumberOfGuests      int         `json:"number_of_guests"`
	SpecialRequests     null.String `json:"special_requests"`
	ReservationDuration int         `json:"reservation_duration"`
	ReservationStatus   string      `json:"reservation_status"`
	CheckInStatus       string      `json:"check_in_status"`
	Notes               null.String `json:"notes"`

	// Связанный пользователь, если бэкенд его разворачивает.
	// Только для чтения, через форму строки не редактируется.
	UserRef *User `json:"user_ref,omitempty"`
}

func (r Reservation) PrimaryKey() int64 { return r.ID }
